package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errAlready := New(FailedPrecondition, "already done")

	assert.Equal(t, FailedPrecondition, KindOf(errAlready))
	assert.Equal(t, FailedPrecondition, KindOf(fmt.Errorf("check in: %w", errAlready)))
	assert.Equal(t, Unknown, KindOf(errors.New("boom")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(InvalidArgument, "bad amount"))

	assert.True(t, Is(err, InvalidArgument))
	assert.False(t, Is(err, NotFound))
	assert.False(t, Is(nil, Unknown))
	assert.Equal(t, "wrapped: bad amount", err.Error())
}
