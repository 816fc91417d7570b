package attendance

import (
	"errors"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"
)

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = apperror.New(apperror.FailedPrecondition, "Hôm nay đã check-in rồi")
	ErrNotCheckedIn      = apperror.New(apperror.FailedPrecondition, "Hôm nay chưa check-in")
	ErrAlreadyCheckedOut = apperror.New(apperror.FailedPrecondition, "Hôm nay đã check-out rồi")

	ErrCheckOutBeforeCheckIn = apperror.New(apperror.FailedPrecondition, "Giờ check-out sớm hơn giờ check-in")

	ErrAttendanceNotFound = apperror.New(apperror.NotFound, "Attendance record not found")
	ErrInvalidWorkPolicy  = errors.New("invalid work hour configuration")
)
