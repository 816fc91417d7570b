package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/bonus"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/systemconfig"
	"github.com/hrms-vn/hrm-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonusRepository_StoresTwoDecimals(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewBonusRepository(db)
	empID := createTestEmployee(t, db, "NV-0020", "Bùi Thanh Tâm")

	created, err := repo.Create(ctx, empID, "1500000.50", nil, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "1500000.50", created.AmountText)

	_, err = repo.Create(ctx, empID, "20.00", nil, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rows, total, err := repo.List(ctx, bonus.BonusFilter{EmployeeID: &empID, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "20.00", rows[0].AmountText)
	assert.Equal(t, "1500000.50", rows[1].AmountText)
}

func TestSystemConfigRepository_GetMany(t *testing.T) {
	db := openTestDB(t)
	repo := postgresql.NewSystemConfigRepository(db)

	values, err := repo.GetMany(context.Background(), systemconfig.KeyWorkStartTime, systemconfig.KeyWorkEndTime, "missing_key")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		systemconfig.KeyWorkStartTime: "08:00:00",
		systemconfig.KeyWorkEndTime:   "17:30:00",
	}, values)
}
