package bonus

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/bonus"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/employee"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBonusRepo struct {
	rows      []bonus.StoredBonus
	lastAdded string
}

func (r *fakeBonusRepo) Create(_ context.Context, employeeID int64, amountText string, reason *string, bonusDate time.Time) (bonus.StoredBonus, error) {
	if employeeID == 404 {
		return bonus.StoredBonus{}, employee.ErrEmployeeNotFound
	}
	r.lastAdded = amountText
	row := bonus.StoredBonus{
		ID:         int64(len(r.rows) + 1),
		EmployeeID: employeeID,
		AmountText: amountText,
		Reason:     reason,
		BonusDate:  bonusDate,
		CreatedAt:  time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
	}
	r.rows = append(r.rows, row)
	return row, nil
}

func (r *fakeBonusRepo) List(_ context.Context, filter bonus.BonusFilter) ([]bonus.StoredBonus, int64, error) {
	var out []bonus.StoredBonus
	for _, row := range r.rows {
		if filter.EmployeeID != nil && row.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, row)
	}
	return out, int64(len(out)), nil
}

func newTestService() (bonus.BonusService, *fakeBonusRepo) {
	repo := &fakeBonusRepo{}
	return NewBonusService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestCreateBonus_NormalizesAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		text   string
		number float64
	}{
		{"float half cent", 19.995, "20.00", 20},
		{"float 1.005", 1.005, "1.01", 1.01},
		{"integer", 1500000, "1500000.00", 1500000},
		{"string", " 2500.5 ", "2500.50", 2500.5},
		{"json number", json.Number("123.456"), "123.46", 123.46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			got, err := svc.CreateBonus(context.Background(), bonus.CreateBonusRequest{
				EmployeeID: 42,
				Amount:     tt.amount,
				BonusDate:  "2024-03-11",
			})
			require.NoError(t, err)

			assert.Equal(t, tt.text, repo.lastAdded)
			assert.Equal(t, tt.text, got.AmountText)
			assert.Equal(t, tt.number, got.Amount)
			assert.Equal(t, "2024-03-11", got.BonusDate)
		})
	}
}

func TestCreateBonus_RejectsAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		want   error
	}{
		{"zero", 0, bonus.ErrAmountNotPositive},
		{"rounds to zero", 0.004, bonus.ErrAmountNotPositive},
		{"negative", "-10", bonus.ErrAmountNotPositive},
		{"too large", "10000000000000", bonus.ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			_, err := svc.CreateBonus(context.Background(), bonus.CreateBonusRequest{
				EmployeeID: 42,
				Amount:     tt.amount,
				BonusDate:  "2024-03-11",
			})
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.rows)
		})
	}
}

func TestCreateBonus_InvalidInput(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBonus(context.Background(), bonus.CreateBonusRequest{EmployeeID: 42, Amount: "abc", BonusDate: "2024-03-11"})
	assert.True(t, apperror.Is(err, apperror.InvalidArgument))

	for _, amount := range []any{"1e400", json.Number("1e2000000000")} {
		_, err = svc.CreateBonus(context.Background(), bonus.CreateBonusRequest{EmployeeID: 42, Amount: amount, BonusDate: "2024-03-11"})
		assert.True(t, apperror.Is(err, apperror.InvalidArgument), "amount %v: %v", amount, err)
	}

	_, err = svc.CreateBonus(context.Background(), bonus.CreateBonusRequest{EmployeeID: 0, BonusDate: "11/03/2024"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "bonus_date")
}

func TestCreateBonus_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBonus(context.Background(), bonus.CreateBonusRequest{EmployeeID: 404, Amount: 100, BonusDate: "2024-03-11"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListBonuses(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for _, amt := range []any{100, "250.125"} {
		_, err := svc.CreateBonus(ctx, bonus.CreateBonusRequest{EmployeeID: 42, Amount: amt, BonusDate: "2024-03-11"})
		require.NoError(t, err)
	}
	_, err := svc.CreateBonus(ctx, bonus.CreateBonusRequest{EmployeeID: 7, Amount: 1, BonusDate: "2024-03-11"})
	require.NoError(t, err)
	require.Len(t, repo.rows, 3)

	id := int64(42)
	got, err := svc.ListBonuses(ctx, bonus.BonusFilter{EmployeeID: &id})
	require.NoError(t, err)

	assert.Equal(t, int64(2), got.TotalCount)
	assert.Equal(t, 20, got.Limit)
	require.Len(t, got.Bonuses, 2)
	assert.Equal(t, "100.00", got.Bonuses[0].AmountText)
	assert.Equal(t, "250.13", got.Bonuses[1].AmountText)
	assert.Equal(t, 250.13, got.Bonuses[1].Amount)
}

func TestListBonuses_InvalidFilter(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ListBonuses(context.Background(), bonus.BonusFilter{Limit: 500})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
