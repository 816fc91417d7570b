package bonus

import (
	"context"
	"time"
)

type BonusRepository interface {
	// Create stores amountText, the two-decimal form of the amount.
	Create(ctx context.Context, employeeID int64, amountText string, reason *string, bonusDate time.Time) (StoredBonus, error)
	List(ctx context.Context, filter BonusFilter) ([]StoredBonus, int64, error)
}

// StoredBonus is a row as read back, with the amount in its stored text form.
type StoredBonus struct {
	ID         int64
	EmployeeID int64
	AmountText string
	Reason     *string
	BonusDate  time.Time
	CreatedAt  time.Time
}
