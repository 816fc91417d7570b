package bonus

import (
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/money"
)

type Bonus struct {
	ID         int64
	EmployeeID int64
	Amount     money.Amount
	Reason     *string
	BonusDate  time.Time
	CreatedAt  time.Time
}
