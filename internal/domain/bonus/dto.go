package bonus

import (
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
)

// CreateBonusRequest accepts the amount as a JSON number or a numeric string.
type CreateBonusRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Amount     any     `json:"amount"`
	Reason     *string `json:"reason"`
	BonusDate  string  `json:"bonus_date"`

	date time.Time
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Amount == nil {
		errs.Add("amount", "amount is required")
	}
	var ok bool
	if r.date, ok = validator.IsValidDate(r.BonusDate); !ok {
		errs.Add("bonus_date", "bonus_date must be in YYYY-MM-DD format")
	}
	if r.Reason != nil && len(*r.Reason) > 500 {
		errs.Add("reason", "reason must not exceed 500 characters")
	}

	return errs.Err()
}

// Date returns the parsed bonus date. Valid only after Validate succeeds.
func (r *CreateBonusRequest) Date() time.Time {
	return r.date
}

type BonusFilter struct {
	EmployeeID *int64
	Limit      int
	Offset     int
}

func (f *BonusFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && *f.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id must be a positive number")
	}
	if f.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs.Add("limit", "limit must not exceed 100")
	}
	if f.Offset < 0 {
		errs.Add("offset", "offset must not be negative")
	}

	return errs.Err()
}

type BonusResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Amount     float64   `json:"amount"`
	AmountText string    `json:"amount_text"`
	Reason     *string   `json:"reason"`
	BonusDate  string    `json:"bonus_date"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewBonusResponse(b Bonus) BonusResponse {
	return BonusResponse{
		ID:         b.ID,
		EmployeeID: b.EmployeeID,
		Amount:     b.Amount.Number(),
		AmountText: b.Amount.Text(),
		Reason:     b.Reason,
		BonusDate:  b.BonusDate.Format(validator.DateLayout),
		CreatedAt:  b.CreatedAt,
	}
}

type ListBonusResponse struct {
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
	Bonuses    []BonusResponse `json:"bonuses"`
}
