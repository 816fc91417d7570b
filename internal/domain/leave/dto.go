package leave

import (
	"strings"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	MinBalanceYear = 1900
	MaxBalanceYear = 9999
)

type SubmitLeaveRequest struct {
	EmployeeID int64   `json:"-"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason"`

	start time.Time
	end   time.Time
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}

	r.LeaveType = strings.ToLower(strings.TrimSpace(r.LeaveType))
	if !LeaveType(r.LeaveType).IsValid() {
		errs.Add("leave_type", "leave_type must be one of: annual, sick, personal, maternity, unpaid")
	}

	var startOK, endOK bool
	if r.start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	if r.end, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && r.end.Before(r.start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if r.Reason != nil && len(*r.Reason) > 1000 {
		errs.Add("reason", "reason must not exceed 1000 characters")
	}

	return errs.Err()
}

// Period returns the parsed dates. Valid only after Validate succeeds.
func (r *SubmitLeaveRequest) Period() (start, end time.Time) {
	return r.start, r.end
}

// CalendarDays counts the days from start to end, both inclusive.
func CalendarDays(start, end time.Time) decimal.Decimal {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := int64(e.Sub(s)/(24*time.Hour)) + 1
	if days < 0 {
		days = 0
	}
	return decimal.NewFromInt(days)
}

// ValidateYear checks the year accepted by balance queries.
func ValidateYear(year int) error {
	if year < MinBalanceYear || year > MaxBalanceYear {
		return validator.ValidationErrors{{Field: "year", Message: "year must be between 1900 and 9999"}}
	}
	return nil
}

type BalanceResponse struct {
	Total     float64 `json:"total"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
}

type LeaveBalanceResponse struct {
	EmployeeID int64           `json:"employee_id"`
	Year       int             `json:"year"`
	Annual     BalanceResponse `json:"annual_leave"`
	Sick       BalanceResponse `json:"sick_leave"`
}

func newBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		Total:     b.Total.InexactFloat64(),
		Used:      b.Used.InexactFloat64(),
		Remaining: b.Remaining.InexactFloat64(),
	}
}

func NewLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		EmployeeID: b.EmployeeID,
		Year:       b.Year,
		Annual:     newBalanceResponse(b.Annual),
		Sick:       newBalanceResponse(b.Sick),
	}
}

type LeaveRequestResponse struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employee_id"`
	LeaveType  LeaveType  `json:"leave_type"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	TotalDays  float64    `json:"total_days"`
	Reason     *string    `json:"reason"`
	Status     string     `json:"status"`
	ApprovedBy *int64     `json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  r.LeaveType,
		StartDate:  r.StartDate.Format(validator.DateLayout),
		EndDate:    r.EndDate.Format(validator.DateLayout),
		TotalDays:  r.TotalDays.InexactFloat64(),
		Reason:     r.Reason,
		Status:     string(r.Status),
		ApprovedBy: r.ApprovedBy,
		ApprovedAt: r.ApprovedAt,
		CreatedAt:  r.CreatedAt,
	}
}
