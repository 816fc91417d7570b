package attendance

import (
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxExportRows   = 5000
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID int64   `json:"-"`
	Notes      *string `json:"notes"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs.Add("notes", "notes must not exceed 1000 characters")
	}

	return errs.Err()
}

type CheckOutRequest struct {
	EmployeeID int64   `json:"-"`
	Notes      *string `json:"notes"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs.Add("notes", "notes must not exceed 1000 characters")
	}

	return errs.Err()
}

// AttendanceFilter selects rows for listing and export. Dates are YYYY-MM-DD and inclusive.
type AttendanceFilter struct {
	EmployeeID *int64
	StartDate  *string
	EndDate    *string
	Limit      int
	Offset     int
}

// Validate checks the filter and fills in paging defaults.
func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && *f.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id must be a positive number")
	}

	// Limit validation
	if f.Limit < 0 {
		errs.Add("limit", "limit must be a positive number")
	}
	if f.Limit == 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		errs.Add("limit", "limit must not exceed 100")
	}

	if f.Offset < 0 {
		errs.Add("offset", "offset must not be negative")
	}

	var start, end time.Time
	var startOK, endOK bool
	if f.StartDate != nil {
		if start, startOK = validator.IsValidDate(*f.StartDate); !startOK {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != nil {
		if end, endOK = validator.IsValidDate(*f.EndDate); !endOK {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.Err()
}

// StatusResponse is the derived classification of a record.
type StatusResponse struct {
	CheckinStatus     CheckinStatus  `json:"checkin_status"`
	LateMinutes       int            `json:"late_minutes"`
	CheckoutStatus    CheckoutStatus `json:"checkout_status"`
	EarlyLeaveMinutes int            `json:"early_leave_minutes"`
}

type AttendanceResponse struct {
	ID            int64      `json:"id"`
	EmployeeID    int64      `json:"employee_id"`
	EmployeeCode  string     `json:"employee_code"`
	FullName      string     `json:"full_name"`
	WorkDate      string     `json:"work_date"`
	CheckIn       *time.Time `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	TotalHours    *float64   `json:"total_hours"`
	OvertimeHours *float64   `json:"overtime_hours"`
	Notes         *string    `json:"notes"`
	*StatusResponse
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// NewAttendanceResponse maps a record to its response form. Derived status
// is attached only when status is non-nil.
func NewAttendanceResponse(a Attendance, status *DerivedStatus) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeCode: a.EmployeeCode,
		FullName:     a.FullName,
		WorkDate:     a.WorkDate.Format(validator.DateLayout),
		CheckIn:      a.CheckIn,
		CheckOut:     a.CheckOut,
		Notes:        a.Notes,
	}
	if a.TotalHours != nil {
		v := a.TotalHours.InexactFloat64()
		resp.TotalHours = &v
	}
	if a.OvertimeHours != nil {
		v := a.OvertimeHours.InexactFloat64()
		resp.OvertimeHours = &v
	}
	if status != nil {
		resp.StatusResponse = &StatusResponse{
			CheckinStatus:     status.CheckinStatus,
			LateMinutes:       status.LateMinutes,
			CheckoutStatus:    status.CheckoutStatus,
			EarlyLeaveMinutes: status.EarlyLeaveMinutes,
		}
	}
	return resp
}
