package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is the ledger row for one employee on one work day.
type Attendance struct {
	ID            int64
	EmployeeID    int64
	WorkDate      time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	TotalHours    *decimal.Decimal
	OvertimeHours *decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined from employees
	EmployeeCode string
	FullName     string
}

type CheckinStatus string

const (
	CheckinOnTime CheckinStatus = "on_time"
	CheckinLate   CheckinStatus = "late"
)

type CheckoutStatus string

const (
	CheckoutOnTime     CheckoutStatus = "on_time"
	CheckoutEarlyLeave CheckoutStatus = "early_leave"
)

// DerivedStatus is computed on read and never stored.
type DerivedStatus struct {
	CheckinStatus     CheckinStatus
	LateMinutes       int
	CheckoutStatus    CheckoutStatus
	EarlyLeaveMinutes int
}

// WorkdayPolicy holds the expected start and end of a work day as offsets
// from midnight in Location.
type WorkdayPolicy struct {
	Start    time.Duration
	End      time.Duration
	Location *time.Location
}

const (
	DefaultWorkStart = 8 * time.Hour
	DefaultWorkEnd   = 17*time.Hour + 30*time.Minute
)
