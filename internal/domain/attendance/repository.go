package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access methods for attendance records.
// Rows are keyed by (employee_id, work_date).
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns nil when the employee has no row for workDate.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, workDate time.Time) (*Attendance, error)

	// LockByEmployeeAndDate is GetByEmployeeAndDate with a row lock held until
	// the surrounding transaction ends.
	LockByEmployeeAndDate(ctx context.Context, employeeID int64, workDate time.Time) (*Attendance, error)

	// InsertCheckIn creates the day row. inserted is false when a row for the
	// same key already exists.
	InsertCheckIn(ctx context.Context, employeeID int64, workDate, checkIn time.Time, notes *string) (record Attendance, inserted bool, err error)

	// SetCheckIn fills check_in on an existing row that has none. Notes are
	// replaced only when non-nil.
	SetCheckIn(ctx context.Context, id int64, checkIn time.Time, notes *string) (Attendance, error)

	// SetCheckOut records the check-out. updated is false when the row was
	// already checked out.
	SetCheckOut(ctx context.Context, id int64, checkOut time.Time, totalHours, overtimeHours decimal.Decimal, notes string) (record Attendance, updated bool, err error)

	// List returns one page of rows, newest work date first, and the total match count.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}

// PolicyProvider returns the workday policy in force for the current request.
type PolicyProvider interface {
	Get(ctx context.Context) (WorkdayPolicy, error)
}
