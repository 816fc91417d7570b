package attendance

import (
	"bytes"
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's record for the employee.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's record and computes worked hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// ListAttendance returns records with their derived status.
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetToday returns nil when the employee has no record today.
	GetToday(ctx context.Context, employeeID int64) (*AttendanceResponse, error)

	// ExportAttendance renders the filtered records as an xlsx workbook.
	ExportAttendance(ctx context.Context, filter AttendanceFilter) (*bytes.Buffer, string, error)
}
