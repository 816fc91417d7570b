package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	// ListApproved returns approved requests whose start date is within [from, to].
	ListApproved(ctx context.Context, employeeID int64, from, to time.Time) ([]ApprovedLeave, error)
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	// LockByID reads the request with a row lock held until the transaction ends.
	LockByID(ctx context.Context, id int64) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status RequestStatus, approverID int64, at time.Time) (LeaveRequest, error)
}
