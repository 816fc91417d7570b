package leave

import (
	"context"
)

type LeaveService interface {
	// GetBalance recomputes the employee's balance for year on every call.
	GetBalance(ctx context.Context, employeeID int64, year int) (LeaveBalanceResponse, error)
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	ApproveLeaveRequest(ctx context.Context, id int64, approverID int64) (LeaveRequestResponse, error)
	RejectLeaveRequest(ctx context.Context, id int64, approverID int64) (LeaveRequestResponse, error)
}
