package leave

import "github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"

var (
	ErrLeaveRequestNotFound         = apperror.New(apperror.NotFound, "Leave request not found")
	ErrInsufficientQuota            = apperror.New(apperror.FailedPrecondition, "Insufficient leave quota")
	ErrLeaveRequestAlreadyProcessed = apperror.New(apperror.FailedPrecondition, "Leave request already processed")
)
