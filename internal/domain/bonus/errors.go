package bonus

import "github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"

var (
	ErrAmountNotPositive = apperror.New(apperror.InvalidArgument, "amount must be greater than zero")
	ErrAmountTooLarge    = apperror.New(apperror.InvalidArgument, "amount must be less than 10000000000000")
)
