package employee

import "github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound = apperror.New(apperror.NotFound, "Employee not found")
)
