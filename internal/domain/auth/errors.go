package auth

import "github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"

var (
	ErrInvalidToken      = apperror.New(apperror.Unauthenticated, "Invalid or missing access token")
	ErrNoEmployeeProfile = apperror.New(apperror.PermissionDenied, "Account is not linked to an employee")
	ErrForbidden         = apperror.New(apperror.PermissionDenied, "Insufficient permissions")
)
