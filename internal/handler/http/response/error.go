package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/apperror"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		slog.Error("unhandled error", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
		return
	}

	switch appErr.Kind {
	case apperror.InvalidArgument:
		BadRequest(w, appErr.Message, nil)
	case apperror.FailedPrecondition:
		Conflict(w, appErr.Message)
	case apperror.NotFound:
		NotFound(w, appErr.Message)
	case apperror.Unauthenticated:
		Unauthorized(w, appErr.Message)
	case apperror.PermissionDenied:
		Forbidden(w, appErr.Message)
	default:
		slog.Error("unhandled error", slog.Any("error", err))
		InternalServerError(w, "An unexpected error occurred")
	}
}
