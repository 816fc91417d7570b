package apperror

import "errors"

// Kind classifies an error by how the caller is expected to react to it.
type Kind string

const (
	// FailedPrecondition means the current state forbids the operation.
	// The caller should re-read state before retrying.
	FailedPrecondition Kind = "FAILED_PRECONDITION"
	InvalidArgument    Kind = "INVALID_ARGUMENT"
	NotFound           Kind = "NOT_FOUND"
	Unauthenticated    Kind = "UNAUTHENTICATED"
	PermissionDenied   Kind = "PERMISSION_DENIED"
	Unknown            Kind = "UNKNOWN"
)

// Error is a classified, human-readable error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
