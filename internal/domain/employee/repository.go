package employee

import "context"

// EmployeeRepository is the read-only view of the employee directory.
// Employee records are owned by the employee CRUD module.
type EmployeeRepository interface {
	GetDisplay(ctx context.Context, id int64) (Display, error)
	GetEntitlement(ctx context.Context, id int64) (Entitlement, error)
}
