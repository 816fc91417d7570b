package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/employee"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetDisplay implements employee.EmployeeRepository.
func (r *employeeRepository) GetDisplay(ctx context.Context, id int64) (employee.Display, error) {
	q := GetQuerier(ctx, r.db)

	var d employee.Display
	err := q.QueryRow(ctx, `
		SELECT id, employee_code, full_name
		FROM employees
		WHERE id = $1`, id).Scan(&d.ID, &d.EmployeeCode, &d.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Display{}, employee.ErrEmployeeNotFound
		}
		return employee.Display{}, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return d, nil
}

// GetEntitlement implements employee.EmployeeRepository.
func (r *employeeRepository) GetEntitlement(ctx context.Context, id int64) (employee.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	var e employee.Entitlement
	err := q.QueryRow(ctx, `
		SELECT annual_leave_total, sick_leave_total
		FROM employees
		WHERE id = $1`, id).Scan(&e.AnnualLeaveTotal, &e.SickLeaveTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Entitlement{}, employee.ErrEmployeeNotFound
		}
		return employee.Entitlement{}, fmt.Errorf("failed to get leave entitlement of employee %d: %w", id, err)
	}
	return e, nil
}
