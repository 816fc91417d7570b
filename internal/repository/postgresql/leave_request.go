package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/employee"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/leave"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	id, employee_id, leave_type, start_date, end_date, total_days, reason,
	status, approved_by, approved_at, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate, &lr.TotalDays, &lr.Reason,
		&lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

// ListApproved implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListApproved(ctx context.Context, employeeID int64, from, to time.Time) ([]leave.ApprovedLeave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT leave_type, total_days, start_date
		FROM leave_requests
		WHERE employee_id = $1
			AND status = 'approved'
			AND start_date BETWEEN $2::date AND $3::date`,
		employeeID, dateOnly(from), dateOnly(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	defer rows.Close()

	var result []leave.ApprovedLeave
	for rows.Next() {
		var al leave.ApprovedLeave
		if err := rows.Scan(&al.LeaveType, &al.TotalDays, &al.StartDate); err != nil {
			return nil, fmt.Errorf("failed to scan approved leave: %w", err)
		}
		result = append(result, al)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approved leave: %w", err)
	}
	return result, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	created, err := scanLeaveRequest(q.QueryRow(ctx, `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, total_days, reason, status)
		VALUES ($1, $2, $3::date, $4::date, $5, $6, $7)
		RETURNING `+leaveRequestColumns,
		req.EmployeeID, string(req.LeaveType), dateOnly(req.StartDate), dateOnly(req.EndDate),
		req.TotalDays, req.Reason, string(req.Status),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// LockByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) LockByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, `
		SELECT `+leaveRequestColumns+`
		FROM leave_requests
		WHERE id = $1
		FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %d: %w", id, err)
	}
	return lr, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status leave.RequestStatus, approverID int64, at time.Time) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING `+leaveRequestColumns,
		id, string(status), approverID, at,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request %d: %w", id, err)
	}
	return lr, nil
}
