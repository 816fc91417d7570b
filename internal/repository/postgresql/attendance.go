package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/attendance"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.work_date, a.check_in, a.check_out,
	a.total_hours, a.overtime_hours, a.notes, a.created_at, a.updated_at,
	e.employee_code, e.full_name`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.WorkDate, &a.CheckIn, &a.CheckOut,
		&a.TotalHours, &a.OvertimeHours, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeCode, &a.FullName,
	)
	return a, err
}

func (r *attendanceRepository) getByEmployeeAndDate(ctx context.Context, employeeID int64, workDate time.Time, lock string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.work_date = $2` + lock

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, dateOnly(workDate)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %d: %w", employeeID, err)
	}
	return &a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, workDate time.Time) (*attendance.Attendance, error) {
	return r.getByEmployeeAndDate(ctx, employeeID, workDate, "")
}

// LockByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) LockByEmployeeAndDate(ctx context.Context, employeeID int64, workDate time.Time) (*attendance.Attendance, error) {
	return r.getByEmployeeAndDate(ctx, employeeID, workDate, " FOR UPDATE OF a")
}

// InsertCheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepository) InsertCheckIn(ctx context.Context, employeeID int64, workDate, checkIn time.Time, notes *string) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH a AS (
			INSERT INTO attendances (employee_id, work_date, check_in, notes)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (employee_id, work_date) DO NOTHING
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM a
		JOIN employees e ON e.id = a.employee_id`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, dateOnly(workDate), checkIn, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to insert check-in: %w", err)
	}
	return a, true, nil
}

// SetCheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckIn(ctx context.Context, id int64, checkIn time.Time, notes *string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH a AS (
			UPDATE attendances
			SET check_in = $2, notes = COALESCE($3, notes), updated_at = NOW()
			WHERE id = $1 AND check_in IS NULL
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM a
		JOIN employees e ON e.id = a.employee_id`

	a, err := scanAttendance(q.QueryRow(ctx, query, id, checkIn, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check-in: %w", err)
	}
	return a, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id int64, checkOut time.Time, totalHours, overtimeHours decimal.Decimal, notes string) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH a AS (
			UPDATE attendances
			SET check_out = $2, total_hours = $3, overtime_hours = $4, notes = $5, updated_at = NOW()
			WHERE id = $1 AND check_in IS NOT NULL AND check_out IS NULL
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM a
		JOIN employees e ON e.id = a.employee_id`

	a, err := scanAttendance(q.QueryRow(ctx, query, id, checkOut, totalHours, overtimeHours, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to set check-out: %w", err)
	}
	return a, true, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	conditions := []string{"TRUE"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.work_date >= $%d::date", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.work_date <= $%d::date", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.work_date DESC, a.employee_id ASC
		LIMIT $%d OFFSET $%d`, attendanceColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0, filter.Limit)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, total, nil
}

// dateOnly formats t's calendar day for a DATE parameter, independent of its zone.
func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
