package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/bonus"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/employee"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepository{db: db}
}

const bonusColumns = `id, employee_id, amount::text, reason, bonus_date, created_at`

func scanBonus(row pgx.Row) (bonus.StoredBonus, error) {
	var b bonus.StoredBonus
	err := row.Scan(&b.ID, &b.EmployeeID, &b.AmountText, &b.Reason, &b.BonusDate, &b.CreatedAt)
	return b, err
}

// Create implements bonus.BonusRepository.
func (r *bonusRepository) Create(ctx context.Context, employeeID int64, amountText string, reason *string, bonusDate time.Time) (bonus.StoredBonus, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBonus(q.QueryRow(ctx, `
		INSERT INTO bonuses (employee_id, amount, reason, bonus_date)
		VALUES ($1, $2::numeric, $3, $4::date)
		RETURNING `+bonusColumns,
		employeeID, amountText, reason, dateOnly(bonusDate),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return bonus.StoredBonus{}, employee.ErrEmployeeNotFound
		}
		return bonus.StoredBonus{}, fmt.Errorf("failed to create bonus: %w", err)
	}
	return b, nil
}

// List implements bonus.BonusRepository.
func (r *bonusRepository) List(ctx context.Context, filter bonus.BonusFilter) ([]bonus.StoredBonus, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []any{}
	argIdx := 1
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM bonuses WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bonuses: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM bonuses
		WHERE %s
		ORDER BY bonus_date DESC, id DESC
		LIMIT $%d OFFSET $%d`, bonusColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	result := make([]bonus.StoredBonus, 0, filter.Limit)
	for rows.Next() {
		b, err := scanBonus(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan bonus: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate bonuses: %w", err)
	}
	return result, total, nil
}
