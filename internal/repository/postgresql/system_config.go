package postgresql

import (
	"context"
	"fmt"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/systemconfig"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
)

type systemConfigRepository struct {
	db *database.DB
}

func NewSystemConfigRepository(db *database.DB) systemconfig.ConfigRepository {
	return &systemConfigRepository{db: db}
}

// GetMany implements systemconfig.ConfigRepository.
func (r *systemConfigRepository) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT config_key, config_value
		FROM system_configs
		WHERE config_key = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to read system configs: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan system config: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate system configs: %w", err)
	}
	return values, nil
}
