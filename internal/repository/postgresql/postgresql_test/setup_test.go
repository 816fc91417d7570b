package postgresql_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

// openTestDB connects to TEST_DATABASE_URL and migrates it once per run.
// Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(context.Background(), dsn, 10)
		if testDBErr != nil {
			return
		}
		testDBErr = database.RunMigrations(testDB, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})
	require.NoError(t, testDBErr)

	resetTables(t, testDB)
	return testDB
}

func resetTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()
	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "TRUNCATE TABLE attendances, leave_requests, bonuses, employees RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	_, err = tx.Exec(ctx, `
		INSERT INTO system_configs (config_key, config_value) VALUES
			('work_start_time', '08:00:00'),
			('work_end_time', '17:30:00')
		ON CONFLICT (config_key) DO UPDATE SET config_value = EXCLUDED.config_value`)
	require.NoError(t, err)

	require.NoError(t, tx.Commit(ctx))
}

func createTestEmployee(t *testing.T, db *database.DB, code, name string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO employees (employee_code, full_name)
		VALUES ($1, $2)
		RETURNING id`, code, name).Scan(&id)
	require.NoError(t, err)
	return id
}
