package postgresql_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/attendance"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/clock"
	"github.com/hrms-vn/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-vn/hrm-backend-go/internal/service/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ict = time.FixedZone("ICT", 7*3600)

func TestAttendanceRepository_InsertCheckInOncePerDay(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	empID := createTestEmployee(t, db, "NV-0001", "Trần Thị Bình")

	day := time.Date(2024, 3, 11, 0, 0, 0, 0, ict)
	in := time.Date(2024, 3, 11, 8, 5, 0, 0, ict)

	created, inserted, err := repo.InsertCheckIn(ctx, empID, day, in, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	assert.Equal(t, "NV-0001", created.EmployeeCode)
	assert.Equal(t, "Trần Thị Bình", created.FullName)
	require.NotNil(t, created.CheckIn)
	assert.True(t, created.CheckIn.Equal(in))

	_, inserted, err = repo.InsertCheckIn(ctx, empID, day, in.Add(time.Minute), nil)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := repo.GetByEmployeeAndDate(ctx, empID, day)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "2024-03-11", got.WorkDate.Format("2006-01-02"))
}

func TestAttendanceRepository_CheckOutIsConditional(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	empID := createTestEmployee(t, db, "NV-0002", "Lê Văn Cường")

	day := time.Date(2024, 3, 11, 0, 0, 0, 0, ict)
	created, _, err := repo.InsertCheckIn(ctx, empID, day, time.Date(2024, 3, 11, 8, 0, 0, 0, ict), nil)
	require.NoError(t, err)

	out := time.Date(2024, 3, 11, 17, 30, 0, 0, ict)
	updated, ok, err := repo.SetCheckOut(ctx, created.ID, out, decimal.RequireFromString("9.5"), decimal.RequireFromString("1.5"), "")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, updated.TotalHours)
	assert.Equal(t, "9.5", updated.TotalHours.String())
	assert.Equal(t, "1.5", updated.OvertimeHours.String())

	_, ok, err = repo.SetCheckOut(ctx, created.ID, out.Add(time.Hour), decimal.NewFromInt(10), decimal.NewFromInt(2), "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAttendanceRepository_ListOrderingAndFilters(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	a := createTestEmployee(t, db, "NV-0003", "Phạm Minh Đức")
	b := createTestEmployee(t, db, "NV-0004", "Hoàng Thu Hà")

	for _, d := range []int{11, 12, 13} {
		day := time.Date(2024, 3, d, 0, 0, 0, 0, ict)
		for _, emp := range []int64{b, a} {
			_, _, err := repo.InsertCheckIn(ctx, emp, day, day.Add(8*time.Hour), nil)
			require.NoError(t, err)
		}
	}

	start, end := "2024-03-12", "2024-03-13"
	records, total, err := repo.List(ctx, attendance.AttendanceFilter{StartDate: &start, EndDate: &end, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, records, 4)

	var order [][2]any
	for _, r := range records {
		order = append(order, [2]any{r.WorkDate.Format("2006-01-02"), r.EmployeeID})
	}
	assert.Equal(t, [][2]any{
		{"2024-03-13", a}, {"2024-03-13", b},
		{"2024-03-12", a}, {"2024-03-12", b},
	}, order)

	records, total, err = repo.List(ctx, attendance.AttendanceFilter{EmployeeID: &b, Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-03-12", records[0].WorkDate.Format("2006-01-02"))
}

// Concurrent check-ins through the real transaction and row lock.
func TestAttendanceService_ConcurrentCheckIn(t *testing.T) {
	db := openTestDB(t)
	empID := createTestEmployee(t, db, "NV-0042", "Nguyễn Văn An")

	clk := clock.NewFixed(time.Date(2024, 3, 11, 8, 5, 0, 0, ict))
	svc := attendanceService.NewAttendanceService(
		postgresql.NewTransactor(db),
		postgresql.NewAttendanceRepository(db),
		postgresql.NewEmployeeRepository(db),
		attendanceService.NewPolicyProvider(postgresql.NewSystemConfigRepository(db), clk),
		clk,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: empID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, attendance.ErrAlreadyCheckedIn):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, conflicts)

	clk.Set(time.Date(2024, 3, 11, 17, 30, 0, 0, ict))
	out, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: empID})
	require.NoError(t, err)
	require.NotNil(t, out.TotalHours)
	assert.Equal(t, 9.42, *out.TotalHours)

	today, err := svc.GetToday(context.Background(), empID)
	require.NoError(t, err)
	require.NotNil(t, today)
	require.NotNil(t, today.StatusResponse)
	assert.Equal(t, attendance.CheckinLate, today.CheckinStatus)
	assert.Equal(t, 5, today.LateMinutes)
}
