package attendance

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/attendance"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/employee"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/clock"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	tx     database.Transactor
	policy attendance.PolicyProvider
	clock  clock.Clock
	logger *slog.Logger
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	policy attendance.PolicyProvider,
	clk clock.Clock,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		tx:                   tx,
		policy:               policy,
		clock:                clk,
		logger:               logger,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Unknown employees are NotFound rather than a foreign key failure.
	if _, err := s.EmployeeRepository.GetDisplay(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := clock.Today(s.clock)

	var record attendance.Attendance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.LockByEmployeeAndDate(ctx, req.EmployeeID, today)
		if err != nil {
			return err
		}

		if existing == nil {
			created, inserted, err := s.AttendanceRepository.InsertCheckIn(ctx, req.EmployeeID, today, now, req.Notes)
			if err != nil {
				return err
			}
			// Lost the race to a concurrent check-in.
			if !inserted {
				return attendance.ErrAlreadyCheckedIn
			}
			record = created
			return nil
		}

		if existing.CheckIn != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		record, err = s.AttendanceRepository.SetCheckIn(ctx, existing.ID, now, req.Notes)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.Info("employee checked in",
		slog.Int64("employee_id", req.EmployeeID),
		slog.String("work_date", today.Format("2006-01-02")),
		slog.Time("check_in", now),
	)

	return attendance.NewAttendanceResponse(record, nil), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := clock.Today(s.clock)

	// Omitted notes clear the stored notes.
	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	var record attendance.Attendance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.LockByEmployeeAndDate(ctx, req.EmployeeID, today)
		if err != nil {
			return err
		}
		if existing == nil || existing.CheckIn == nil {
			return attendance.ErrNotCheckedIn
		}
		if existing.CheckOut != nil {
			return attendance.ErrAlreadyCheckedOut
		}

		total, overtime, err := attendance.ComputeHours(*existing.CheckIn, now)
		if err != nil {
			return err
		}
		updated, ok, err := s.AttendanceRepository.SetCheckOut(ctx, existing.ID, now, total, overtime, notes)
		if err != nil {
			return err
		}
		if !ok {
			return attendance.ErrAlreadyCheckedOut
		}
		record = updated
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.Info("employee checked out",
		slog.Int64("employee_id", req.EmployeeID),
		slog.String("work_date", today.Format("2006-01-02")),
		slog.Time("check_out", now),
		slog.Any("total_hours", record.TotalHours),
	)

	return attendance.NewAttendanceResponse(record, nil), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	policy, err := s.policy.Get(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Limit:       filter.Limit,
		Offset:      filter.Offset,
		Attendances: withStatus(records, policy),
	}, nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID int64) (*attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, clock.Today(s.clock))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	policy, err := s.policy.Get(ctx)
	if err != nil {
		return nil, err
	}

	status := attendance.DeriveStatus(*record, policy)
	resp := attendance.NewAttendanceResponse(*record, &status)
	return &resp, nil
}

// ExportAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) (*bytes.Buffer, string, error) {
	filter.Limit, filter.Offset = 0, 0
	if err := filter.Validate(); err != nil {
		return nil, "", err
	}
	filter.Limit = attendance.MaxExportRows

	policy, err := s.policy.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	if total > int64(len(records)) {
		s.logger.Warn("attendance export truncated",
			slog.Int64("total", total),
			slog.Int("exported", len(records)),
		)
	}

	buf, err := renderAttendanceSheet(withStatus(records, policy), policy.Location)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render attendance export: %w", err)
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", s.clock.Now().Format("20060102_150405"))
	return buf, filename, nil
}

// withStatus derives each row's status against a single policy snapshot.
func withStatus(records []attendance.Attendance, policy attendance.WorkdayPolicy) []attendance.AttendanceResponse {
	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		status := attendance.DeriveStatus(r, policy)
		result = append(result, attendance.NewAttendanceResponse(r, &status))
	}
	return result
}
