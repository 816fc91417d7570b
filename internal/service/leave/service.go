package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/employee"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/leave"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/clock"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/database"
	"golang.org/x/sync/errgroup"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	tx     database.Transactor
	clock  clock.Clock
	logger *slog.Logger
}

func NewLeaveService(
	tx database.Transactor,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	clk clock.Clock,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		tx:                     tx,
		clock:                  clk,
		logger:                 logger,
	}
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID int64, year int) (leave.LeaveBalanceResponse, error) {
	if err := leave.ValidateYear(year); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	balance, err := s.balance(ctx, employeeID, year)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	return leave.NewLeaveBalanceResponse(balance), nil
}

// balance loads the entitlement and the year's approved leave concurrently.
func (s *LeaveServiceImpl) balance(ctx context.Context, employeeID int64, year int) (leave.LeaveBalance, error) {
	var (
		entitlement employee.Entitlement
		approved    []leave.ApprovedLeave
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		entitlement, err = s.EmployeeRepository.GetEntitlement(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		var err error
		approved, err = s.LeaveRequestRepository.ListApproved(gCtx, employeeID, from, to)
		return err
	})

	if err := g.Wait(); err != nil {
		return leave.LeaveBalance{}, err
	}

	return CalculateBalance(employeeID, year, entitlement, approved), nil
}

// SubmitLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, end := req.Period()
	leaveType := leave.LeaveType(req.LeaveType)
	days := leave.CalendarDays(start, end)

	if leaveType.DrawsEntitlement() {
		// Always a fresh read; a balance shown earlier may be stale.
		balance, err := s.balance(ctx, req.EmployeeID, start.Year())
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		current, _ := balance.Of(leaveType)
		if days.GreaterThan(current.Remaining) {
			return leave.LeaveRequestResponse{}, leave.ErrInsufficientQuota
		}
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request submitted",
		slog.Int64("leave_request_id", created.ID),
		slog.Int64("employee_id", created.EmployeeID),
		slog.String("leave_type", string(created.LeaveType)),
		slog.String("total_days", created.TotalDays.String()),
	)

	return leave.NewLeaveRequestResponse(created), nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, id int64, approverID int64) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, id, approverID, leave.StatusApproved)
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, id int64, approverID int64) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, id, approverID, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id int64, approverID int64, status leave.RequestStatus) (leave.LeaveRequestResponse, error) {
	var updated leave.LeaveRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.LeaveRequestRepository.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		updated, err = s.LeaveRequestRepository.UpdateStatus(ctx, id, status, approverID, s.clock.Now())
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request decided",
		slog.Int64("leave_request_id", id),
		slog.String("status", string(status)),
		slog.Int64("approver_id", approverID),
	)

	return leave.NewLeaveRequestResponse(updated), nil
}
