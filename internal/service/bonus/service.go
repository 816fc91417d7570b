package bonus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/bonus"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// maxAmount is the first value a NUMERIC(15,2) column cannot hold.
var maxAmount = decimal.New(1, 13)

type BonusServiceImpl struct {
	bonus.BonusRepository
	logger *slog.Logger
}

func NewBonusService(bonusRepository bonus.BonusRepository, logger *slog.Logger) bonus.BonusService {
	return &BonusServiceImpl{
		BonusRepository: bonusRepository,
		logger:          logger,
	}
}

// CreateBonus implements bonus.BonusService.
func (s *BonusServiceImpl) CreateBonus(ctx context.Context, req bonus.CreateBonusRequest) (bonus.BonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.BonusResponse{}, err
	}

	amount, err := money.ToDecimal(req.Amount)
	if err != nil {
		return bonus.BonusResponse{}, err
	}
	if !amount.Decimal().IsPositive() {
		return bonus.BonusResponse{}, bonus.ErrAmountNotPositive
	}
	if amount.Decimal().GreaterThanOrEqual(maxAmount) {
		return bonus.BonusResponse{}, bonus.ErrAmountTooLarge
	}

	stored, err := s.BonusRepository.Create(ctx, req.EmployeeID, amount.Text(), req.Reason, req.Date())
	if err != nil {
		return bonus.BonusResponse{}, err
	}

	b, err := fromStored(stored)
	if err != nil {
		return bonus.BonusResponse{}, err
	}

	s.logger.Info("bonus created",
		slog.Int64("bonus_id", b.ID),
		slog.Int64("employee_id", b.EmployeeID),
		slog.String("amount", b.Amount.Text()),
	)

	return bonus.NewBonusResponse(b), nil
}

// ListBonuses implements bonus.BonusService.
func (s *BonusServiceImpl) ListBonuses(ctx context.Context, filter bonus.BonusFilter) (bonus.ListBonusResponse, error) {
	if err := filter.Validate(); err != nil {
		return bonus.ListBonusResponse{}, err
	}

	rows, total, err := s.BonusRepository.List(ctx, filter)
	if err != nil {
		return bonus.ListBonusResponse{}, err
	}

	bonuses := make([]bonus.BonusResponse, 0, len(rows))
	for _, row := range rows {
		b, err := fromStored(row)
		if err != nil {
			return bonus.ListBonusResponse{}, err
		}
		bonuses = append(bonuses, bonus.NewBonusResponse(b))
	}

	return bonus.ListBonusResponse{
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
		Bonuses:    bonuses,
	}, nil
}

// fromStored normalizes the stored amount text back into an Amount.
func fromStored(row bonus.StoredBonus) (bonus.Bonus, error) {
	amount, err := money.ToDecimal(row.AmountText)
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to read amount of bonus %d: %w", row.ID, err)
	}
	return bonus.Bonus{
		ID:         row.ID,
		EmployeeID: row.EmployeeID,
		Amount:     amount,
		Reason:     row.Reason,
		BonusDate:  row.BonusDate,
		CreatedAt:  row.CreatedAt,
	}, nil
}
