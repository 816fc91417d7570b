package bonus

import "context"

type BonusService interface {
	CreateBonus(ctx context.Context, req CreateBonusRequest) (BonusResponse, error)
	ListBonuses(ctx context.Context, filter BonusFilter) (ListBonusResponse, error)
}
