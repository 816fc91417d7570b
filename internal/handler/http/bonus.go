package http

import (
	"net/http"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/bonus"
	"github.com/hrms-vn/hrm-backend-go/internal/handler/http/response"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
)

type BonusHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService bonus.BonusService
}

func NewBonusHandler(bonusService bonus.BonusService) BonusHandler {
	return &bonusHandlerImpl{bonusService: bonusService}
}

// Create implements BonusHandler.
func (h *bonusHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateBonusRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.bonusService.CreateBonus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus created", result)
}

// List implements BonusHandler.
func (h *bonusHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var errs validator.ValidationErrors
	filter := bonus.BonusFilter{
		EmployeeID: queryID(q, "employee_id", &errs),
		Limit:      queryInt(q, "limit", &errs),
		Offset:     queryInt(q, "offset", &errs),
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.bonusService.ListBonuses(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Bonuses, &response.Meta{
		Limit:      result.Limit,
		Offset:     result.Offset,
		TotalItems: result.TotalCount,
	})
}
