package http

import (
	"net/http"

	"github.com/hrms-vn/hrm-backend-go/internal/handler/http/response"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/money"
)

type AmountHandler interface {
	Normalize(w http.ResponseWriter, r *http.Request)
}

type amountHandlerImpl struct{}

func NewAmountHandler() AmountHandler {
	return amountHandlerImpl{}
}

type normalizeAmountRequest struct {
	Amount any `json:"amount"`
}

// Normalize implements AmountHandler.
func (amountHandlerImpl) Normalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeAmountRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := money.Normalize(req.Amount)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
