package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/leave"
	"github.com/hrms-vn/hrm-backend-go/internal/handler/http/response"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/clock"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	SubmitRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	clock        clock.Clock
}

func NewLeaveHandler(leaveService leave.LeaveService, clk clock.Clock) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
		clock:        clk,
	}
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	principal, err := principalOf(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	q := r.URL.Query()
	var errs validator.ValidationErrors
	requested := queryID(q, "employee_id", &errs)

	// Defaults to the current year.
	year := l.clock.Now().In(l.clock.Location()).Year()
	if raw := q.Get("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			errs.Add("year", "year must be a number")
		}
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	if requested == nil {
		own, err := principal.RequireEmployee()
		if err != nil {
			response.HandleError(w, err)
			return
		}
		requested = &own
	}
	target, err := targetEmployee(principal, requested)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := l.leaveService.GetBalance(r.Context(), *target, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// SubmitRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	principal, err := principalOf(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	employeeID, err := principal.RequireEmployee()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID

	result, err := l.leaveService.SubmitLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, l.leaveService.ApproveLeaveRequest, "Leave request approved")
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, l.leaveService.RejectLeaveRequest, "Leave request rejected")
}

type decideFunc func(ctx context.Context, id int64, approverID int64) (leave.LeaveRequestResponse, error)

func (l *LeaveHandlerImpl) decide(w http.ResponseWriter, r *http.Request, fn decideFunc, message string) {
	principal, err := principalOf(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.BadRequest(w, "Invalid leave request ID", nil)
		return
	}

	result, err := fn(r.Context(), id, principal.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}
