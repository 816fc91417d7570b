package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/attendance"
	"github.com/hrms-vn/hrm-backend-go/internal/handler/http/response"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
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

	var req attendance.CheckInRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
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

	var req attendance.CheckOutRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.attendanceService.GetToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// data is null when there is no record yet.
	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Limit:      result.Limit,
		Offset:     result.Offset,
		TotalItems: result.TotalCount,
	})
}

// Export implements AttendanceHandler.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	buf, filename, err := h.attendanceService.ExportAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *attendanceHandlerImpl) parseFilter(r *http.Request) (attendance.AttendanceFilter, error) {
	principal, err := principalOf(r)
	if err != nil {
		return attendance.AttendanceFilter{}, err
	}

	q := r.URL.Query()
	var errs validator.ValidationErrors
	filter := attendance.AttendanceFilter{
		EmployeeID: queryID(q, "employee_id", &errs),
		StartDate:  queryString(q, "start_date"),
		EndDate:    queryString(q, "end_date"),
		Limit:      queryInt(q, "limit", &errs),
		Offset:     queryInt(q, "offset", &errs),
	}
	if err := errs.Err(); err != nil {
		return attendance.AttendanceFilter{}, err
	}

	filter.EmployeeID, err = targetEmployee(principal, filter.EmployeeID)
	if err != nil {
		return attendance.AttendanceFilter{}, err
	}
	return filter, nil
}
