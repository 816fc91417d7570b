package attendance

import (
	"bytes"
	"time"

	"github.com/hrms-vn/hrm-backend-go/internal/domain/attendance"
	"github.com/hrms-vn/hrm-backend-go/internal/pkg/xlsx"
)

const exportSheet = "Attendance"

var exportColumns = []xlsx.Column{
	{Title: "Work Date", Width: 12},
	{Title: "Employee Code", Width: 14},
	{Title: "Full Name", Width: 28},
	{Title: "Check In", Width: 20},
	{Title: "Check Out", Width: 20},
	{Title: "Total Hours", Width: 12},
	{Title: "Overtime Hours", Width: 14},
	{Title: "Check-in Status", Width: 16},
	{Title: "Late Minutes", Width: 12},
	{Title: "Check-out Status", Width: 16},
	{Title: "Early Leave Minutes", Width: 18},
	{Title: "Notes", Width: 40},
}

func renderAttendanceSheet(records []attendance.AttendanceResponse, loc *time.Location) (*bytes.Buffer, error) {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		row := []any{
			r.WorkDate,
			r.EmployeeCode,
			r.FullName,
			formatInstant(r.CheckIn, loc),
			formatInstant(r.CheckOut, loc),
			floatOrBlank(r.TotalHours),
			floatOrBlank(r.OvertimeHours),
		}
		if r.StatusResponse != nil {
			row = append(row,
				string(r.CheckinStatus),
				r.LateMinutes,
				string(r.CheckoutStatus),
				r.EarlyLeaveMinutes,
			)
		} else {
			row = append(row, "", "", "", "")
		}
		notes := ""
		if r.Notes != nil {
			notes = *r.Notes
		}
		rows = append(rows, append(row, notes))
	}
	return xlsx.Render(exportSheet, exportColumns, rows)
}

func formatInstant(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02 15:04:05")
}

func floatOrBlank(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}
