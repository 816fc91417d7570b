package leave

import (
	"github.com/hrms-vn/hrm-backend-go/internal/domain/employee"
	"github.com/hrms-vn/hrm-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// CalculateBalance sums approved annual and sick leave starting in year
// against the employee's entitlement. Other leave types draw on nothing.
// Remaining is not floored at zero.
func CalculateBalance(employeeID int64, year int, entitlement employee.Entitlement, approved []leave.ApprovedLeave) leave.LeaveBalance {
	usedAnnual := decimal.Zero
	usedSick := decimal.Zero

	for _, al := range approved {
		if al.StartDate.Year() != year {
			continue
		}
		switch al.LeaveType {
		case leave.LeaveTypeAnnual:
			usedAnnual = usedAnnual.Add(al.TotalDays)
		case leave.LeaveTypeSick:
			usedSick = usedSick.Add(al.TotalDays)
		}
	}

	return leave.LeaveBalance{
		EmployeeID: employeeID,
		Year:       year,
		Annual: leave.Balance{
			Total:     entitlement.AnnualLeaveTotal,
			Used:      usedAnnual,
			Remaining: entitlement.AnnualLeaveTotal.Sub(usedAnnual),
		},
		Sick: leave.Balance{
			Total:     entitlement.SickLeaveTotal,
			Used:      usedSick,
			Remaining: entitlement.SickLeaveTotal.Sub(usedSick),
		},
	}
}
