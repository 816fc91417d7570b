package leave

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypeUnpaid    LeaveType = "unpaid"
)

// LeaveTypes lists every accepted leave type.
var LeaveTypes = []LeaveType{LeaveTypeAnnual, LeaveTypeSick, LeaveTypePersonal, LeaveTypeMaternity, LeaveTypeUnpaid}

// DrawsEntitlement reports whether requests of this type consume a yearly allotment.
func (t LeaveType) DrawsEntitlement() bool {
	return t == LeaveTypeAnnual || t == LeaveTypeSick
}

func (t LeaveType) IsValid() bool {
	return slices.Contains(LeaveTypes, t)
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         int64
	EmployeeID int64
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	TotalDays  decimal.Decimal
	Reason     *string
	Status     RequestStatus
	ApprovedBy *int64
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ApprovedLeave is the part of an approved request that counts toward a balance.
type ApprovedLeave struct {
	LeaveType LeaveType
	TotalDays decimal.Decimal
	StartDate time.Time
}

// Balance is the used and remaining allotment of one leave type. Remaining
// goes negative when approvals exceed the allotment.
type Balance struct {
	Total     decimal.Decimal
	Used      decimal.Decimal
	Remaining decimal.Decimal
}

type LeaveBalance struct {
	EmployeeID int64
	Year       int
	Annual     Balance
	Sick       Balance
}

// Of returns the balance for t and whether t has one.
func (b LeaveBalance) Of(t LeaveType) (Balance, bool) {
	switch t {
	case LeaveTypeAnnual:
		return b.Annual, true
	case LeaveTypeSick:
		return b.Sick, true
	default:
		return Balance{}, false
	}
}
