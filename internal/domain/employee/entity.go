package employee

import (
	"github.com/shopspring/decimal"
)

// Display is the subset of an employee shown next to attendance rows.
type Display struct {
	ID           int64
	EmployeeCode string
	FullName     string
}

// Entitlement is the yearly leave allotment, in days.
type Entitlement struct {
	AnnualLeaveTotal decimal.Decimal
	SickLeaveTotal   decimal.Decimal
}
