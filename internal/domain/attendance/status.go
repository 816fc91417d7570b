package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// StandardWorkHours is the length of a work day before overtime starts.
var StandardWorkHours = decimal.NewFromInt(8)

// DeriveStatus classifies a record against policy. Expected boundaries are
// anchored to the stored work date, so a check-in recorded after midnight
// is still judged against the day it belongs to.
func DeriveStatus(a Attendance, policy WorkdayPolicy) DerivedStatus {
	status := DerivedStatus{
		CheckinStatus:  CheckinOnTime,
		CheckoutStatus: CheckoutOnTime,
	}
	if a.CheckIn == nil && a.CheckOut == nil {
		return status
	}

	loc := policy.Location
	if loc == nil {
		loc = time.UTC
	}
	expectedStart := wallClock(a.WorkDate, policy.Start, loc)
	expectedEnd := wallClock(a.WorkDate, policy.End, loc)

	if a.CheckIn != nil && a.CheckIn.After(expectedStart) {
		status.CheckinStatus = CheckinLate
		status.LateMinutes = int(a.CheckIn.Sub(expectedStart) / time.Minute)
	}

	if a.CheckOut != nil && a.CheckOut.Before(expectedEnd) {
		status.CheckoutStatus = CheckoutEarlyLeave
		status.EarlyLeaveMinutes = int(expectedEnd.Sub(*a.CheckOut) / time.Minute)
	}

	return status
}

// wallClock places offset on date as a local time of day in loc. DST
// transitions do not move it.
func wallClock(date time.Time, offset time.Duration, loc *time.Location) time.Time {
	h := int(offset / time.Hour)
	m := int(offset % time.Hour / time.Minute)
	s := int(offset % time.Minute / time.Second)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, loc)
}

// ComputeHours returns the worked and overtime hours between checkIn and
// checkOut, rounded half away from zero to two decimals. A checkOut before
// checkIn returns ErrCheckOutBeforeCheckIn.
func ComputeHours(checkIn, checkOut time.Time) (total, overtime decimal.Decimal, err error) {
	worked := checkOut.Sub(checkIn)
	if worked < 0 {
		return decimal.Zero, decimal.Zero, ErrCheckOutBeforeCheckIn
	}
	total = decimal.NewFromInt(int64(worked)).
		Div(decimal.NewFromInt(int64(time.Hour))).
		Round(2)

	overtime = total.Sub(StandardWorkHours)
	if overtime.IsNegative() {
		overtime = decimal.Zero
	}
	return total, overtime, nil
}
