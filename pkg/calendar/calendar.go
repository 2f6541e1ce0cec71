// Package calendar implements calendar-exact elapsed-time decomposition.
//
// Months and years have variable length, so an elapsed span cannot be derived
// by dividing a duration. Elapsed instead searches for the largest whole-year
// and whole-month offsets that fit between the two instants, validating every
// candidate by exact calendar construction, and only the sub-month remainder
// is decomposed as a plain duration. All arithmetic is integer.
package calendar

import (
	"fmt"
	"time"
)

const (
	monthsPerYear    = 12
	hoursPerDay      = 24
	initialYearBound = 8 // starting bound for the exponential search
)

// Breakdown is the decomposition of the time elapsed between two instants.
// Fields are non-negative whenever the reference instant is not before the
// start instant.
type Breakdown struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

// Field is one (label, zero-padded value) pair of a rendered breakdown.
type Field struct {
	Label string
	Value string
}

// AddOffset returns t shifted by whole calendar years and months.
//
// Month overflow is normalized into additional years (month 13 becomes month
// 1 of the next year). The day of month is clamped to the last valid day of
// the target month, so 31 Jan + 1 month yields 28 (or 29) Feb, never 3 Mar.
// Time-of-day fields carry through unchanged.
func AddOffset(t time.Time, years, months int) time.Time {
	y := t.Year() + years
	m := int(t.Month()) + months
	y += (m - 1) / monthsPerYear
	m = (m-1)%monthsPerYear + 1

	d := t.Day()
	if last := lastDayOfMonth(y, time.Month(m)); d > last {
		d = last
	}

	return time.Date(y, time.Month(m), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Elapsed decomposes the span from birth to now into calendar years and
// months plus a plain remainder.
//
// The years component is the largest Y with AddOffset(birth, Y, 0) ≤ now,
// found by exponential bound-doubling followed by binary search; the months
// component is the largest M in [0,11] with AddOffset(anchor, 0, M) ≤ now.
// A completed year or month therefore counts only once its anchor date is
// reached; partial progress flows down into the finer units.
//
// The result is unspecified when now precedes birth.
func Elapsed(birth, now time.Time) Breakdown {
	years := maxYears(birth, now)
	anchor := AddOffset(birth, years, 0)

	months := maxMonths(anchor, now)
	anchor = AddOffset(anchor, 0, months)

	rem := now.Sub(anchor)
	days := int(rem / (hoursPerDay * time.Hour))
	rem -= time.Duration(days) * hoursPerDay * time.Hour
	hours := int(rem / time.Hour)
	rem -= time.Duration(hours) * time.Hour
	minutes := int(rem / time.Minute)
	rem -= time.Duration(minutes) * time.Minute
	seconds := int(rem / time.Second)
	rem -= time.Duration(seconds) * time.Second
	millis := int(rem / time.Millisecond)

	return Breakdown{
		Years:   years,
		Months:  months,
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
		Millis:  millis,
	}
}

// maxYears finds the largest Y ≥ 0 such that AddOffset(birth, Y, 0) ≤ now.
func maxYears(birth, now time.Time) int {
	lo, hi := 0, initialYearBound
	for !AddOffset(birth, hi, 0).After(now) {
		lo = hi
		hi *= 2
	}
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if AddOffset(birth, mid, 0).After(now) {
			hi = mid - 1
		} else {
			lo = mid
		}
	}
	return lo
}

// maxMonths finds the largest M in [0, 11] such that
// AddOffset(anchor, 0, M) ≤ now.
func maxMonths(anchor, now time.Time) int {
	lo, hi := 0, monthsPerYear-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if AddOffset(anchor, 0, mid).After(now) {
			hi = mid - 1
		} else {
			lo = mid
		}
	}
	return lo
}

// lastDayOfMonth returns the number of days in the given month, accounting
// for leap years. Day zero of the following month normalizes to it.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Fields returns the breakdown as ordered (label, value) pairs with fixed
// zero-padded widths: years three digits, milliseconds three digits, the rest
// two. Fixed widths keep the rendered layout stable frame to frame.
func (b Breakdown) Fields(withMillis bool) []Field {
	fields := []Field{
		{Label: "YEARS", Value: fmt.Sprintf("%03d", b.Years)},
		{Label: "MONTHS", Value: fmt.Sprintf("%02d", b.Months)},
		{Label: "DAYS", Value: fmt.Sprintf("%02d", b.Days)},
		{Label: "HOURS", Value: fmt.Sprintf("%02d", b.Hours)},
		{Label: "MINUTES", Value: fmt.Sprintf("%02d", b.Minutes)},
		{Label: "SECONDS", Value: fmt.Sprintf("%02d", b.Seconds)},
	}
	if withMillis {
		fields = append(fields, Field{Label: "MILLISECONDS", Value: fmt.Sprintf("%03d", b.Millis)})
	}
	return fields
}
