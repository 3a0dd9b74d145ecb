// Package schedule decides whether a recurring obligation fires on a
// given calendar day.
package schedule

import (
	"github.com/flowcast-dev/flowcast/internal/model"
)

// OccursOn reports whether a liability's schedule fires on the given
// day of a month. The liability's nominal day is clamped into
// [1, daysInMonth] to form the anchor; every policy derives from that
// anchor. Pure predicate, no side effects.
func OccursOn(liab model.Liability, day, daysInMonth, year, month int) bool {
	anchor := liab.Day
	if anchor < 1 {
		anchor = 1
	}
	if anchor > daysInMonth {
		anchor = daysInMonth
	}

	switch liab.Frequency {
	case model.FreqDaily:
		return true
	case model.FreqEveryOtherDay:
		return day >= anchor && (day-anchor)%2 == 0
	case model.FreqWeekly:
		return day >= anchor && (day-anchor)%7 == 0
	case model.FreqAnnual:
		// An unset month means the liability fires whichever month is
		// being evaluated.
		target := liab.Month
		if target == 0 {
			target = month
		}
		return month == target && day == anchor
	default:
		return day == anchor
	}
}
