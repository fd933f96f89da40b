package daterange

import (
	"fmt"
	"time"
)

// Range is a concrete start/end pair in a resolved timezone. Start is always
// strictly before End.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the absolute span covered by the range.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Compute resolves a Command against the instant captured in ctx.
//
// For direction last the range ends at now; for next it starts at now.
// Seconds, minutes and hours are fixed-length spans. Days and weeks follow
// the calendar, so a day spanning a DST transition is not 24 hours. Months
// and years clamp the day of month so the far boundary always lands on a
// real date (31 Mar minus one month is 28 Feb, not 3 Mar).
//
// Compute is total for parser-produced Commands; a hand-built Command with
// an out-of-enum unit is a caller bug and panics.
func Compute(cmd Command, ctx Context) Range {
	now := ctx.Now
	span := cmd.Quantity
	if cmd.Direction == DirectionLast {
		span = -span
	}

	var far time.Time
	switch cmd.Unit {
	case UnitSecond:
		far = now.Add(time.Duration(span) * time.Second)
	case UnitMinute:
		far = now.Add(time.Duration(span) * time.Minute)
	case UnitHour:
		far = now.Add(time.Duration(span) * time.Hour)
	case UnitDay:
		far = now.AddDate(0, 0, span)
	case UnitWeek:
		far = now.AddDate(0, 0, 7*span)
	case UnitMonth:
		far = addMonths(now, span)
	case UnitYear:
		far = addMonths(now, 12*span)
	default:
		panic(fmt.Sprintf("daterange: command with unknown unit %q", cmd.Unit))
	}

	if cmd.Direction == DirectionLast {
		return Range{Start: far, End: now}
	}
	return Range{Start: now, End: far}
}

// ComputeRange resolves a timezone identifier and computes the range for cmd
// anchored at the current instant in that zone.
func ComputeRange(cmd Command, identifier string) (Range, error) {
	ctx, err := ResolveZone(identifier)
	if err != nil {
		return Range{}, err
	}
	return Compute(cmd, ctx), nil
}

// addMonths shifts t by the given number of months, clamping the day of
// month to the target month's length. time.AddDate normalises an overflowing
// day forward into the next month, which would move "one month ago" from
// 31 Mar to 3 Mar instead of the end of February.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	total := int(month) - 1 + months
	year += total / 12
	rem := total % 12
	if rem < 0 {
		rem += 12
		year--
	}
	target := time.Month(rem + 1)

	if last := daysIn(target, year); day > last {
		day = last
	}

	return time.Date(year, target, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
