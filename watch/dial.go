// Package watch models a mechanical watch whose day-of-week and day-of-month
// indicators are driven by a single shared advance mechanism. One click moves
// both wheels at once: the day wheel by one position mod 7 and the date wheel
// by one position mod 31. Because the wheels cannot be set independently,
// reaching a target reading from the current one takes a specific number of
// forward clicks, which [Dial.ClicksTo] computes in closed form.
package watch

import (
	"fmt"
	"time"
)

// Wheel sizes of the coupled advance mechanism.
const (
	dayModulus  = 7
	dateModulus = 31

	// cycleLength is lcm(7, 31). Advancing by a full cycle is the identity,
	// so every click distance is a value in [0, cycleLength).
	cycleLength = dayModulus * dateModulus
)

// dayAbbr holds the labels engraved on the day wheel, indexed by time.Weekday.
var dayAbbr = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Dial is an immutable reading of the watch's two coupled indicators.
// Advancing never mutates a Dial; it returns a new value. The zero value is
// not a valid reading (Date is 1-based); construct one with NewDial or DialAt.
type Dial struct {
	Day  time.Weekday // day wheel position, time.Sunday..time.Saturday
	Date int          // date wheel position, 1..31
}

// NewDial returns a Dial with the given wheel positions. It returns an error
// wrapping ErrIllegalArgument if either position is out of range.
func NewDial(day time.Weekday, date int) (Dial, error) {
	if day < time.Sunday || day > time.Saturday {
		return Dial{}, illegalArgumentError(fmt.Sprintf("day out of range: %d", day))
	}
	if date < 1 || date > dateModulus {
		return Dial{}, illegalArgumentError(fmt.Sprintf("date out of range: %d", date))
	}
	return Dial{Day: day, Date: date}, nil
}

// DialAt returns the reading a correctly running watch shows on the calendar
// day of t. time.Weekday already numbers Sunday as 0, and the day of the
// month carries over unreduced. The date wheel has no notion of month length:
// in a 30-day month the watch never reaches 31 on its own, but 31 is still a
// reachable wheel position.
func DialAt(t time.Time) Dial {
	return Dial{Day: t.Weekday(), Date: t.Day()}
}

// Advance returns the reading after n clicks of the shared mechanism.
// Negative n winds the state backward; both wheels stay in range because the
// reduction is a floored modulo rather than Go's truncating remainder.
func (d Dial) Advance(n int) Dial {
	return Dial{
		Day:  time.Weekday(floorMod(int(d.Day)+n, dayModulus)),
		Date: floorMod(d.Date-1+n, dateModulus) + 1,
	}
}

// ClicksTo returns the number of forward clicks that turn d into target: the
// unique value c in [0, cycleLength) with d.Advance(c) == target. Clicking c
// times moves the day wheel by c mod 7 and the date wheel by c mod 31, so c
// is the simultaneous solution of the two congruences, reconstructed via the
// Chinese remainder theorem. Every target is reachable since 7 and 31 are
// coprime.
func (d Dial) ClicksTo(target Dial) int {
	dayDelta := floorMod(int(target.Day)-int(d.Day), dayModulus)
	dateDelta := floorMod(target.Date-d.Date, dateModulus)
	return combineResidues(dayDelta, dateDelta)
}

// DayClicks returns the smallest number of clicks that moves the day wheel
// from current to want, ignoring the date wheel. Every click count that works
// for the day wheel alone is this value plus a multiple of 7.
func DayClicks(current, want time.Weekday) int {
	return floorMod(int(want)-int(current), dayModulus)
}

// DateClicks returns the smallest number of clicks that moves the date wheel
// from current to want, ignoring the day wheel. Every click count that works
// for the date wheel alone is this value plus a multiple of 31.
func DateClicks(current, want int) int {
	return floorMod(want-current, dateModulus)
}

// String formats the reading the way the watch face presents it, e.g. "SUN, 23".
func (d Dial) String() string {
	return fmt.Sprintf("%s, %d", dayAbbr[d.Day], d.Date)
}
