package watch

import (
	"time"

	"github.com/seancmonahan/broken-watch/logger"
)

// nextCorrectHorizon bounds the NextCorrect search. Any in-range dial reading
// recurs on the real calendar well within two years; four years of headroom
// keeps the loop finite even for a hand-built out-of-range Dial.
const nextCorrectHorizon = 4 * 366

// Scanner checks dial readings against the real calendar. It holds no mutable
// state and is safe for concurrent use.
type Scanner struct {
	logger logger.Logger
}

// NewScanner returns a Scanner that logs through the given logger.
// A nil logger falls back to the package default.
func NewScanner(log logger.Logger) *Scanner {
	if log == nil {
		log = logger.Default()
	}
	return &Scanner{logger: log}
}

// defaultScanner backs the package-level convenience functions.
var defaultScanner = NewScanner(nil)

// CountCorrect reports on how many days of year a stuck watch showing target
// is actually calendar-correct. It walks the year from January 1 and stops
// when the walked date rolls into the next year, so February 29 participates
// exactly when year is a leap year.
func (s *Scanner) CountCorrect(target Dial, year int) int {
	count := 0
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		if DialAt(d) == target {
			s.logger.Trace("dial reading is correct", "date", d.Format(time.DateOnly))
			count++
		}
	}
	s.logger.Debug("year scan complete", "target", target.String(), "year", year, "count", count)
	return count
}

// NextCorrect returns the first calendar day on or after from whose true dial
// reading equals d, at midnight UTC. It returns the zero time if no match is
// found within the search horizon, which cannot happen for a Dial constructed
// through NewDial or DialAt.
func (s *Scanner) NextCorrect(d Dial, from time.Time) time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < nextCorrectHorizon; i++ {
		if DialAt(day) == d {
			s.logger.Debug("next correct day found",
				"dial", d.String(), "date", day.Format(time.DateOnly))
			return day
		}
		day = day.AddDate(0, 0, 1)
	}
	s.logger.Warn("no correct day within horizon", "dial", d.String())
	return time.Time{}
}

// CountCorrect calls Scanner.CountCorrect on the default Scanner.
func CountCorrect(target Dial, year int) int {
	return defaultScanner.CountCorrect(target, year)
}

// NextCorrect calls Scanner.NextCorrect on the default Scanner.
func NextCorrect(d Dial, from time.Time) time.Time {
	return defaultScanner.NextCorrect(d, from)
}
