package watch_test

import (
	"testing"
	"time"

	"github.com/seancmonahan/broken-watch/internal/assert"
	"github.com/seancmonahan/broken-watch/logger"
	"github.com/seancmonahan/broken-watch/watch"
)

func newQuietScanner() *watch.Scanner {
	return watch.NewScanner(logger.NoOpLogger{})
}

func TestCountCorrect(t *testing.T) {
	scanner := newQuietScanner()

	// The only Sundays landing on a 23rd in 2020 are Feb 23 and Aug 23.
	sun23 := watch.Dial{Day: time.Sunday, Date: 23}
	assert.Equal(t, scanner.CountCorrect(sun23, 2020), 2)

	// No 31st falls on a Sunday in 2018.
	assert.Equal(t, scanner.CountCorrect(watch.Dial{Day: time.Sunday, Date: 31}, 2018), 0)
}

func TestCountCorrect_LeapDay(t *testing.T) {
	scanner := newQuietScanner()

	// 2020-02-29 is a Saturday; so is 2020-08-29.
	sat29 := watch.DialAt(date(2020, time.February, 29))
	assert.Equal(t, sat29, watch.Dial{Day: time.Saturday, Date: 29})
	assert.Equal(t, scanner.CountCorrect(sat29, 2020), 2)

	// 2019 has no Feb 29; the only Saturday the 29th is Jun 29.
	assert.Equal(t, scanner.CountCorrect(sat29, 2019), 1)
}

func TestCountCorrect_PackageLevel(t *testing.T) {
	sun23 := watch.Dial{Day: time.Sunday, Date: 23}
	assert.Equal(t, watch.CountCorrect(sun23, 2020), 2)
}

func TestNextCorrect(t *testing.T) {
	scanner := newQuietScanner()
	sun23 := watch.Dial{Day: time.Sunday, Date: 23}

	assert.Equal(t, scanner.NextCorrect(sun23, date(2020, time.January, 1)),
		date(2020, time.February, 23))
	assert.Equal(t, scanner.NextCorrect(sun23, date(2020, time.February, 24)),
		date(2020, time.August, 23))
}

func TestNextCorrect_AlreadyCorrect(t *testing.T) {
	scanner := newQuietScanner()
	sun23 := watch.Dial{Day: time.Sunday, Date: 23}

	assert.Equal(t, scanner.NextCorrect(sun23, date(2020, time.February, 23)),
		date(2020, time.February, 23))

	// Time of day is trimmed to midnight UTC.
	noon := time.Date(2020, time.February, 23, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, scanner.NextCorrect(sun23, noon), date(2020, time.February, 23))
}

func TestNextCorrect_AllReadingsReachable(t *testing.T) {
	scanner := newQuietScanner()
	from := date(2021, time.January, 1)
	for _, d := range allDials(t) {
		next := scanner.NextCorrect(d, from)
		if next.IsZero() {
			t.Fatalf("no calendar day found for %v", d)
		}
		assert.Equal(t, watch.DialAt(next), d)
	}
}
