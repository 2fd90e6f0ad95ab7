package temporal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ms-events/internal/temporal"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func clockAt(date string) temporal.Clock {
	t, err := time.ParseInLocation(temporal.DateLayout, date, time.Local)
	if err != nil {
		panic(err)
	}
	return fixedClock{now: t}
}

func TestClassifySingleDate(t *testing.T) {
	clock := clockAt("2024-04-01")

	assert.Equal(t, temporal.StatusCompleted, temporal.Classify("2024-03-01", clock))
	assert.Equal(t, temporal.StatusUpcoming, temporal.Classify("2024-05-01", clock))
}

func TestClassifyToday(t *testing.T) {
	// Day granularity: an event ending today is still upcoming
	clock := clockAt("2024-04-01")
	assert.Equal(t, temporal.StatusUpcoming, temporal.Classify("2024-04-01", clock))
}

func TestClassifyRangeUsesEndDate(t *testing.T) {
	clock := clockAt("2024-04-01")

	// Started in the past, ends in the future
	assert.Equal(t, temporal.StatusUpcoming, temporal.Classify("2024-03-30 - 2024-04-02", clock))
	// Ended yesterday
	assert.Equal(t, temporal.StatusCompleted, temporal.Classify("2024-03-28 - 2024-03-31", clock))
	// Ends today
	assert.Equal(t, temporal.StatusUpcoming, temporal.Classify("2024-03-28 - 2024-04-01", clock))
}

func TestClassifyDefensiveDefaults(t *testing.T) {
	clock := clockAt("2024-04-01")

	// Missing or unreadable dates are never completed
	assert.Equal(t, temporal.StatusUpcoming, temporal.Classify("", clock))
	assert.Equal(t, temporal.StatusUpcoming, temporal.Classify("TBA", clock))
	assert.Equal(t, temporal.StatusUpcoming, temporal.Classify("soon - later", clock))
}

func TestClassifyTimeOfDayIgnored(t *testing.T) {
	// Classification compares days even when "now" is late in the day
	now, err := time.ParseInLocation("2006-01-02 15:04", "2024-04-01 23:30", time.Local)
	assert.NoError(t, err)
	clock := fixedClock{now: now}

	assert.Equal(t, temporal.StatusUpcoming, temporal.Classify("2024-04-01", clock))
	assert.Equal(t, temporal.StatusCompleted, temporal.Classify("2024-03-31", clock))
}

func TestClassifyMonotonicInDateOrder(t *testing.T) {
	clock := clockAt("2024-06-15")

	dates := []string{
		"2024-06-10",
		"2024-06-13",
		"2024-06-14",
		"2024-06-15",
		"2024-06-16",
		"2024-07-01",
	}

	// Once a date classifies as upcoming, every later date must too
	seenUpcoming := false
	for _, d := range dates {
		status := temporal.Classify(d, clock)
		if seenUpcoming {
			assert.Equal(t, temporal.StatusUpcoming, status, "date %s broke monotonicity", d)
		}
		if status == temporal.StatusUpcoming {
			seenUpcoming = true
		}
	}
	assert.True(t, seenUpcoming)
}
