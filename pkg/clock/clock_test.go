package clock_test

import (
	"testing"
	"time"

	"github.com/dailynotes/daily/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func TestFreezeAt(t *testing.T) {
	date := time.Date(2023, time.Month(1), 1, 12, 30, 0, 0, time.UTC)
	testClock := clock.FreezeAt(date)
	defer clock.Unfreeze()

	assert.Equal(t, date, clock.Now())
	assert.Equal(t, date, clock.Now()) // Still the same

	testClock.FastForward(10 * time.Minute)
	assert.Equal(t, date.Add(10*time.Minute), clock.Now())
}

func TestUnfreeze(t *testing.T) {
	date := time.Date(2023, time.Month(1), 1, 12, 30, 0, 0, time.UTC)
	clock.FreezeAt(date)
	clock.Unfreeze()

	assert.NotEqual(t, date, clock.Now())
}
