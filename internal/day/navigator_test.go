package day

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNavigator(t *testing.T) {
	now := at(2026, 1, 7, 10, 0)
	nav := NewNavigator(fixedClock(now))

	assert.True(t, nav.IsToday())
	assert.Equal(t, at(2026, 1, 7, 0, 0), nav.Selected())
	assert.Equal(t, "Today", nav.Label())

	assert.False(t, nav.Next(), "cannot move past today")
	assert.True(t, nav.IsToday())

	nav.Prev()
	assert.Equal(t, "Yesterday", nav.Label())
	assert.False(t, nav.IsToday())

	nav.Prev()
	assert.Equal(t, at(2026, 1, 5, 0, 0), nav.Selected())

	assert.True(t, nav.Next())
	assert.True(t, nav.Next())
	assert.True(t, nav.IsToday())
	assert.False(t, nav.Next())
}

func TestNavigator_Set(t *testing.T) {
	nav := NewNavigator(fixedClock(at(2026, 1, 7, 10, 0)))

	assert.False(t, nav.Set(at(2026, 1, 8, 0, 0)), "future days are refused")
	assert.True(t, nav.IsToday())

	assert.True(t, nav.Set(at(2025, 12, 25, 18, 0)))
	assert.Equal(t, at(2025, 12, 25, 0, 0), nav.Selected())

	nav.Reset()
	assert.True(t, nav.IsToday())
}

func TestNavigator_DayRollsOver(t *testing.T) {
	now := at(2026, 1, 7, 23, 59)
	nav := NewNavigator(func() time.Time { return now })

	// the clock passes midnight while the app is open
	now = at(2026, 1, 8, 0, 1)

	assert.False(t, nav.IsToday())
	assert.Equal(t, "Yesterday", nav.Label())
	assert.True(t, nav.Next())
	assert.True(t, nav.IsToday())
}
