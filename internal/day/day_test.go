package day

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/inovacc/macromind/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("UTC-5", -5*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, testLoc)
}

func TestKeyOfUsesLocalCalendar(t *testing.T) {
	// 02:00 UTC on Jan 6 is still Jan 5 in UTC-5
	utc := time.Date(2026, 1, 6, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, Key{2026, time.January, 5}, KeyOf(utc.In(testLoc)))
	assert.Equal(t, Key{2026, time.January, 6}, KeyOf(utc))
}

func TestSame(t *testing.T) {
	assert.True(t, Same(at(2026, 1, 5, 0, 0), at(2026, 1, 5, 23, 59)))
	assert.False(t, Same(at(2026, 1, 5, 23, 59), at(2026, 1, 6, 0, 0)))
	assert.False(t, Same(at(2026, 1, 5, 12, 0), at(2025, 1, 5, 12, 0)), "year must match")
	assert.False(t, Same(at(2026, 1, 5, 12, 0), at(2026, 2, 5, 12, 0)), "month must match")
}

func TestStartEndWindow(t *testing.T) {
	ts := at(2026, 3, 10, 14, 25)

	assert.Equal(t, at(2026, 3, 10, 0, 0), Start(ts))
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999_000_000, testLoc), End(ts))

	startMs, endMs := Window(ts)
	assert.Equal(t, int64(24*60*60*1000-1), endMs-startMs)
}

func TestFilter(t *testing.T) {
	selected := at(2026, 1, 5, 0, 0)

	entries := []model.FoodEntry{
		{ID: "late", Timestamp: at(2026, 1, 5, 20, 0).UnixMilli()},
		{ID: "prev", Timestamp: at(2026, 1, 4, 23, 59).UnixMilli()},
		{ID: "early", Timestamp: at(2026, 1, 5, 0, 0).UnixMilli()},
		{ID: "next", Timestamp: at(2026, 1, 6, 0, 0).UnixMilli()},
	}

	got := Filter(entries, selected)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
}

func TestFilter_Empty(t *testing.T) {
	got := Filter(nil, at(2026, 1, 5, 0, 0))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLabel(t *testing.T) {
	now := at(2026, 1, 7, 9, 30)

	tests := []struct {
		name     string
		selected time.Time
		want     string
	}{
		{"today", at(2026, 1, 7, 0, 0), "Today"},
		{"yesterday", at(2026, 1, 6, 0, 0), "Yesterday"},
		{"two days ago", at(2026, 1, 5, 0, 0), "Mon, Jan 5"},
		{"previous year", at(2025, 12, 31, 0, 0), "Wed, Dec 31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.selected, now))
		})
	}
}

func TestLabel_YesterdayAcrossMonth(t *testing.T) {
	assert.Equal(t, "Yesterday", Label(at(2026, 2, 28, 0, 0), at(2026, 3, 1, 8, 0)))
}

func TestTrailingWeek(t *testing.T) {
	now := at(2026, 1, 7, 15, 0)

	week := TrailingWeek(now)
	require.Len(t, week, 7)

	assert.Equal(t, at(2026, 1, 1, 0, 0), week[0].Start)
	assert.Equal(t, at(2026, 1, 7, 0, 0), week[6].Start)

	for i, b := range week {
		assert.Equal(t, 24*time.Hour, b.End.Sub(b.Start), "bucket %d", i)

		if i > 0 {
			assert.True(t, week[i-1].Start.Before(b.Start), "buckets must be ordered oldest first")
		}
	}
}

func TestTrailingWeek_DSTTransitionDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// clocks spring forward on 2026-03-08, so that day is 23 hours long
	week := TrailingWeek(time.Date(2026, 3, 10, 12, 0, 0, 0, loc))
	transition := week[4]
	nextMidnight := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

	assert.True(t, time.Date(2026, 3, 8, 0, 0, 0, 0, loc).Equal(transition.Start))
	assert.Equal(t, 24*time.Hour, transition.End.Sub(transition.Start))
	assert.Equal(t, time.Hour, transition.End.Sub(nextMidnight), "bucket runs an hour past the next midnight")

	early := time.Date(2026, 3, 9, 0, 30, 0, 0, loc).UnixMilli()
	assert.True(t, transition.Contains(early))
	assert.True(t, week[5].Contains(early))
}

func TestBucket_Contains(t *testing.T) {
	b := TrailingWeek(at(2026, 1, 7, 15, 0))[6]

	assert.True(t, b.Contains(at(2026, 1, 7, 0, 0).UnixMilli()))
	assert.True(t, b.Contains(at(2026, 1, 7, 23, 59).UnixMilli()))
	assert.False(t, b.Contains(at(2026, 1, 8, 0, 0).UnixMilli()), "end is exclusive")
	assert.False(t, b.Contains(at(2026, 1, 6, 23, 59).UnixMilli()))
}
