// Package day centralizes every calendar-day computation: day keys, day
// windows, display labels, the trailing week and date navigation.
//
// All functions use the location carried by their time.Time arguments, so
// callers decide the zone once (normally time.Local) and pass it through.
package day

import (
	"sort"
	"time"

	"github.com/inovacc/macromind/internal/model"
)

// Key identifies a calendar day.
type Key struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the calendar day of t in t's location.
func KeyOf(t time.Time) Key {
	y, m, d := t.Date()
	return Key{Year: y, Month: m, Day: d}
}

// Same reports whether a and b fall on the same calendar day in a's location.
func Same(a, b time.Time) bool {
	return KeyOf(a) == KeyOf(b.In(a.Location()))
}

// FromMillis converts an epoch-millisecond timestamp to a time in loc.
func FromMillis(ms int64, loc *time.Location) time.Time {
	return time.UnixMilli(ms).In(loc)
}

// Start returns local midnight of t's day.
func Start(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// End returns the last millisecond (23:59:59.999) of t's day.
func End(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Window returns the inclusive [start, end] millisecond range of t's day.
func Window(t time.Time) (startMs, endMs int64) {
	return Start(t).UnixMilli(), End(t).UnixMilli()
}

// AddDays moves t by n calendar days, keeping the wall-clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// Filter returns the entries logged on selected's calendar day, oldest first.
func Filter(entries []model.FoodEntry, selected time.Time) []model.FoodEntry {
	want := KeyOf(selected)
	loc := selected.Location()

	out := make([]model.FoodEntry, 0)

	for _, e := range entries {
		if KeyOf(FromMillis(e.Timestamp, loc)) == want {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})

	return out
}

// Label returns "Today", "Yesterday" or a short date such as "Mon, Jan 5".
func Label(selected, now time.Time) string {
	now = now.In(selected.Location())

	switch {
	case Same(selected, now):
		return "Today"
	case Same(selected, AddDays(now, -1)):
		return "Yesterday"
	default:
		return selected.Format("Mon, Jan 2")
	}
}

// Bucket is one day of the trailing week: [Start, Start+24h).
type Bucket struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the epoch-millisecond ms falls in the bucket.
func (b Bucket) Contains(ms int64) bool {
	return ms >= b.Start.UnixMilli() && ms < b.End.UnixMilli()
}

// TrailingWeek returns the seven days ending with now's day, oldest first.
//
// Each bucket spans exactly 24 hours from local midnight. On a DST
// transition day the bucket is therefore an hour short of (or past) the
// next midnight; this is a known limitation and is not corrected.
func TrailingWeek(now time.Time) []Bucket {
	buckets := make([]Bucket, 0, 7)

	for i := 6; i >= 0; i-- {
		start := Start(AddDays(now, -i))
		buckets = append(buckets, Bucket{Start: start, End: start.Add(24 * time.Hour)})
	}

	return buckets
}
