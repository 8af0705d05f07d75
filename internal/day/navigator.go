package day

import "time"

// Navigator tracks the selected day. It never moves past today.
type Navigator struct {
	selected time.Time
	now      func() time.Time
}

// NewNavigator returns a navigator positioned on today. A nil clock means
// time.Now.
func NewNavigator(now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}

	return &Navigator{selected: Start(now()), now: now}
}

// Selected returns midnight of the selected day.
func (n *Navigator) Selected() time.Time {
	return n.selected
}

// IsToday reports whether the selected day is the current day.
func (n *Navigator) IsToday() bool {
	return Same(n.selected, n.now())
}

// Prev moves one calendar day back.
func (n *Navigator) Prev() {
	n.selected = Start(AddDays(n.selected, -1))
}

// Next moves one calendar day forward. It returns false, without moving,
// when the selected day is already today.
func (n *Navigator) Next() bool {
	if !n.selected.Before(Start(n.now())) {
		return false
	}

	n.selected = Start(AddDays(n.selected, 1))

	return true
}

// Set selects t's day. Future days are refused.
func (n *Navigator) Set(t time.Time) bool {
	if Start(t).After(Start(n.now())) {
		return false
	}

	n.selected = Start(t)

	return true
}

// Reset selects today.
func (n *Navigator) Reset() {
	n.selected = Start(n.now())
}

// Label returns the display label of the selected day.
func (n *Navigator) Label() string {
	return Label(n.selected, n.now())
}
