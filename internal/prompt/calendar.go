// Package prompt decides when to ask the user to make the browser the
// default and add it to the dock, and coordinates the resulting actions.
package prompt

import "time"

// Calendar does day arithmetic in a fixed location. The zero value uses
// time.Local.
type Calendar struct {
	Location *time.Location
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// StartOfDay returns midnight of t's day in the calendar's location.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.location())
}

// IsSameDay reports whether a and b fall on the same calendar day.
func (c Calendar) IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.location()).Date()
	by, bm, bd := b.In(c.location()).Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from from to to. It is
// negative when to is on an earlier day. Days are counted on the civil
// date so DST transitions never produce a 23 or 25 hour "day".
func (c Calendar) DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.In(c.location()).Date()
	ty, tm, td := to.In(c.location()).Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
