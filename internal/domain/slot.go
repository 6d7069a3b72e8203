package domain

import "time"

// TimeSlot is a candidate one-hour-aligned start time for an appointment.
// Produced fresh per (date, duration) resolution, never persisted.
type TimeSlot struct {
	ID        string
	Label     string // human-readable, e.g. "08:00 AM"
	Start     time.Time
	Available bool
}

// BusyInterval is an externally sourced window during which the crew
// calendar is already committed. Used only for conflict testing.
type BusyInterval struct {
	Start     time.Time
	End       time.Time
	Cancelled bool
}

// Overlaps reports whether the [start, end) interval truly overlaps the busy
// window. Touching boundaries do not count: an interval ending exactly where
// the busy window starts is free.
func (b *BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}
