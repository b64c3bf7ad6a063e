// Package timeline turns a validated request into an ordered set of
// astronomical events by querying an ephemeris oracle.
package timeline

import (
	"time"
)

// MoonPhaseEvent is a lunar phase boundary: the instant the Moon enters
// the phase identified by the ephemeris phase code (0-3).
type MoonPhaseEvent struct {
	Time  time.Time
	Phase int
}

// AlignmentEvent is an opposition or conjunction with the Sun, per the
// ephemeris alignment code (0 conjunction, 1 opposition).
type AlignmentEvent struct {
	Time time.Time
	Kind int
}

// Timeline groups the events found for one request, each family in
// ascending timestamp order as the oracle returned it.
type Timeline struct {
	MoonPhases []MoonPhaseEvent
	Alignments []AlignmentEvent
}

// Range is a calendar date range. Start and End are UTC midnights;
// Start == End is the single-day degenerate case.
type Range struct {
	Start time.Time
	End   time.Time
}

// Request is a fully validated query: a supported body, an ordered date
// range and a recognized timezone name for display.
type Request struct {
	Body     string
	Range    Range
	Timezone string
}
