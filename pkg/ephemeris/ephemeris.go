// Package ephemeris locates discrete astronomical events (lunar phase
// transitions, planetary oppositions and conjunctions with the Sun)
// inside a UTC time window.
package ephemeris

import (
	"errors"
	"time"
)

// Moon phase transition codes.
const (
	PhaseNew          = 0
	PhaseFirstQuarter = 1
	PhaseFull         = 2
	PhaseLastQuarter  = 3
)

// Alignment event codes.
const (
	AlignConjunction = 0
	AlignOpposition  = 1
)

// ErrNoAlignmentGeometry means the body has no meaningful opposition or
// conjunction geometry relative to Earth (the Sun itself) or no event
// series is available for it (Pluto). Callers are expected to treat this
// as "no events", not as a failure.
var ErrNoAlignmentGeometry = errors.New("body has no alignment geometry")

// ErrOutOfRange means the requested window falls outside the span the
// event series are valid for. This is the fatal category: there is no
// point retrying.
var ErrOutOfRange = errors.New("date outside supported ephemeris range")

// Oracle finds discrete transitions of step-valued functions of time
// within [t0, t1]. Both methods return parallel slices ordered by
// ascending timestamp; timestamps are UTC instants, codes are the small
// integers defined above. The bounds are inclusive.
type Oracle interface {
	// PhaseTransitions locates lunar phase boundaries in [t0, t1].
	PhaseTransitions(t0, t1 time.Time) ([]time.Time, []int, error)

	// AlignmentEvents locates oppositions and conjunctions with the Sun
	// for body in [t0, t1]. Returns ErrNoAlignmentGeometry for bodies
	// the series cannot cover.
	AlignmentEvents(body string, t0, t1 time.Time) ([]time.Time, []int, error)
}
