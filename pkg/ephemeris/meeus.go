package ephemeris

import (
	"fmt"
	"sort"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"
	"github.com/soniakeys/meeus/v3/planetary"
)

// The periodic-term series below are fitted around the modern era; keep
// queries inside a span where both they and the ΔT polynomials hold.
const (
	coverageStartYear = 1900.0
	coverageEndYear   = 2050.0
)

// Scan strides, in days. Each must be shorter than half the shortest
// recurrence interval of the series it walks (synodic month ~29.5d for
// phases, Mercury's ~116d synodic period for alignments) so no event
// cycle is stepped over.
const (
	phaseScanStepDays     = 10.0
	alignmentScanStepDays = 20.0
)

// Meeus is an Oracle backed by the truncated VSOP87-derived series from
// Meeus, Astronomical Algorithms (moon phases ch. 49, planetary phenomena
// ch. 36), as implemented by soniakeys/meeus.
type Meeus struct{}

// NewMeeus returns the series-backed oracle.
func NewMeeus() *Meeus { return &Meeus{} }

type event struct {
	t    time.Time
	code int
}

// seriesFn pairs an event-instant function (decimal year in, JDE out)
// with the event code its results carry.
type seriesFn struct {
	fn   func(float64) float64
	code int
}

var phaseSeries = []seriesFn{
	{moonphase.New, PhaseNew},
	{moonphase.First, PhaseFirstQuarter},
	{moonphase.Full, PhaseFull},
	{moonphase.Last, PhaseLastQuarter},
}

// alignmentSeries maps each supported body to its ch. 36 event series.
// Mercury and Venus orbit inside Earth's orbit, so they only reach
// conjunction; the outer planets get opposition series. Saturn is the
// one body the book provides both series for.
var alignmentSeries = map[string][]seriesFn{
	"mercury": {{planetary.MercuryInfConj, AlignConjunction}, {planetary.MercurySupConj, AlignConjunction}},
	"venus":   {{planetary.VenusInfConj, AlignConjunction}},
	"mars":    {{planetary.MarsOpp, AlignOpposition}},
	"jupiter": {{planetary.JupiterOpp, AlignOpposition}},
	"saturn":  {{planetary.SaturnConj, AlignConjunction}, {planetary.SaturnOpp, AlignOpposition}},
	"uranus":  {{planetary.UranusOpp, AlignOpposition}},
	"neptune": {{planetary.NeptuneOpp, AlignOpposition}},
}

// moonSyzygySeries treats lunar syzygies as the Moon's alignment events:
// new moon is a conjunction with the Sun, full moon an opposition.
var moonSyzygySeries = []seriesFn{
	{moonphase.New, AlignConjunction},
	{moonphase.Full, AlignOpposition},
}

// PhaseTransitions locates the true instants of new moon, first quarter,
// full moon and last quarter in [t0, t1].
func (m *Meeus) PhaseTransitions(t0, t1 time.Time) ([]time.Time, []int, error) {
	if err := checkWindow(t0, t1); err != nil {
		return nil, nil, err
	}
	times, codes := zip(scanSeries(phaseSeries, t0, t1, phaseScanStepDays))
	return times, codes, nil
}

// AlignmentEvents locates oppositions and conjunctions with the Sun for
// body in [t0, t1]. The Sun has no such geometry and no event series
// exists for Pluto; both return ErrNoAlignmentGeometry.
func (m *Meeus) AlignmentEvents(body string, t0, t1 time.Time) ([]time.Time, []int, error) {
	if err := checkWindow(t0, t1); err != nil {
		return nil, nil, err
	}

	var series []seriesFn
	switch body {
	case "moon":
		series = moonSyzygySeries
	case "sun", "pluto":
		return nil, nil, fmt.Errorf("%s: %w", body, ErrNoAlignmentGeometry)
	default:
		var ok bool
		series, ok = alignmentSeries[body]
		if !ok {
			return nil, nil, fmt.Errorf("unknown body %q", body)
		}
	}

	times, codes := zip(scanSeries(series, t0, t1, alignmentScanStepDays))
	return times, codes, nil
}

func checkWindow(t0, t1 time.Time) error {
	if t1.Before(t0) {
		return fmt.Errorf("window end %s precedes start %s", t1.Format(time.RFC3339), t0.Format(time.RFC3339))
	}
	y0 := decimalYear(t0)
	y1 := decimalYear(t1)
	if y0 < coverageStartYear || y1 >= coverageEndYear {
		return fmt.Errorf("window [%s, %s]: %w (years %.0f-%.0f)",
			t0.Format("2006-01-02"), t1.Format("2006-01-02"), ErrOutOfRange,
			coverageStartYear, coverageEndYear)
	}
	return nil
}

// scanSeries walks each series over the window on a fixed stride and
// keeps the in-window hits. The series functions return the event
// instant nearest the sample year, so a stride below half the recurrence
// interval guarantees every event is hit at least once; duplicates from
// adjacent samples are collapsed to the minute.
func scanSeries(series []seriesFn, t0, t1 time.Time, stepDays float64) []event {
	stepYears := stepDays / base.JulianYear
	y0 := decimalYear(t0) - stepYears
	y1 := decimalYear(t1) + stepYears

	seen := make(map[int64]bool)
	var events []event
	for _, s := range series {
		for y := y0; y <= y1; y += stepYears {
			t := jdeToUTC(s.fn(y))
			if t.Before(t0) || t.After(t1) {
				continue
			}
			key := t.Unix() / 60
			if seen[key] {
				continue
			}
			seen[key] = true
			events = append(events, event{t: t, code: s.code})
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].t.Before(events[j].t) })
	return events
}

func zip(events []event) ([]time.Time, []int) {
	times := make([]time.Time, len(events))
	codes := make([]int, len(events))
	for i, e := range events {
		times[i] = e.t
		codes[i] = e.code
	}
	return times, codes
}

func decimalYear(t time.Time) float64 {
	return base.JDEToJulianYear(julian.TimeToJD(t))
}

// jdeToUTC converts a dynamical-time Julian day to a UTC instant by
// removing ΔT.
func jdeToUTC(jde float64) time.Time {
	y := base.JDEToJulianYear(jde)
	return julian.JDToTime(jde - deltaTSeconds(y)/86400).UTC()
}

// deltaTSeconds approximates ΔT = TD - UT in seconds using the
// Espenak-Meeus polynomial fits for 1900-2050.
func deltaTSeconds(year float64) float64 {
	switch {
	case year < 1920:
		t := year - 1900
		return -2.79 + 1.494119*t - 0.0598939*t*t + 0.0061966*t*t*t - 0.000197*t*t*t*t
	case year < 1941:
		t := year - 1920
		return 21.20 + 0.84493*t - 0.076100*t*t + 0.0020936*t*t*t
	case year < 1961:
		t := year - 1950
		return 29.07 + 0.407*t - t*t/233 + t*t*t/2547
	case year < 1986:
		t := year - 1975
		return 45.45 + 1.067*t - t*t/260 - t*t*t/718
	case year < 2005:
		t := year - 2000
		return 63.86 + 0.3345*t - 0.060374*t*t + 0.0017275*t*t*t + 0.000651814*t*t*t*t + 0.00002373599*t*t*t*t*t
	default:
		t := year - 2000
		return 62.92 + 0.32217*t + 0.005589*t*t
	}
}
