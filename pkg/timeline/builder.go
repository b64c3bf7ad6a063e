package timeline

import (
	"errors"
	"time"

	"github.com/York-Lucis/astro-data/pkg/ephemeris"
	"go.uber.org/zap"
)

// Builder queries the oracle for the two event families and assembles a
// Timeline.
type Builder struct {
	oracle ephemeris.Oracle
	logger *zap.SugaredLogger
}

// NewBuilder returns a Builder over the given oracle. A nil logger
// disables debug output.
func NewBuilder(oracle ephemeris.Oracle, logger *zap.SugaredLogger) *Builder {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Builder{oracle: oracle, logger: logger}
}

// Build queries moon phase transitions (only when body is the moon) and
// alignment events (always) over r and merges the results. Oracle output
// order is preserved as-is; nothing is deduplicated, and boundary hits at
// either end of the range are kept.
//
// A body the oracle rejects as having no alignment geometry yields an
// empty alignment list, not an error. Every other oracle failure is
// returned to the caller.
func (b *Builder) Build(body string, r Range) (*Timeline, error) {
	t0 := midnightUTC(r.Start)
	t1 := midnightUTC(r.End)

	tl := &Timeline{}

	if body == "moon" {
		times, codes, err := b.oracle.PhaseTransitions(t0, t1)
		if err != nil {
			return nil, err
		}
		tl.MoonPhases = make([]MoonPhaseEvent, len(times))
		for i := range times {
			tl.MoonPhases[i] = MoonPhaseEvent{Time: times[i], Phase: codes[i]}
		}
	}

	times, codes, err := b.oracle.AlignmentEvents(body, t0, t1)
	switch {
	case errors.Is(err, ephemeris.ErrNoAlignmentGeometry):
		b.logger.Debugf("no alignment geometry for %s, substituting empty event list", body)
	case err != nil:
		return nil, err
	default:
		tl.Alignments = make([]AlignmentEvent, len(times))
		for i := range times {
			tl.Alignments[i] = AlignmentEvent{Time: times[i], Kind: codes[i]}
		}
	}

	return tl, nil
}

// midnightUTC truncates t to 00:00:00 UTC on its calendar date.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
