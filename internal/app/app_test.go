package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/York-Lucis/astro-data/pkg/config"
	"github.com/York-Lucis/astro-data/pkg/ephemeris"
)

type stubOracle struct {
	phaseTimes []time.Time
	phaseCodes []int
	alignTimes []time.Time
	alignCodes []int
	alignErr   error
}

func (s *stubOracle) PhaseTransitions(t0, t1 time.Time) ([]time.Time, []int, error) {
	return s.phaseTimes, s.phaseCodes, nil
}

func (s *stubOracle) AlignmentEvents(body string, t0, t1 time.Time) ([]time.Time, []int, error) {
	if s.alignErr != nil {
		return nil, nil, s.alignErr
	}
	return s.alignTimes, s.alignCodes, nil
}

func plainDefaults() *config.Defaults {
	return &config.Defaults{Timezone: "UTC", Renderer: "plain"}
}

func run(t *testing.T, opts Options, oracle ephemeris.Oracle, stdin string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := New(opts, plainDefaults(), oracle, strings.NewReader(stdin), &out, nil)
	err := a.Run(context.Background())
	return out.String(), err
}

func TestRunBatchMars(t *testing.T) {
	oracle := &stubOracle{
		alignTimes: []time.Time{time.Date(2025, 1, 16, 2, 32, 0, 0, time.UTC)},
		alignCodes: []int{1},
	}
	opts := Options{Target: "mars", Start: "2024-10-01", End: "2025-04-01"}

	out, err := run(t, opts, oracle, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculating astronomical events...")
	assert.Contains(t, out, "Astronomical events for Mars")
	assert.Contains(t, out, "Opposition to Sun")
}

func TestRunBatchSunDegradesToEmpty(t *testing.T) {
	oracle := &stubOracle{alignErr: ephemeris.ErrNoAlignmentGeometry}
	opts := Options{Target: "sun", Start: "2024-01-01", End: "2024-06-01"}

	out, err := run(t, opts, oracle, "")
	require.NoError(t, err, "ineligible body must render an empty timeline, not fail")
	assert.Contains(t, out, "(none)")
}

func TestRunBatchEndDefaultsToStart(t *testing.T) {
	oracle := &stubOracle{}
	opts := Options{Target: "mars", Start: "2024-03-15"}

	_, err := run(t, opts, oracle, "")
	require.NoError(t, err)
}

func TestRunBatchValidationFailures(t *testing.T) {
	oracle := &stubOracle{}
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"bad start", Options{Target: "mars", Start: "15-03-2024"}, "start date"},
		{"bad end", Options{Target: "mars", Start: "2024-03-15", End: "soon"}, "end date"},
		{"end before start", Options{Target: "mars", Start: "2024-03-15", End: "2024-03-01"}, "must not be before"},
		{"bad timezone", Options{Target: "mars", Start: "2024-03-15", Timezone: "Nowhere/Void"}, "timezone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.opts, oracle, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunBatchUnresolvableBodyHardStops(t *testing.T) {
	oracle := &stubOracle{}
	opts := Options{Target: "xylophone", Start: "2024-01-01"}

	out, err := run(t, opts, oracle, "")
	require.Error(t, err)
	assert.Contains(t, out, "Supported bodies are:")
	assert.Contains(t, out, "mars, venus, jupiter")
}

func TestRunBatchTypoConfirmed(t *testing.T) {
	oracle := &stubOracle{
		alignTimes: []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		alignCodes: []int{0},
	}
	opts := Options{Target: "marz", Start: "2024-01-01", End: "2024-12-01"}

	// The validator's one-shot confirmation still reads from stdin.
	out, err := run(t, opts, oracle, "y\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Did you mean")
	assert.Contains(t, out, "Astronomical events for Mars")
}

func TestRunInteractiveMoon(t *testing.T) {
	oracle := &stubOracle{
		phaseTimes: []time.Time{time.Date(2024, 1, 11, 11, 57, 0, 0, time.UTC)},
		phaseCodes: []int{0},
		alignTimes: []time.Time{time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)},
		alignCodes: []int{0},
	}

	stdin := strings.Join([]string{
		"moon",       // body
		"r",          // range mode
		"2024-01-01", // start
		"2024-02-01", // end
		"UTC",        // timezone
	}, "\n") + "\n"

	out, err := run(t, Options{Interactive: true}, oracle, stdin)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to AstroData interactive mode!")
	assert.Contains(t, out, "New Moon")
	assert.Contains(t, out, "Moon is between Earth and Sun")
}

func TestRunInteractiveRejectedBodyHardStops(t *testing.T) {
	oracle := &stubOracle{}
	// Near-miss declined: validator suggests "mars", user says no.
	stdin := "marz\nn\n"

	out, err := run(t, Options{Interactive: true}, oracle, stdin)
	require.Error(t, err)
	assert.Contains(t, out, "Supported bodies are:")
}

func TestRunImplicitInteractiveWhenFlagsMissing(t *testing.T) {
	oracle := &stubOracle{}
	stdin := "mars\ns\n2024-03-15\nUTC\n"

	out, err := run(t, Options{}, oracle, stdin)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to AstroData interactive mode!")
}

func TestRunStyledPresenterSelected(t *testing.T) {
	oracle := &stubOracle{
		alignTimes: []time.Time{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		alignCodes: []int{0},
	}
	opts := Options{Target: "venus", Start: "2024-01-01", End: "2024-12-01"}

	var out bytes.Buffer
	defaults := &config.Defaults{Timezone: "UTC", Renderer: "styled"}
	a := New(opts, defaults, oracle, strings.NewReader(""), &out, nil)
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Astronomical Summary for Venus")
}
