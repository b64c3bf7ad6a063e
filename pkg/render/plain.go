package render

import (
	"fmt"
	"io"

	"github.com/York-Lucis/astro-data/pkg/timeline"
)

// Plain renders raw event rows grouped by family, then the narrated
// notes block. No color, no tables; suitable for piping.
type Plain struct{}

// NewPlain returns the plain-text presenter.
func NewPlain() *Plain { return &Plain{} }

func (p *Plain) Render(w io.Writer, tl *timeline.Timeline, req timeline.Request) {
	fmt.Fprintf(w, "Astronomical events for %s\n", titleCase(req.Body))
	fmt.Fprintf(w, "%s, all times in %s\n", rangeLabel(req.Range), req.Timezone)

	fmt.Fprintf(w, "\nMoon phases:\n")
	if len(tl.MoonPhases) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, ev := range tl.MoonPhases {
		name, _ := PhaseInfo(ev.Phase)
		fmt.Fprintf(w, "  %s  %s\n", localTime(ev.Time, req.Timezone), name)
	}

	fmt.Fprintf(w, "\nOppositions and conjunctions:\n")
	if len(tl.Alignments) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, ev := range tl.Alignments {
		fmt.Fprintf(w, "  %s  %s\n", localTime(ev.Time, req.Timezone), AlignmentName(ev.Kind, req.Body))
	}

	fmt.Fprintf(w, "\nAstronomical notes:\n")
	for _, n := range notes(req.Body) {
		fmt.Fprintf(w, "  - %s\n", n)
	}
}
