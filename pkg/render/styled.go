package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/York-Lucis/astro-data/pkg/timeline"
)

// Styled renders a summary panel, one table per event family and the
// narrated notes, with color when the terminal supports it.
type Styled struct{}

// NewStyled returns the styled presenter.
func NewStyled() *Styled { return &Styled{} }

const panelRule = "────────────────────────────────────────────────────"

func (s *Styled) Render(w io.Writer, tl *timeline.Timeline, req timeline.Request) {
	header := color.New(color.FgCyan, color.Bold)
	accent := color.New(color.FgYellow, color.Bold)
	dim := color.New(color.Faint)

	fmt.Fprintln(w, panelRule)
	fmt.Fprintf(w, " 🔭 %s\n", header.Sprintf("Astronomical Summary for %s", titleCase(req.Body)))
	fmt.Fprintf(w, " 🗓  %s\n", dim.Sprint(rangeLabel(req.Range)))
	fmt.Fprintf(w, " 📍 All times shown in %s\n", accent.Sprint(req.Timezone))
	fmt.Fprintln(w, panelRule)

	if len(tl.MoonPhases) > 0 {
		fmt.Fprintf(w, "\n🌕 %s\n", header.Sprint("Moon Phases"))
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Date & Time", "Phase", "Symbol"})
		table.SetAutoWrapText(false)
		for _, ev := range tl.MoonPhases {
			name, symbol := PhaseInfo(ev.Phase)
			table.Append([]string{localTime(ev.Time, req.Timezone), name, symbol})
		}
		table.Render()
	}

	if len(tl.Alignments) > 0 {
		fmt.Fprintf(w, "\n🪐 %s\n", header.Sprint("Planetary Alignments"))
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Date & Time", "Event"})
		table.SetAutoWrapText(false)
		for _, ev := range tl.Alignments {
			table.Append([]string{localTime(ev.Time, req.Timezone), AlignmentName(ev.Kind, req.Body)})
		}
		table.Render()
	}

	fmt.Fprintf(w, "\nℹ️  %s\n", header.Sprint("Astronomical Notes"))
	for _, n := range notes(req.Body) {
		fmt.Fprintf(w, "  • %s\n", n)
	}
}
