package render

import (
	"io"
	"strings"
	"time"

	"github.com/York-Lucis/astro-data/pkg/timeline"
)

// Presenter renders a timeline for human consumption. Implementations
// must not mutate the timeline; every timestamp is converted to the
// request's timezone before display.
type Presenter interface {
	Render(w io.Writer, tl *timeline.Timeline, req timeline.Request)
}

// titleCase capitalizes a body name for display ("mars" -> "Mars").
func titleCase(body string) string {
	if body == "" {
		return body
	}
	return strings.ToUpper(body[:1]) + body[1:]
}

// localTime converts an event instant for display in the request's zone.
func localTime(t time.Time, zone string) string {
	return ConvertToZone(t.UTC().Format(time.RFC3339), zone)
}

// rangeLabel echoes the queried dates in long form.
func rangeLabel(r timeline.Range) string {
	return r.Start.Format("January 02, 2006") + " to " + r.End.Format("January 02, 2006")
}

// notes returns the fixed narration bullets. The choice is keyed only on
// whether the target is the Moon.
func notes(body string) []string {
	if body == "moon" {
		return []string{
			"New Moon: Moon is between Earth and Sun (not visible).",
			"Full Moon: Moon is opposite the Sun (fully illuminated).",
			"First/Last Quarter: Half of the Moon is illuminated.",
		}
	}
	name := titleCase(body)
	return []string{
		"Conjunction: " + name + " aligns with the Sun from our perspective.",
		"Opposition: Earth is between the Sun and " + name + ".",
		"Oppositions are generally the best times for observation.",
	}
}
