// Package render formats event timelines for terminal display: event
// naming, timezone conversion and two presenter styles (plain and
// styled).
package render

import "fmt"

// PhaseInfo maps a phase code to a display name and symbol. Total over
// all integers: unknown codes get a labeled fallback instead of failing.
func PhaseInfo(code int) (name, symbol string) {
	switch code {
	case 0:
		return "New Moon", "🌑"
	case 1:
		return "First Quarter", "🌓"
	case 2:
		return "Full Moon", "🌕"
	case 3:
		return "Last Quarter", "🌗"
	default:
		return fmt.Sprintf("Unknown Phase (%d)", code), "❓"
	}
}

// AlignmentName maps an alignment code to a display name. The body is
// accepted for call-site symmetry with PhaseInfo but the wording is
// fixed: every non-zero code reads as an opposition.
func AlignmentName(code int, body string) string {
	if code == 0 {
		return "Conjunction with Sun"
	}
	return "Opposition to Sun"
}
