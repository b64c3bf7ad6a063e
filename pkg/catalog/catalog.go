// Package catalog holds the fixed set of celestial bodies this tool can
// report on, and a validator that corrects near-miss spellings with user
// confirmation.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// SupportedBodies is the closed set of query targets. The slice order is
// load-bearing: it is the tie-break order when two bodies are equally
// close to a misspelled name.
var SupportedBodies = []string{
	"mars", "venus", "jupiter", "saturn", "mercury",
	"neptune", "uranus", "pluto", "moon", "sun",
}

// ErrUnsupportedBody is returned when a name cannot be resolved to a
// supported body, either because no close match exists or because the
// user declined the suggested correction.
var ErrUnsupportedBody = errors.New("unsupported celestial body")

// maxSuggestionDistance is the largest edit distance at which a
// misspelling is still offered as a correction.
const maxSuggestionDistance = 2

// Confirmer asks the user a yes/no question. The interactive prompter
// implements this; tests substitute canned answers.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// IsSupported reports whether name (case-insensitive) is a member of the
// supported set.
func IsSupported(name string) bool {
	name = strings.ToLower(name)
	for _, b := range SupportedBodies {
		if b == name {
			return true
		}
	}
	return false
}

// ClosestMatch returns the supported body with the smallest edit distance
// to name (lower-cased), and that distance. Ties go to the earlier entry
// in SupportedBodies.
func ClosestMatch(name string) (string, int) {
	name = strings.ToLower(name)
	best := SupportedBodies[0]
	bestDist := levenshtein.ComputeDistance(name, best)
	for _, b := range SupportedBodies[1:] {
		if d := levenshtein.ComputeDistance(name, b); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, bestDist
}

// Validator resolves raw body names against the supported set.
type Validator struct {
	confirm Confirmer
}

// NewValidator returns a Validator that uses c to confirm suggested
// corrections. A nil Confirmer disables suggestions entirely: anything
// that is not an exact (case-insensitive) member fails.
func NewValidator(c Confirmer) *Validator {
	return &Validator{confirm: c}
}

// Validate resolves raw to a canonical body name. Exact members pass
// straight through with no interaction. A near miss (edit distance <= 2)
// is offered to the Confirmer once; acceptance resolves to the
// suggestion, refusal fails. There is no retry here: rejection is a hard
// stop for the whole request.
func (v *Validator) Validate(raw string) (string, error) {
	name := strings.ToLower(raw)
	if IsSupported(name) {
		return name, nil
	}

	match, dist := ClosestMatch(name)
	if dist <= maxSuggestionDistance && v.confirm != nil {
		ok, err := v.confirm.Confirm(fmt.Sprintf("Invalid body %q. Did you mean %q?", raw, match))
		if err != nil {
			return "", err
		}
		if ok {
			return match, nil
		}
	}

	return "", fmt.Errorf("%q: %w", raw, ErrUnsupportedBody)
}
