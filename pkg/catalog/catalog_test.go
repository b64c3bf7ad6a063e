package catalog

import (
	"errors"
	"testing"
)

// confirmFunc adapts a function to the Confirmer interface.
type confirmFunc func(prompt string) (bool, error)

func (f confirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

func noPrompt(t *testing.T) Confirmer {
	t.Helper()
	return confirmFunc(func(prompt string) (bool, error) {
		t.Fatalf("unexpected confirmation prompt: %q", prompt)
		return false, nil
	})
}

func TestValidateExactMembers(t *testing.T) {
	v := NewValidator(noPrompt(t))
	for _, body := range SupportedBodies {
		got, err := v.Validate(body)
		if err != nil {
			t.Errorf("Validate(%q) error: %v", body, err)
		}
		if got != body {
			t.Errorf("Validate(%q) = %q, expected identity", body, got)
		}
	}
}

func TestValidateCaseInsensitive(t *testing.T) {
	v := NewValidator(noPrompt(t))
	tests := []struct {
		in   string
		want string
	}{
		{"Mars", "mars"},
		{"MOON", "moon"},
		{"JuPiTeR", "jupiter"},
	}
	for _, tt := range tests {
		got, err := v.Validate(tt.in)
		if err != nil {
			t.Errorf("Validate(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Validate(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateSuggestionAccepted(t *testing.T) {
	prompted := false
	v := NewValidator(confirmFunc(func(string) (bool, error) {
		prompted = true
		return true, nil
	}))

	got, err := v.Validate("marz")
	if err != nil {
		t.Fatalf("Validate(\"marz\") error: %v", err)
	}
	if got != "mars" {
		t.Errorf("Validate(\"marz\") = %q, expected \"mars\"", got)
	}
	if !prompted {
		t.Error("expected a confirmation prompt for a near miss")
	}
}

func TestValidateSuggestionDeclined(t *testing.T) {
	v := NewValidator(confirmFunc(func(string) (bool, error) {
		return false, nil
	}))

	_, err := v.Validate("marz")
	if !errors.Is(err, ErrUnsupportedBody) {
		t.Errorf("expected ErrUnsupportedBody after declined suggestion, got %v", err)
	}
}

func TestValidateFarMissRejectsWithoutPrompt(t *testing.T) {
	v := NewValidator(noPrompt(t))
	_, err := v.Validate("xylophone")
	if !errors.Is(err, ErrUnsupportedBody) {
		t.Errorf("expected ErrUnsupportedBody, got %v", err)
	}
}

func TestValidateNilConfirmer(t *testing.T) {
	v := NewValidator(nil)
	_, err := v.Validate("marz")
	if !errors.Is(err, ErrUnsupportedBody) {
		t.Errorf("expected ErrUnsupportedBody with nil confirmer, got %v", err)
	}
}

func TestClosestMatch(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		wantDist int
	}{
		{"marz", "mars", 1},
		{"vonus", "venus", 1},
		{"jupitr", "jupiter", 1},
		{"mon", "moon", 1},
		{"PLUTO", "pluto", 0},
	}
	for _, tt := range tests {
		got, dist := ClosestMatch(tt.in)
		if got != tt.want || dist != tt.wantDist {
			t.Errorf("ClosestMatch(%q) = (%q, %d), expected (%q, %d)",
				tt.in, got, dist, tt.want, tt.wantDist)
		}
	}
}

func TestClosestMatchTieBreak(t *testing.T) {
	// "mn" is edit distance 2 from both "moon" and "sun". The tie must go
	// to "moon", which appears first in SupportedBodies.
	got, dist := ClosestMatch("mn")
	if got != "moon" || dist != 2 {
		t.Errorf("ClosestMatch(\"mn\") = (%q, %d), expected (\"moon\", 2)", got, dist)
	}
}
