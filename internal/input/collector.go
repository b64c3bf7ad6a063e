package input

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// ValidateTimezone checks name against the system timezone database.
func ValidateTimezone(name string) error {
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("invalid timezone %q", name)
	}
	return nil
}

// Collector walks the interactive input states: query mode, start date,
// end date, timezone. Every state re-prompts until its input validates;
// the loops end only on success or on input-stream failure.
type Collector struct {
	p *Prompter
}

// NewCollector returns a Collector speaking through p.
func NewCollector(p *Prompter) *Collector {
	return &Collector{p: p}
}

// CollectRange asks single-day vs range, then collects the date(s). In
// range mode the end date must be strictly after the start; a bad format
// and a misordered date each get their own error message.
func (c *Collector) CollectRange() (start, end time.Time, err error) {
	mode, err := c.collectMode()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if mode == "s" {
		start, err = c.collectDate("Enter the date (YYYY-MM-DD)")
		return start, start, err
	}

	start, err = c.collectDate("Enter the start date (YYYY-MM-DD)")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	for {
		end, err = c.collectDate("Enter the end date (YYYY-MM-DD)")
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if end.After(start) {
			return start, end, nil
		}
		c.p.Sayf("End date must be after the start date.")
	}
}

// CollectTimezone prompts until the supplied name is in the timezone
// database. The offered default still goes through the same validation.
func (c *Collector) CollectTimezone() (string, error) {
	for {
		name, err := c.p.Ask("Enter timezone (e.g. 'America/Sao_Paulo', 'UTC')", "UTC")
		if err != nil {
			return "", err
		}
		if ValidateTimezone(name) == nil {
			return name, nil
		}
		c.p.Sayf("Invalid timezone %q. Please try again.", name)
	}
}

func (c *Collector) collectMode() (string, error) {
	for {
		mode, err := c.p.Ask("Events for a (s)ingle day or a date (r)ange?", "r")
		if err != nil {
			return "", err
		}
		if mode == "s" || mode == "r" {
			return mode, nil
		}
		c.p.Sayf("Please answer 's' or 'r'.")
	}
}

func (c *Collector) collectDate(prompt string) (time.Time, error) {
	for {
		raw, err := c.p.Ask(prompt, "")
		if err != nil {
			return time.Time{}, err
		}
		t, perr := ParseDate(raw)
		if perr == nil {
			return t, nil
		}
		c.p.Sayf("Invalid date format. Please use YYYY-MM-DD.")
	}
}
