// Package input collects and validates user input for an event query, in
// both interactive (prompt-until-valid) and batch (fail-fast) modes.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads line-oriented answers from r and writes prompts to w.
// Reads block until a full line arrives; an interrupted or closed input
// stream surfaces as an error so callers' retry loops can terminate.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter wraps the given streams. In production these are stdin and
// stdout; tests feed scripted transcripts.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Ask prints the prompt and returns the next input line, trimmed. An
// empty line returns def.
func (p *Prompter) Ask(prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.w, "%s: ", prompt)
	}

	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm asks a yes/no question, defaulting to yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	ans, err := p.Ask(prompt+" (Y/n)", "y")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(ans) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Sayf writes a message to the prompter's output stream.
func (p *Prompter) Sayf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
