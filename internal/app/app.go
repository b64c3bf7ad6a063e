// Package app wires validation, event lookup and rendering together for
// one invocation of the astro-data CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/York-Lucis/astro-data/internal/input"
	"github.com/York-Lucis/astro-data/pkg/catalog"
	"github.com/York-Lucis/astro-data/pkg/config"
	"github.com/York-Lucis/astro-data/pkg/ephemeris"
	"github.com/York-Lucis/astro-data/pkg/render"
	"github.com/York-Lucis/astro-data/pkg/timeline"
)

// Options carries the flag-level inputs for one invocation. Zero-valued
// Target/Start switch the app into interactive mode.
type Options struct {
	Target      string
	Start       string
	End         string
	Timezone    string
	Interactive bool
	Plain       bool
}

// App runs one query end to end. All entities it builds are per
// invocation; nothing is shared or persisted.
type App struct {
	opts     Options
	defaults *config.Defaults
	oracle   ephemeris.Oracle
	in       io.Reader
	out      io.Writer
	logger   *zap.SugaredLogger
}

// New assembles an App. in/out are the user-facing streams (stdin/stdout
// in production).
func New(opts Options, defaults *config.Defaults, oracle ephemeris.Oracle, in io.Reader, out io.Writer, logger *zap.SugaredLogger) *App {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &App{
		opts:     opts,
		defaults: defaults,
		oracle:   oracle,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run resolves a validated request (interactively or from flags), builds
// the event timeline and renders it.
func (a *App) Run(ctx context.Context) error {
	prompter := input.NewPrompter(a.in, a.out)
	validator := catalog.NewValidator(prompter)

	var req timeline.Request
	var err error
	if a.opts.Interactive || a.opts.Target == "" || a.opts.Start == "" {
		req, err = a.collectInteractive(prompter, validator)
	} else {
		req, err = a.resolveBatch(validator)
	}
	if err != nil {
		return err
	}
	a.logger.Debugw("request resolved",
		"body", req.Body,
		"start", req.Range.Start,
		"end", req.Range.End,
		"timezone", req.Timezone)

	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Calculating astronomical events...")
	tl, err := timeline.NewBuilder(a.oracle, a.logger).Build(req.Body, req.Range)
	if err != nil {
		return fmt.Errorf("computing events: %w", err)
	}

	a.presenter().Render(a.out, tl, req)
	return nil
}

// collectInteractive walks the prompt sequence: body, date(s), timezone.
// Date and timezone prompts retry until valid; a rejected body name is a
// hard stop for the whole request.
func (a *App) collectInteractive(p *input.Prompter, v *catalog.Validator) (timeline.Request, error) {
	p.Sayf("Welcome to AstroData interactive mode!")

	raw, err := p.Ask("Which celestial body are you interested in?", "")
	if err != nil {
		return timeline.Request{}, err
	}
	body, err := v.Validate(raw)
	if err != nil {
		a.reportUnsupported(raw, err)
		return timeline.Request{}, err
	}

	collector := input.NewCollector(p)
	start, end, err := collector.CollectRange()
	if err != nil {
		return timeline.Request{}, err
	}
	zone, err := collector.CollectTimezone()
	if err != nil {
		return timeline.Request{}, err
	}

	return timeline.Request{
		Body:     body,
		Range:    timeline.Range{Start: start, End: end},
		Timezone: zone,
	}, nil
}

// resolveBatch validates the flag inputs without prompting (except the
// one-shot typo confirmation inside the validator) and fails on the
// first violation, naming the offending field.
func (a *App) resolveBatch(v *catalog.Validator) (timeline.Request, error) {
	body, err := v.Validate(a.opts.Target)
	if err != nil {
		a.reportUnsupported(a.opts.Target, err)
		return timeline.Request{}, err
	}

	start, err := input.ParseDate(a.opts.Start)
	if err != nil {
		return timeline.Request{}, fmt.Errorf("start date: %w", err)
	}

	end := start
	if a.opts.End != "" {
		end, err = input.ParseDate(a.opts.End)
		if err != nil {
			return timeline.Request{}, fmt.Errorf("end date: %w", err)
		}
	}
	if end.Before(start) {
		return timeline.Request{}, fmt.Errorf("end date %s must not be before start date %s",
			end.Format(input.DateLayout), start.Format(input.DateLayout))
	}

	zone := a.opts.Timezone
	if zone == "" {
		zone = a.defaults.Timezone
	}
	if err := input.ValidateTimezone(zone); err != nil {
		return timeline.Request{}, err
	}

	return timeline.Request{
		Body:     body,
		Range:    timeline.Range{Start: start, End: end},
		Timezone: zone,
	}, nil
}

// reportUnsupported surfaces the supported-body list when a name cannot
// be resolved. Input-stream failures are not name rejections and get no
// list.
func (a *App) reportUnsupported(raw string, err error) {
	if !errors.Is(err, catalog.ErrUnsupportedBody) {
		return
	}
	fmt.Fprintf(a.out, "Error: %q is not a supported celestial body.\n", raw)
	fmt.Fprintf(a.out, "Supported bodies are: %s\n", strings.Join(catalog.SupportedBodies, ", "))
}

func (a *App) presenter() render.Presenter {
	if a.opts.Plain || a.defaults.Renderer == "plain" {
		return render.NewPlain()
	}
	return render.NewStyled()
}
