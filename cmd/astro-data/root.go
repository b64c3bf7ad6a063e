package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/York-Lucis/astro-data/internal/app"
	"github.com/York-Lucis/astro-data/internal/log"
	"github.com/York-Lucis/astro-data/pkg/config"
	"github.com/York-Lucis/astro-data/pkg/ephemeris"
)

func newRootCmd() *cobra.Command {
	var (
		opts    app.Options
		cfgFile string
		debug   bool
	)

	root := &cobra.Command{
		Use:   "astro-data",
		Short: "Report lunar phases and planetary oppositions/conjunctions",
		Long: `astro-data reports astronomical events (lunar phase transitions,
planetary oppositions and conjunctions with the Sun) for a celestial
body over a date range, shown in a timezone of your choice.

Run with --target and --start for batch mode, or without them (or with
--interactive) for a guided session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := config.NewYAMLProvider(cfgFile).Load()
			if err != nil {
				return err
			}

			if err := log.Init(debug || defaults.Debug); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer log.Sync()

			a := app.New(opts, defaults, ephemeris.NewMeeus(), os.Stdin, os.Stdout, log.GetSugaredLogger())
			return a.Run(cmd.Context())
		},
	}

	root.Flags().StringVar(&opts.Target, "target", "", `celestial body to query (e.g. "mars", "moon")`)
	root.Flags().StringVar(&opts.Start, "start", "", "start date (YYYY-MM-DD)")
	root.Flags().StringVar(&opts.End, "end", "", "end date (YYYY-MM-DD); defaults to the start date")
	root.Flags().StringVar(&opts.Timezone, "timezone", "", "timezone for displaying times (default from config, else UTC)")
	root.Flags().BoolVar(&opts.Interactive, "interactive", false, "start in interactive mode")
	root.Flags().BoolVar(&opts.Plain, "plain", false, "use the plain-text renderer")
	root.Flags().StringVar(&cfgFile, "config", defaultConfigPath(), "path to the defaults file")
	root.Flags().BoolVar(&debug, "debug", false, "turn on debugging output")

	root.AddCommand(newPhaseCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// defaultConfigPath points at the per-user defaults file. The file is
// optional; a missing one just means builtin defaults.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "astro-data.yaml"
	}
	return filepath.Join(home, ".config", "astro-data", "config.yaml")
}

// Execute runs the root command. Any error has already been reported in
// context by the time it reaches here; exit non-zero.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
