package main

import (
	"io"
	"log"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type app struct {
	fs  afero.Fs
	log *log.Logger

	cfgFile string
	verbose bool
	zone    string
	output  string

	cfg Config
	loc *time.Location
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{
		fs:  fs,
		log: log.New(io.Discard, "icaltemporal: ", 0),
	}
	rootCmd := &cobra.Command{
		Use:   "icaltemporal",
		Short: "Folding and temporal value codec for iCalendar text",
		Long: `icaltemporal works with the text encodings of RFC 5545 and RFC 6350.

Commands:
  unfold    - join folded physical lines into content lines
  fold      - split content lines at the configured length
  date      - parse and format DATE and DATE-TIME values
  offset    - parse UTC offsets
  duration  - parse DURATION values
  period    - parse PERIOD values`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (yaml or toml); the environment is used when empty")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVarP(&a.zone, "zone", "z", "", "Zone for floating values and output (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output format: text, json, yaml or toml (overrides config)")

	rootCmd.AddCommand(
		newUnfoldCmd(a),
		newFoldCmd(a),
		newDateCmd(a),
		newOffsetCmd(a),
		newDurationCmd(a),
		newPeriodCmd(a),
	)
	return rootCmd
}

// setup loads the configuration and applies flag overrides before any
// command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.verbose {
		a.log.SetOutput(cmd.ErrOrStderr())
	}
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("zone") {
		cfg.Zone = a.zone
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	loc, err := cfg.location()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.loc = loc
	a.log.Printf("zone %s, output %s", loc, cfg.Output)
	return nil
}

// open returns the named file from the app filesystem, or standard input
// when no file or "-" is given.
func (a *app) open(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		a.log.Printf("reading standard input")
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := a.fs.Open(args[0])
	if err != nil {
		return nil, err
	}
	a.log.Printf("reading %s", args[0])
	return f, nil
}
