package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	ics "github.com/arran4/ical-temporal"
)

type durationResult struct {
	Input     string `json:"input" yaml:"input" toml:"input"`
	Weeks     *int   `json:"weeks,omitempty" yaml:"weeks,omitempty" toml:"weeks,omitempty"`
	Days      *int   `json:"days,omitempty" yaml:"days,omitempty" toml:"days,omitempty"`
	Hours     *int   `json:"hours,omitempty" yaml:"hours,omitempty" toml:"hours,omitempty"`
	Minutes   *int   `json:"minutes,omitempty" yaml:"minutes,omitempty" toml:"minutes,omitempty"`
	Seconds   *int   `json:"seconds,omitempty" yaml:"seconds,omitempty" toml:"seconds,omitempty"`
	Prior     bool   `json:"prior" yaml:"prior" toml:"prior"`
	Canonical string `json:"canonical" yaml:"canonical" toml:"canonical"`
	Nominal   string `json:"nominal" yaml:"nominal" toml:"nominal"`
}

func newDurationResult(input string, d ics.Duration) durationResult {
	field := func(n int, ok bool) *int {
		if !ok {
			return nil
		}
		return &n
	}
	return durationResult{
		Input:     input,
		Weeks:     field(d.Weeks()),
		Days:      field(d.Days()),
		Hours:     field(d.Hours()),
		Minutes:   field(d.Minutes()),
		Seconds:   field(d.Seconds()),
		Prior:     d.Prior(),
		Canonical: d.String(),
		Nominal:   d.TimeDuration().String(),
	}
}

func (r durationResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Input, r.Canonical, r.Nominal)
	return err
}

func newDurationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "duration <value>...",
		Short: "Parse DURATION values",
		Long: `Parses durations such as P15DT5H0M20S or -PT15M.  Parsing is lenient:
unknown text is ignored and a missing component stays absent.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]durationResult, 0, len(args))
			for _, arg := range args {
				results = append(results, newDurationResult(arg, ics.ParseDuration(arg)))
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
}
