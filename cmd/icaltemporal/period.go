package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	ics "github.com/arran4/ical-temporal"
)

type periodResult struct {
	Input       string `json:"input" yaml:"input" toml:"input"`
	Start       string `json:"start" yaml:"start" toml:"start"`
	End         string `json:"end,omitempty" yaml:"end,omitempty" toml:"end,omitempty"`
	Duration    string `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	ResolvedEnd string `json:"resolved-end" yaml:"resolved-end" toml:"resolved-end"`
}

func newPeriodResult(input string, p ics.Period, loc *time.Location) periodResult {
	r := periodResult{
		Input:       input,
		Start:       ics.FormatTemporal(p.Start(), ics.ISOFormatTimeExtended, loc),
		ResolvedEnd: ics.FormatTemporal(p.ResolvedEnd(), ics.ISOFormatTimeExtended, loc),
	}
	if end, ok := p.End(); ok {
		r.End = ics.FormatTemporal(end, ics.ISOFormatTimeExtended, loc)
	}
	if d, ok := p.Duration(); ok {
		r.Duration = d.String()
	}
	return r
}

func (r periodResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Input, r.Start, r.ResolvedEnd)
	return err
}

func newPeriodCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "period <value>...",
		Short: "Parse PERIOD values of the form start/end or start/duration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]periodResult, 0, len(args))
			for _, arg := range args {
				p, err := ics.ParsePeriod(arg, a.loc)
				if err != nil {
					return err
				}
				results = append(results, newPeriodResult(arg, p, a.loc))
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
}
