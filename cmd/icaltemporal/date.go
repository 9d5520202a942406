package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	ics "github.com/arran4/ical-temporal"
)

type dateResult struct {
	Input   string            `json:"input" yaml:"input" toml:"input"`
	Instant string            `json:"instant" yaml:"instant" toml:"instant"`
	HasTime bool              `json:"has-time" yaml:"has-time" toml:"has-time"`
	Zone    string            `json:"zone" yaml:"zone" toml:"zone"`
	Offset  string            `json:"offset,omitempty" yaml:"offset,omitempty" toml:"offset,omitempty"`
	Formats map[string]string `json:"formats" yaml:"formats" toml:"formats"`
}

func newDateResult(input string, v ics.TemporalValue, loc *time.Location) dateResult {
	r := dateResult{
		Input:   input,
		Instant: v.Time.Format(time.RFC3339Nano),
		HasTime: v.HasTime,
		Zone:    v.Zone.String(),
		Formats: make(map[string]string, len(ics.ISOFormats)),
	}
	if v.Zone == ics.TemporalZoneOffset {
		r.Offset = v.Offset.Format(true)
	}
	for _, f := range ics.ISOFormats {
		r.Formats[string(f)] = ics.FormatTemporal(v.Time, f, loc)
	}
	return r
}

func (r dateResult) writeText(w io.Writer) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n", r.Input)
	fmt.Fprintf(b, "  instant: %s\n", r.Instant)
	fmt.Fprintf(b, "  zone: %s", r.Zone)
	if r.Offset != "" {
		fmt.Fprintf(b, " %s", r.Offset)
	}
	b.WriteString("\n")
	for _, f := range ics.ISOFormats {
		fmt.Fprintf(b, "  %s: %s\n", f, r.Formats[string(f)])
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type formattedResult struct {
	Input  string `json:"input" yaml:"input" toml:"input"`
	Format string `json:"format" yaml:"format" toml:"format"`
	Value  string `json:"value" yaml:"value" toml:"value"`
}

func (r formattedResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Value)
	return err
}

func newDateCmd(a *app) *cobra.Command {
	dateCmd := &cobra.Command{
		Use:   "date",
		Short: "Parse and format DATE and DATE-TIME values",
	}

	parseCmd := &cobra.Command{
		Use:   "parse <value>...",
		Short: "Parse values and show them in every format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]dateResult, 0, len(args))
			for _, arg := range args {
				v, err := ics.ParseTemporalValue(arg, a.loc)
				if err != nil {
					return err
				}
				results = append(results, newDateResult(arg, v, a.loc))
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}

	var format string
	formatCmd := &cobra.Command{
		Use:   "format <value>...",
		Short: "Rewrite values in one format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ics.ParseISOFormat(format)
			if err != nil {
				return err
			}
			results := make([]formattedResult, 0, len(args))
			for _, arg := range args {
				t, err := ics.ParseTemporal(arg, a.loc)
				if err != nil {
					return err
				}
				results = append(results, formattedResult{
					Input:  arg,
					Format: string(f),
					Value:  ics.FormatTemporal(t, f, a.loc),
				})
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
	formatCmd.Flags().StringVarP(&format, "format", "f", string(ics.ISOFormatUTCTimeBasic), "One of "+formatNames())

	dateCmd.AddCommand(parseCmd, formatCmd)
	return dateCmd
}

func formatNames() string {
	names := make([]string, 0, len(ics.ISOFormats))
	for _, f := range ics.ISOFormats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
