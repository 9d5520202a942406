package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	ics "github.com/arran4/ical-temporal"
)

type offsetResult struct {
	Input    string `json:"input" yaml:"input" toml:"input"`
	Hours    int    `json:"hours" yaml:"hours" toml:"hours"`
	Minutes  int    `json:"minutes" yaml:"minutes" toml:"minutes"`
	Negative bool   `json:"negative" yaml:"negative" toml:"negative"`
	Seconds  int    `json:"seconds" yaml:"seconds" toml:"seconds"`
	Basic    string `json:"basic" yaml:"basic" toml:"basic"`
	Extended string `json:"extended" yaml:"extended" toml:"extended"`
}

func (r offsetResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.Input, r.Basic, r.Extended, r.Seconds)
	return err
}

func newOffsetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "offset <value>...",
		Short: "Parse UTC offsets such as +0530 or -05:00",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]offsetResult, 0, len(args))
			for _, arg := range args {
				o, err := ics.ParseUTCOffset(arg)
				if err != nil {
					return err
				}
				results = append(results, offsetResult{
					Input:    arg,
					Hours:    o.Hours,
					Minutes:  o.Minutes,
					Negative: o.Negative,
					Seconds:  o.Seconds(),
					Basic:    o.Format(false),
					Extended: o.Format(true),
				})
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}
}
