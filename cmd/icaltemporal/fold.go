package main

import (
	"bufio"

	"github.com/spf13/cobra"

	ics "github.com/arran4/ical-temporal"
)

// maxInputLine bounds a single unfolded input line.
const maxInputLine = 1 << 20

func newFoldCmd(a *app) *cobra.Command {
	var (
		lineLength int
		newLine    string
	)
	cmd := &cobra.Command{
		Use:   "fold [file]",
		Short: "Fold each input line to the configured length",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("line-length") {
				cfg.LineLength = lineLength
			}
			if cmd.Flags().Changed("newline") {
				cfg.NewLine = newLine
			}
			ops, err := cfg.foldOps()
			if err != nil {
				return err
			}

			r, err := a.open(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()

			var lines []ics.ContentLine
			sc := bufio.NewScanner(r)
			sc.Buffer(make([]byte, 0, 64*1024), maxInputLine)
			for sc.Scan() {
				lines = append(lines, ics.ContentLine(sc.Text()))
			}
			if err := sc.Err(); err != nil {
				return err
			}
			a.log.Printf("folding %d lines at %d octets", len(lines), cfg.LineLength)
			return ics.FoldLines(cmd.OutOrStdout(), lines, ops...)
		},
	}
	cmd.Flags().IntVarP(&lineLength, "line-length", "l", 75, "Maximum octets per physical line (overrides config)")
	cmd.Flags().StringVar(&newLine, "newline", "crlf", "Line terminator: crlf, lf or native (overrides config)")
	return cmd
}
