package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	ics "github.com/arran4/ical-temporal"
)

func newUnfoldCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfold [file]",
		Short: "Print the content lines of a folded stream",
		Long: `Reads a folded iCalendar or vCard stream from file, or standard input,
and prints one content line per output line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.open(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()

			u := ics.NewLineUnfolder(r)
			w := cmd.OutOrStdout()
			n := 0
			for {
				l, err := u.ReadLine()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(w, l); err != nil {
					return err
				}
				n++
			}
			a.log.Printf("unfolded %d lines", n)
			return nil
		},
	}
}
