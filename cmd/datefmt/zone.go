package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-datefmt/numfmt"
	"github.com/TsubasaBE/go-datefmt/zone"
)

func newZoneCmd(clock clockwork.Clock) *cobra.Command {
	return &cobra.Command{
		Use:   "zone ZONE [INSTANT]",
		Short: "Print the offset of a timezone at an instant",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var instant string
			if len(args) > 1 {
				instant = args[1]
			}
			t, err := parseInstant(instant, clock)
			if err != nil {
				return err
			}
			ms, err := zone.Offset(t, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", ms, numfmt.Offset(ms, true, false))
			return err
		},
	}
}
