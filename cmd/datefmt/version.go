package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-datefmt"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "datefmt %s\n", datefmt.Version)
			return err
		},
	}
}
