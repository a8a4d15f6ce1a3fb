package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-datefmt/pattern"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens PATTERN",
		Short: "Show how a pattern is tokenized",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokens,
	}
}

func runTokens(cmd *cobra.Command, args []string) error {
	symbol := color.New(color.FgCyan, color.Bold).SprintFunc()
	literal := color.New(color.FgYellow).SprintFunc()
	suffix := color.New(color.FgMagenta).SprintFunc()

	out := cmd.OutOrStdout()
	for i, tok := range pattern.Tokenize(args[0]) {
		switch tok.Kind {
		case pattern.Symbol:
			line := fmt.Sprintf("%3d  %-8s %s", i, tok.Kind, symbol(tok.Text))
			if tok.Suffix {
				line += " " + suffix("#")
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(out, "%3d  %-8s %s\n", i, tok.Kind, literal(fmt.Sprintf("%q", tok.Text))); err != nil {
				return err
			}
		}
	}
	return nil
}
