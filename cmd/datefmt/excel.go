package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-datefmt/excel"
)

func newExcelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excel [CODE] [SERIAL]",
		Short: "Convert an Excel date format code, or render a serial with it",
		Long: `Excel prints the datefmt pattern equivalent to an Excel number-format CODE.
With SERIAL it renders that Excel date serial instead.  --id selects a built-in
format in place of CODE.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runExcel,
	}
	cmd.Flags().Int("id", -1, "built-in Excel numFmtId to use instead of CODE")
	cmd.Flags().Bool("date1904", false, "interpret SERIAL in the 1904 date system")
	return cmd
}

func runExcel(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("id")
	date1904, _ := cmd.Flags().GetBool("date1904")

	var code string
	if cmd.Flags().Changed("id") {
		c, ok := excel.BuiltIn(id)
		if !ok {
			return fmt.Errorf("numFmtId %d is not a built-in date format", id)
		}
		code = c
	} else {
		if len(args) == 0 {
			return fmt.Errorf("a format CODE or --id is required")
		}
		code, args = args[0], args[1:]
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument %q", args[1])
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		layout, err := excel.Convert(code)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, layout)
		return err
	}

	serial, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid serial %q: %w", args[0], err)
	}
	s, err := excel.FormatSerial(serial, code, date1904)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}
