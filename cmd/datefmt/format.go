package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-datefmt"
	"github.com/TsubasaBE/go-datefmt/config"
)

func newFormatCmd(clock clockwork.Clock) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [PATTERN] [INSTANT]",
		Short: "Format an instant",
		Long: `Format renders INSTANT (RFC 3339, @<unix-ms> or "now") with PATTERN.
Without PATTERN the configured pattern is used.  Without --offset or --zone
the instant's own offset applies.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, clock)
		},
	}
	cmd.Flags().String("offset", "", `offset as "+01:00" or milliseconds (UTC minus local)`)
	cmd.Flags().String("zone", "", "IANA timezone, e.g. Europe/Paris")
	cmd.Flags().String("locale", "", "locale for month and weekday names")
	cmd.Flags().String("names", "", "names provider (english|cldr|monday)")
	return cmd
}

func runFormat(cmd *cobra.Command, args []string, clock clockwork.Clock) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	layout := cfg.Pattern
	if len(args) > 0 {
		layout = args[0]
	}
	var instant string
	if len(args) > 1 {
		instant = args[1]
	}
	t, err := parseInstant(instant, clock)
	if err != nil {
		return err
	}

	opts, err := cfg.Options(t)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"module": logModule, "pattern": layout, "instant": t, "locale": cfg.Locale}).Debug("formatting")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), datefmt.Format(t, layout, opts...))
	return err
}

// loadConfig reads the configuration file and applies the command-line
// overrides present on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("offset") && flags.Changed("zone") {
		return nil, fmt.Errorf("--offset and --zone are mutually exclusive")
	}
	if flags.Changed("offset") {
		cfg.Offset, _ = flags.GetString("offset")
		cfg.Zone = ""
	}
	if flags.Changed("zone") {
		cfg.Zone, _ = flags.GetString("zone")
		cfg.Offset = nil
	}
	if flags.Changed("locale") {
		cfg.Locale, _ = flags.GetString("locale")
	}
	if flags.Changed("names") {
		cfg.Names, _ = flags.GetString("names")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
