// Command datefmt formats instants with datefmt patterns.
//
//	datefmt format "dddd, MMMM D# YYYY" 2024-03-21T10:00:00Z
//	datefmt format --zone Asia/Tokyo "HH:mm ZZ"
//	datefmt tokens "YYYY-MM-DD'T'HH"
//	datefmt excel "m/d/yy h:mm AM/PM" 45412.5
package main

import (
	"os"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TsubasaBE/go-datefmt"
)

const logModule = "cmd"

// newRootCmd builds the command tree.  clock supplies "now" for commands
// whose instant argument is omitted.
func newRootCmd(clock clockwork.Clock) *cobra.Command {
	root := &cobra.Command{
		Use:           "datefmt",
		Short:         "Format dates with compact patterns",
		Long:          `datefmt renders instants with a pattern language supporting ISO 8601 week dates, ordinal suffixes and sub-second fields.`,
		Version:       datefmt.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			setupLogging(cmd, verbose)
			return nil
		},
	}

	root.PersistentFlags().Bool("verbose", false, "log debug output to stderr")
	root.PersistentFlags().String("config", "", "configuration file (default ~/.datefmt.toml)")

	root.AddCommand(newFormatCmd(clock))
	root.AddCommand(newTokensCmd())
	root.AddCommand(newExcelCmd())
	root.AddCommand(newZoneCmd(clock))
	root.AddCommand(newVersionCmd())
	return root
}

func setupLogging(cmd *cobra.Command, verbose bool) {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func main() {
	if err := newRootCmd(clockwork.NewRealClock()).Execute(); err != nil {
		os.Exit(1)
	}
}
