package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lorepozo/skn/internal/logging"
)

var (
	verbose bool
	logMode string
	logger  *logging.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "skn",
	Short: "Drive a Knowledge Network with the synthesis mechanism",
	Long: `skn builds a Knowledge Network from an embryo, registers the
Synthesis Mechanism, and runs the Integration Loop for a configured
number of iterations, invoking the external synthesis engine once per
iteration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode := logMode
		if verbose {
			mode = "dev"
		}
		l, err := logging.New(mode)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

// Execute adds all child commands to rootCmd and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "prod", "Logging mode: prod or dev")
}
