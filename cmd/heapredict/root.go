package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alloyforge/heapredict/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "heapredict",
	Short: "heapredict estimates basic physical properties of high-entropy alloys",
	Long: `heapredict predicts density, lattice parameter, and thermal conductivity
of high-entropy alloys from their atomic composition, using Rule-of-Mixtures
and Vegard's Law over a table of elemental constants.

NOTE: predictions are approximations based on simplified linear models and
are meant for rapid screening, not final materials design.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("data", "d", "", "Path to an element property data file (CSV or YAML); bundled table when empty")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// createLogger configures the application logger. Warnings always surface
// unless --quiet is set on the command; --debug lowers the threshold.
func createLogger(debug, quiet bool) *slog.Logger {
	if quiet {
		return logging.NewNop()
	}
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}
