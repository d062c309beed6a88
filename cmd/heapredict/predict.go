package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alloyforge/heapredict"
	"github.com/alloyforge/heapredict/internal/presentation/report"
)

var predictCmd = &cobra.Command{
	Use:   "predict <composition>",
	Short: "Predict alloy properties from an atomic composition",
	Long: `Predicts density, lattice parameter, and thermal conductivity for the
given composition.

Format: 'Elem1:frac1,Elem2:frac2,...' (e.g. 'Fe:0.2,Co:0.2,Ni:0.2,Cr:0.2,Mn:0.2').
Fractions should sum to 1.0 and are normalized otherwise.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPredict(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().StringP("output", "o", "", "Write the plain-text report to a file")
	predictCmd.Flags().Bool("json", false, "Emit the prediction as JSON on stdout")
	predictCmd.Flags().Bool("plain", false, "Disable terminal markdown rendering")
	predictCmd.Flags().Bool("quiet", false, "Suppress warning diagnostics")
}

func runPredict(cmd *cobra.Command, composition string) error {
	dataPath, _ := cmd.Flags().GetString("data")
	debug, _ := cmd.Flags().GetBool("debug")
	quiet, _ := cmd.Flags().GetBool("quiet")
	outputPath, _ := cmd.Flags().GetString("output")
	jsonMode, _ := cmd.Flags().GetBool("json")
	plain, _ := cmd.Flags().GetBool("plain")

	logger := createLogger(debug, quiet)

	predictor, err := heapredict.New(dataPath, heapredict.WithLogger(logger))
	if err != nil {
		return err
	}

	// Warnings reach stderr through the predictor's logger; individual
	// property failures are rendered inside the report and do not change
	// the exit status.
	rep, err := predictor.Predict(composition)
	if err != nil {
		return err
	}

	if jsonMode {
		data, err := json.MarshalIndent(report.NewPayload(rep), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
		report.PrintBanner(heapredict.Version)
		render := report.NewRenderer()
		fmt.Print(render(report.Markdown(rep)))
	} else {
		fmt.Print(report.Text(rep))
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(report.Text(rep)), 0o644); err != nil {
			return fmt.Errorf("could not write results to %q: %w", outputPath, err)
		}
		fmt.Fprintf(os.Stderr, "Results saved to %q\n", outputPath)
	}

	return nil
}
