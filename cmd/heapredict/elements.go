package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alloyforge/heapredict"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the elements available in the property table",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runElements(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}

func runElements(cmd *cobra.Command) error {
	dataPath, _ := cmd.Flags().GetString("data")

	predictor, err := heapredict.New(dataPath)
	if err != nil {
		return err
	}

	tbl := predictor.Table()
	symbols := tbl.Symbols()
	sort.Strings(symbols)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tMASS (g/mol)\tDENSITY (g/cm³)\tSTRUCTURE\tLATTICE (Å)\tCONDUCTIVITY (W/m·K)")
	for _, symbol := range symbols {
		props, _ := tbl.Lookup(symbol)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			symbol,
			cell(props.AtomicMass),
			cell(props.Density),
			orDash(props.CrystalStructure),
			cell(props.LatticeParameter),
			cell(props.ThermalConductivity),
		)
	}
	return w.Flush()
}

func cell(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
