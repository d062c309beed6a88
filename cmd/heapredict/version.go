package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alloyforge/heapredict"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of heapredict",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("heapredict version %s\n", strings.TrimSpace(heapredict.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
