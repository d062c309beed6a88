package report

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs a small colored header before interactive reports.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	title := termenv.String("heapredict").Foreground(p.Color("#38bdf8")).Bold()
	tag := termenv.String("HEA property screening · v" + version).Foreground(p.Color("#94a3b8"))

	fmt.Println()
	fmt.Printf("%s  %s\n", title, tag)
	fmt.Println()
}
