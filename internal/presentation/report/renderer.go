package report

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown for the terminal
// using glamour, auto-detecting light/dark backgrounds. On renderer setup
// failure the returned function falls back to the raw markdown.
func NewRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) string {
		if err != nil {
			return markdown
		}
		out, renderErr := r.Render(markdown)
		if renderErr != nil {
			return markdown
		}
		return out
	}
}
