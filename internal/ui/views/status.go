package views

import (
	"fmt"
	"strings"

	"github.com/jmallia/scribe/internal/ui/models"
)

// RenderStatus renders the status bar: activity on the left, the active
// model name on the right.
func RenderStatus(s models.State) string {
	var left string
	switch s.StatusPhase {
	case "thinking":
		dots := strings.Repeat(".", s.DotCount)
		left = StatusThinkingStyle.Render(fmt.Sprintf("%s Generating%s", s.Spinner.View(), dots))
	case "executing":
		left = StatusExecutingStyle.Render(fmt.Sprintf("%s %s", s.Spinner.View(), s.StatusMessage))
	case "done":
		left = StatusDoneStyle.Render("✔ " + s.StatusMessage)
	default:
		left = StatusDefaultStyle.Render("Ready")
	}

	if s.CurrentModel != "" {
		return fmt.Sprintf("%s  %s", left, StatusDefaultStyle.Render(s.CurrentModel))
	}
	return left
}
