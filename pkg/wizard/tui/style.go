package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-ragkit/pkg/model"
)

var levelColors = map[model.Level]lipgloss.Color{
	model.LevelHigh:   lipgloss.Color("196"),
	model.LevelMedium: lipgloss.Color("214"),
	model.LevelLow:    lipgloss.Color("42"),
}

// Badge renders text in the colour of the given level. Unknown levels render
// the text unstyled.
func Badge(level model.Level, text string) string {
	color, ok := levelColors[level]
	if !ok {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(level == model.LevelHigh).Render(text)
}

// optionLabel formats a catalog entry for a prompt. Entries with a level get
// a badge when styling is enabled.
func optionLabel(opt model.Option, text func(model.Level) string, styled bool) string {
	label := opt.Label
	if opt.Level == "" || text == nil {
		return label
	}
	badge := "[" + text(opt.Level) + "]"
	if styled {
		badge = Badge(opt.Level, badge)
	}
	return label + " " + badge
}
