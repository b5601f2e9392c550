// Package style wraps lipgloss into plain string-to-string renderers.
package style

import (
	"github.com/bililink-cli/bililink/color"
	"github.com/charmbracelet/lipgloss"
)

// Accent is the pink of the live site.
var Accent = lipgloss.Color("#fb7299")

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer painting text in c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

func Faint(s string) string { return New().Faint(true).Render(s) }

func Bold(s string) string { return New().Bold(true).Render(s) }

// Title renders s as a padded light-on-accent badge.
func Title(s string) string {
	return New().
		Foreground(color.New("230")).
		Background(Accent).
		Padding(0, 1).
		Render(s)
}
