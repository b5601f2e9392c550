// Package color names the terminal colors used by icons, styles and command output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index ("1"-"255") or a hex value ("#fb7299").
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiPurple = New("13")
)
