// Package icon renders the status symbols printed in front of CLI messages.
//
// The icons.variant setting picks the glyph set. Every variant except emoji is tinted with the icon's color.
package icon

import (
	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type glyphs struct {
	color   lipgloss.Color
	emoji   string
	nerd    string
	plain   string
	kaomoji string
}

func (g glyphs) render(variant string) string {
	var s string

	switch variant {
	case emoji:
		return g.emoji
	case nerd:
		s = g.nerd
	case plain:
		s = g.plain
	case kaomoji:
		s = g.kaomoji
	case squares:
		s = "▇"
	default:
		return ""
	}

	return style.Fg(g.color)(s)
}

// Get renders i in the configured variant.
// Unknown icons and variants render as an empty string.
func Get(i Icon) string {
	g, ok := icons[i]
	if !ok {
		return ""
	}

	return g.render(viper.GetString(key.IconsVariant))
}
