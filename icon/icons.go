package icon

import "github.com/bililink-cli/bililink/color"

type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Mark
	Live
	Room
	Link
	Player
)

var icons = map[Icon]glyphs{
	Fail:     {color.Red, "💀", "", "X", "(╥﹏╥)"},
	Success:  {color.Green, "🎉", "", "✓", "(ᵔ◡ᵔ)"},
	Progress: {color.Blue, "⏳", "", "@", "(・_・;)"},
	Mark:     {color.Blue, "📌", "", "*", "(•̀ᴗ•́)و"},
	Live:     {color.Red, "🔴", "", "●", "(°o°)"},
	Room:     {color.Purple, "📺", "", "#", "(◕‿◕)"},
	Link:     {color.Cyan, "🔗", "", "~", "(¬‿¬)"},
	Player:   {color.Yellow, "🎬", "", ">", "(ﾉ◕ヮ◕)ﾉ"},
}
