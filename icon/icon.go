// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/stacklab/stacklab/key"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// Get retrieves the visual representation for the receiver Def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Push
	Pop
	Peek
	Top
	Empty
)

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "\uf00c", plain: "✓", kaomoji: "(^▽^)", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "\uf00d", plain: "✗", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "\uf110", plain: "…", kaomoji: "(・_・)", squares: "🟨"},
	Push:     {emoji: "⬇️", nerd: "\uf063", plain: "+", kaomoji: "(っ˘ω˘)っ", squares: "🟦"},
	Pop:      {emoji: "⬆️", nerd: "\uf062", plain: "-", kaomoji: "⊂(・▽・⊂)", squares: "🟪"},
	Peek:     {emoji: "👀", nerd: "\uf06e", plain: "?", kaomoji: "(¬‿¬)", squares: "⬜"},
	Top:      {emoji: "👉", nerd: "\uf0da", plain: ">", kaomoji: "☞", squares: "▶"},
	Empty:    {emoji: "🫙", nerd: "\uf49e", plain: "∅", kaomoji: "(ノ_<。)", squares: "⬛"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
