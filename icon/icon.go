// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/mpctl/mpctl/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every accepted icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Play Icon = iota
	Pause
	Stop
	Idle
	Loading
	Volume
	Mute
	Warning
	Fail
	Success
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d iconDef) get(variant string) string {
	switch variant {
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

var icons = map[Icon]iconDef{
	Play:    {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(^o^)", squares: "▶"},
	Pause:   {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(-_-)", squares: "⏸"},
	Stop:    {emoji: "⏹️", nerd: "", plain: "[]", kaomoji: "(._.)", squares: "■"},
	Idle:    {emoji: "💤", nerd: "", plain: "-", kaomoji: "(=_=)", squares: "□"},
	Loading: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(o_o)", squares: "▣"},
	Volume:  {emoji: "🔊", nerd: "", plain: "vol", kaomoji: "(*^▽^*)", squares: "▤"},
	Mute:    {emoji: "🔇", nerd: "", plain: "mute", kaomoji: "(×_×)", squares: "▥"},
	Warning: {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(・_・;)", squares: "▲"},
	Fail:    {emoji: "💀", nerd: "", plain: "x", kaomoji: "(╥﹏╥)", squares: "✖"},
	Success: {emoji: "✅", nerd: "", plain: "v", kaomoji: "(ᵔᴥᵔ)", squares: "✔"},
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	return icons[i].get(viper.GetString(key.IconsVariant))
}
