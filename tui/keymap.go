package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mpctl/mpctl/style"
)

type keymap struct {
	playPause, stop,
	seekBack, seekForward,
	volumeUp, volumeDown, mute,
	contrastDown, contrastUp,
	showHelp, quit key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		playPause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp(style.Fg(style.Yellow)("space"), style.Fg(style.Yellow)("play/pause")),
		),
		stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		seekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "rewind"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "forward"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑", "volume up"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓", "volume down"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		contrastDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "less contrast"),
		),
		contrastUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more contrast"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "ctrl+d"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.playPause, k.seekBack, k.seekForward, k.showHelp, k.quit}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.playPause, k.stop, k.seekBack, k.seekForward},
		{k.volumeUp, k.volumeDown, k.mute},
		{k.contrastDown, k.contrastUp, k.showHelp, k.quit},
	}
}
