// Package tui is the interactive playback screen of the play command.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpctl/mpctl/player"
)

// Options configures the playback screen.
type Options struct {
	// URL is loaded as soon as the screen opens.
	URL string
	// SeekStep is the number of seconds the arrow keys seek by.
	SeekStep float64
	// VolumeStep is the volume change per key press.
	VolumeStep float64
	// StartAt is the position, in seconds, to seek to once playback begins.
	StartAt float64
}

// Run shows the playback screen for p until the user quits, the media ends
// or the player process goes away. p must already be started.
func Run(p *player.Player, options Options) error {
	sub := p.Subscribe()
	defer p.Unsubscribe(sub)

	m := newModel(p, sub, options)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	return m.exitErr
}
