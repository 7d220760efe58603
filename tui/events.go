package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpctl/mpctl/player"
)

type (
	stateMsg    player.StateChange
	mediaMsg    player.MediaInfo
	tickMsg     float64
	errorMsg    player.Error
	finishedMsg struct{}
	doneMsg     struct{}
)

// waitForEvent turns the next subscription event into a message. It has to
// be issued again after every message but doneMsg.
func waitForEvent(sub *player.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case c := <-sub.StateChanged:
			return stateMsg(c)
		case info := <-sub.MediaInfoChanged:
			return mediaMsg(info)
		case pos := <-sub.Tick:
			return tickMsg(pos)
		case err := <-sub.Error:
			return errorMsg(err)
		case <-sub.Finished:
			return finishedMsg{}
		case <-sub.Done:
			return doneMsg{}
		}
	}
}
