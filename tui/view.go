package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mpctl/mpctl/icon"
	"github.com/mpctl/mpctl/player"
	"github.com/mpctl/mpctl/style"
	"github.com/mpctl/mpctl/util"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (m *model) View() string {
	lines := []string{
		style.Title("Now Playing"),
		"",
		m.fit(stateIcon(m.state) + " " + style.Fg(style.Purple)(m.title())),
		m.fit(style.Faint(m.details())),
		"",
		m.progressC.ViewAs(m.fraction()),
		formatTime(m.position) + " / " + formatTime(m.info.Length),
		"",
		m.viewVolume(),
	}

	if e, ok := m.fatal.Get(); ok {
		lines = append(lines, "", m.viewError(e))
	}

	return m.renderLines(m.notifier.View(strings.Join(lines, "\n")))
}

func (m *model) title() string {
	if t, ok := m.info.Tags["Title"]; ok && t != "" {
		return t
	}
	return util.MediaTitle(m.info.URL)
}

func (m *model) details() string {
	parts := []string{util.Capitalize(m.state.String())}

	if m.info.HasVideo() {
		v := m.info.Video
		parts = append(parts, fmt.Sprintf("video %dx%d %s", v.Width, v.Height, v.Format))
	}
	if m.info.HasAudio() {
		a := m.info.Audio
		parts = append(parts, fmt.Sprintf("audio %s %d kbps", a.Format, a.BitrateKbps))
	}
	if m.info.Valid && !m.info.Seekable {
		parts = append(parts, "live")
	}

	return strings.Join(parts, " · ")
}

func (m *model) fraction() float64 {
	if m.info.Length <= 0 {
		return 0
	}
	return m.position / m.info.Length
}

func (m *model) viewVolume() string {
	if m.muted {
		return icon.Get(icon.Mute) + " " + style.Fg(style.Red)("muted")
	}
	return icon.Get(icon.Volume) + " " + fmt.Sprintf("%.0f%%", m.volume)
}

func (m *model) viewError(e player.Error) string {
	msg := style.Fg(style.Red)(strings.ReplaceAll(e.Message, "\n", "; "))
	if m.width > 0 {
		msg = wrap.String(msg, m.width)
	}
	return icon.Get(icon.Fail) + " " + msg
}

// fit cuts s to the screen width. Before the first resize nothing is cut.
func (m *model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(m.width), "…")
}

func (m *model) renderLines(l string) string {
	h := strings.Count(l, "\n") + 2
	if m.height > h {
		l += strings.Repeat("\n", m.height-h)
	}
	l += "\n" + m.helpC.View(m.keymap)

	return paddingStyle.Render(l)
}

func stateIcon(s player.State) string {
	switch s {
	case player.Playing:
		return icon.Get(icon.Play)
	case player.Paused:
		return icon.Get(icon.Pause)
	case player.Stopped:
		return icon.Get(icon.Stop)
	case player.Loading, player.Buffering:
		return icon.Get(icon.Loading)
	default:
		return icon.Get(icon.Idle)
	}
}

func formatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
