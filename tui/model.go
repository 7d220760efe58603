package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpctl/mpctl/internal/ui"
	"github.com/mpctl/mpctl/log"
	"github.com/mpctl/mpctl/player"
	"github.com/mpctl/mpctl/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const contrastStep = 5

// controller is the part of *player.Player the screen drives.
type controller interface {
	State() player.State
	Play(url string)
	Pause()
	Stop()
	Seek(value float64, absolute bool)
	AudioVolume() float64
	SetAudioVolume(v float64, absolute bool)
	SetAudioMute(mute bool)
	SetVideoContrast(v float64, absolute bool)
}

type model struct {
	ctl     controller
	sub     *player.Subscription
	options Options
	keymap  *keymap

	progressC progress.Model
	helpC     help.Model
	notifier  *ui.Notifier

	state    player.State
	info     player.MediaInfo
	position float64
	volume   float64
	muted    bool
	resumed  bool
	unpause  bool
	fatal    mo.Option[player.Error]
	exitErr  error

	width, height int
}

func newModel(ctl controller, sub *player.Subscription, options Options) *model {
	if options.SeekStep <= 0 {
		options.SeekStep = 5
	}
	if options.VolumeStep <= 0 {
		options.VolumeStep = 5
	}

	return &model{
		ctl:       ctl,
		sub:       sub,
		options:   options,
		keymap:    newKeymap(),
		progressC: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		helpC:     help.New(),
		notifier:  ui.NewNotifier(style.New().Foreground(style.Yellow)),
		state:     ctl.State(),
		info:      player.MediaInfo{URL: options.URL},
		volume:    ctl.AudioVolume(),
		fatal:     mo.None[player.Error](),
	}
}

func (m *model) Init() tea.Cmd {
	url := m.options.URL
	return tea.Batch(
		waitForEvent(m.sub),
		func() tea.Msg {
			m.ctl.Play(url)
			return nil
		},
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case ui.ClearNotificationMsg:
		m.notifier.Update(msg)
		return m, nil
	case stateMsg:
		m.state = msg.New
		if msg.New == player.NotStarted {
			m.exitErr = m.exitError()
			return m, tea.Quit
		}
		if cmd := m.unpauseAfterSeek(msg.New); cmd != nil {
			return m, tea.Batch(waitForEvent(m.sub), cmd)
		}
		if cmd := m.resume(msg.New); cmd != nil {
			return m, tea.Batch(waitForEvent(m.sub), cmd)
		}
	case mediaMsg:
		m.info = player.MediaInfo(msg)
	case tickMsg:
		m.position = float64(msg)
	case errorMsg:
		log.Warnf("tui: %s error: %s", msg.Kind, msg.Message)
		if msg.Kind == player.Fatal {
			m.fatal = mo.Some(player.Error(msg))
			break
		}
		return m, tea.Batch(waitForEvent(m.sub), m.notifier.Notify(msg.Message))
	case finishedMsg:
		return m, tea.Quit
	case doneMsg:
		return m, tea.Quit
	default:
		return m, nil
	}

	return m, waitForEvent(m.sub)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keymap
	switch {
	case key.Matches(msg, k.quit):
		return tea.Quit
	case key.Matches(msg, k.showHelp):
		m.helpC.ShowAll = !m.helpC.ShowAll
		return nil
	case key.Matches(msg, k.playPause):
		return m.run(m.ctl.Pause)
	case key.Matches(msg, k.stop):
		return m.run(m.ctl.Stop)
	case key.Matches(msg, k.seekBack), key.Matches(msg, k.seekForward):
		step := lo.Ternary(key.Matches(msg, k.seekForward), m.options.SeekStep, -m.options.SeekStep)
		return m.seek(step, false)
	case key.Matches(msg, k.volumeUp), key.Matches(msg, k.volumeDown):
		step := lo.Ternary(key.Matches(msg, k.volumeUp), m.options.VolumeStep, -m.options.VolumeStep)
		m.volume = lo.Clamp(m.volume+step, 0, 100)
		volume := m.volume
		return m.run(func() { m.ctl.SetAudioVolume(volume, true) })
	case key.Matches(msg, k.mute):
		m.muted = !m.muted
		muted := m.muted
		return m.run(func() { m.ctl.SetAudioMute(muted) })
	case key.Matches(msg, k.contrastDown):
		return m.run(func() { m.ctl.SetVideoContrast(-contrastStep, false) })
	case key.Matches(msg, k.contrastUp):
		return m.run(func() { m.ctl.SetVideoContrast(contrastStep, false) })
	}

	return nil
}

// run calls fn off the update loop, since player calls wait for the engine.
func (m *model) run(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

// resume seeks to the start position the first time playback begins.
func (m *model) resume(s player.State) tea.Cmd {
	if m.resumed || m.options.StartAt <= 0 || s != player.Playing {
		return nil
	}
	m.resumed = true

	return m.seek(m.options.StartAt, true)
}

// seek moves the position. The player pauses after every seek, so playback
// that was running is resumed once that pause is reported.
func (m *model) seek(value float64, absolute bool) tea.Cmd {
	m.unpause = m.unpause || m.state == player.Playing
	return m.run(func() { m.ctl.Seek(value, absolute) })
}

func (m *model) unpauseAfterSeek(s player.State) tea.Cmd {
	if s != player.Paused {
		m.unpause = m.unpause && s == player.Playing
		return nil
	}
	if !m.unpause {
		return nil
	}
	m.unpause = false

	return m.run(m.ctl.Pause)
}

func (m *model) exitError() error {
	if e, ok := m.fatal.Get(); ok {
		return fmt.Errorf("player exited: %s", e.Message)
	}
	return nil
}

func (m *model) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	m.width = width - x
	m.height = height - y
	m.progressC.Width = m.width
	m.helpC.Width = m.width
}
