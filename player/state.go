package player

import (
	"github.com/mpctl/mpctl/log"
	"github.com/samber/lo"
)

// State is the playback state of a Player.
type State int

const (
	NotStarted State = iota - 1
	Idle
	Loading
	Buffering
	Playing
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Buffering:
		return "buffering"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "invalid"
	}
}

// transitions lists the states each state may be entered from.
// A nil entry accepts every state.
var transitions = map[State][]State{
	NotStarted: nil,
	Idle:       nil,
	Loading:    {Idle},
	Buffering:  {Idle, Loading, Buffering, Playing, Paused, Stopped},
	Playing:    {Loading, Buffering, Paused, Stopped},
	Paused:     {Playing},
	Stopped:    {Idle, Loading, Buffering, Playing, Paused},
}

func canTransition(from, to State) bool {
	allowed, ok := transitions[to]
	if !ok {
		return false
	}
	return allowed == nil || lo.Contains(allowed, from)
}

// stateMachine holds the authoritative playback state.
type stateMachine struct {
	current  State
	onChange func(from, to State)
}

// set moves to the given state and reports whether a transition happened.
// Self transitions and transitions outside the table are ignored.
func (m *stateMachine) set(to State) bool {
	if to == m.current {
		return false
	}

	if !canTransition(m.current, to) {
		log.Debugf("player: ignoring transition %s -> %s", m.current, to)
		return false
	}

	old := m.current
	m.current = to
	if m.onChange != nil {
		m.onChange(old, to)
	}
	return true
}
