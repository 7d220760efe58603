package player

import (
	"errors"
	"time"

	"github.com/mpctl/mpctl/log"
)

var (
	// ErrStartFailed is wrapped by Start when the process could not be launched.
	ErrStartFailed = errors.New("player process not started")

	// ErrClosed is returned by Start after Close.
	ErrClosed = errors.New("player closed")

	errNotRunning = errors.New("process is not running")
)

// ErrorKind is the severity of a reported Error.
type ErrorKind int

const (
	NoError ErrorKind = iota
	Warning
	Fatal
	Unknown
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case Warning:
		return "warning"
	case Fatal:
		return "fatal"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Error is an aggregated error notification. Message joins every message of
// the same kind raised within one aggregation window with newlines.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// aggregator coalesces bursts of same-kind errors into one notification.
type aggregator struct {
	current Error
	open    bool
	window  time.Duration
	timers  *scheduler
	emit    func(Error)
}

func newAggregator(window time.Duration, timers *scheduler, emit func(Error)) aggregator {
	return aggregator{
		current: Error{Kind: NoError, Message: "No error"},
		window:  window,
		timers:  timers,
		emit:    emit,
	}
}

func (a *aggregator) raise(kind ErrorKind, msg string) {
	log.Warnf("player: %s: %s", kind, msg)

	if a.open && a.current.Kind != kind {
		a.flush()
	}

	if a.open {
		a.current.Message += "\n" + msg
	} else {
		a.current = Error{Kind: kind, Message: msg}
		a.open = true
	}

	a.timers.schedule(timerErrors, a.window, a.flush)
}

func (a *aggregator) flush() {
	a.timers.cancel(timerErrors)
	if !a.open {
		return
	}

	a.open = false
	if a.current.Kind != NoError {
		a.emit(a.current)
	}
}

// last returns the most recent aggregate, emitted or still open.
func (a *aggregator) last() Error {
	return a.current
}
