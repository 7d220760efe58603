// Package player drives an MPlayer process in slave mode.
//
// A Player owns one long-lived player process. Commands go to the process
// stdin one per line; its stdout and stderr are split into lines, classified
// and folded into a playback state, media information, a position and
// coalesced error notifications, all published through Subscriptions.
//
// Every Player runs a single goroutine that owns its state. Public methods,
// timer expirations and process output are handed to that goroutine as
// closures, so none of the state is ever touched concurrently.
package player

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/mpctl/mpctl/log"
	"github.com/samber/mo"
)

const opsBufferSize = 256

// Player controls one player process.
type Player struct {
	cfg   Config
	spawn func() process

	ops       chan func()
	quit      chan struct{}
	loopDone  chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once

	// lifecycle serializes Start, StopProcess and Close.
	lifecycle sync.Mutex

	// Owned by the loop goroutine.
	sm        stateMachine
	info      *MediaInfo
	parser    mediaInfoParser
	params    coalescer
	errs      aggregator
	timers    *scheduler
	events    hub
	eos       endOfStream
	proc      process
	gen       uint64
	stopping  bool
	binary    string
	awaitSeek mo.Option[float64]
	deferred  []func()
}

// New returns a Player in the NotStarted state. Call Start to launch the
// process and Close to release the Player.
func New(cfg Config) *Player {
	cfg = cfg.withDefaults()

	p := &Player{
		cfg:       cfg,
		spawn:     func() process { return new(ProcessHandle) },
		ops:       make(chan func(), opsBufferSize),
		quit:      make(chan struct{}),
		loopDone:  make(chan struct{}),
		info:      newMediaInfo(""),
		params:    newCoalescer(),
		binary:    cfg.BinaryPath,
		awaitSeek: mo.None[float64](),
		eos: endOfStream{
			threshold:  cfg.EndThreshold,
			stallLimit: cfg.StallLimit,
		},
	}
	p.parser.reset()
	p.timers = newScheduler(p.post)
	p.errs = newAggregator(cfg.ErrorWindow, p.timers, p.events.error)
	p.sm = stateMachine{current: NotStarted, onChange: p.stateChanged}

	go p.loop()
	return p
}

func (p *Player) loop() {
	defer close(p.loopDone)

	for {
		select {
		case <-p.quit:
			return
		case fn := <-p.ops:
			fn()
			p.runDeferred()
		}
	}
}

// runDeferred runs work queued by state changes once the current operation
// has finished.
func (p *Player) runDeferred() {
	for len(p.deferred) > 0 {
		fn := p.deferred[0]
		p.deferred = p.deferred[1:]
		fn()
	}
}

// post queues fn on the loop. It reports false once the Player is closed.
func (p *Player) post(fn func()) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.ops <- fn:
		return true
	case <-p.quit:
		return false
	}
}

// do runs fn on the loop and waits for it.
func (p *Player) do(fn func()) bool {
	done := make(chan struct{})
	if !p.post(func() {
		defer close(done)
		fn()
	}) {
		return false
	}

	select {
	case <-done:
		return true
	case <-p.loopDone:
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}

// query runs fn on the loop and returns its result, or fallback once closed.
func query[T any](p *Player, fallback T, fn func() T) T {
	v := fallback
	p.do(func() { v = fn() })
	return v
}

// playerSink feeds process output into the loop. Output of a process that
// has since been replaced is dropped.
type playerSink struct {
	p   *Player
	gen uint64
}

func (s playerSink) Line(stream Stream, line string) {
	s.p.post(func() {
		if s.gen == s.p.gen {
			s.p.handleLine(stream, line)
		}
	})
}

func (s playerSink) Exit(status ExitStatus) {
	s.p.post(func() {
		if s.gen == s.p.gen {
			s.p.processFinished(status)
		}
	})
}

// Start launches the player process, stopping a running one first. The
// Player is Idle once Start returns nil.
func (p *Player) Start(ctx context.Context, opts StartOptions) error {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	if p.closed.Load() {
		return ErrClosed
	}
	p.stopProcess()

	var (
		proc   process
		gen    uint64
		binary string
		args   []string
	)
	if !p.do(func() {
		p.gen++
		gen = p.gen
		proc = p.spawn()
		p.proc = proc
		p.stopping = false
		binary = p.binary
		args = buildArgs(p.cfg, videoDefaults{
			brightness: p.params.value(slotBrightness),
			contrast:   p.params.value(slotContrast),
			hue:        p.params.value(slotHue),
			saturation: p.params.value(slotSaturation),
		}, opts)
	}) {
		return ErrClosed
	}

	log.Infof("player: starting %s %v", binary, args)

	startCtx, cancel := context.WithTimeout(ctx, p.cfg.StartTimeout)
	defer cancel()

	if err := proc.Start(startCtx, binary, args, playerSink{p: p, gen: gen}); err != nil {
		p.do(func() {
			if p.gen == gen {
				p.proc = nil
			}
			p.errs.raise(Fatal, "process not started: "+err.Error())
		})
		return fmt.Errorf("%w: %v", ErrStartFailed, err)
	}

	p.do(func() {
		if p.gen != gen || !proc.Running() {
			return
		}
		p.sm.set(Idle)
		p.request(slotAudioVolume, 100, true)
	})
	return nil
}

// StopProcess quits the player process and reports whether it exited on its
// own within the stop timeout. It returns true when nothing was running.
func (p *Player) StopProcess() bool {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	return p.stopProcess()
}

func (p *Player) stopProcess() bool {
	var proc process
	p.do(func() {
		if p.proc == nil || !p.proc.Running() {
			return
		}
		proc = p.proc
		p.stopping = true
		p.sm.set(Stopped)
	})

	if proc == nil {
		return true
	}
	return proc.Stop(p.cfg.StopTimeout)
}

// Close stops the process, cancels pending timers, closes every
// Subscription and ends the loop. The Player is unusable afterwards.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		p.lifecycle.Lock()
		p.closed.Store(true)
		p.stopProcess()
		p.lifecycle.Unlock()

		p.do(func() {
			p.timers.cancelAll()
			p.events.closeAll()
		})

		close(p.quit)
		<-p.loopDone
	})
	return nil
}

// Subscribe registers a new Subscription. After Close it returns an
// already finished one.
func (p *Player) Subscribe() *Subscription {
	s := newSubscription()
	if !p.do(func() { p.events.add(s) }) {
		s.close()
	}
	return s
}

// Unsubscribe removes s and closes its Done channel.
func (p *Player) Unsubscribe(s *Subscription) {
	p.do(func() { p.events.remove(s) })
}

func (p *Player) stateChanged(from, to State) {
	log.Infof("player: state %s -> %s", from, to)
	p.events.state(StateChange{Old: from, New: to})

	if to == Paused {
		p.eos.reset()
	}

	if v, ok := p.awaitSeek.Get(); ok && to != Loading && to != Buffering {
		p.awaitSeek = mo.None[float64]()
		p.timers.cancel(timerLoad)
		p.deferred = append(p.deferred, func() { p.resumeSeek(v) })
	}
}

func (p *Player) write(cmd string) {
	if p.proc == nil {
		log.Warnf("player: dropping %q, no process", cmd)
		return
	}

	log.Debugf("player stdin: %s", cmd)
	if err := p.proc.Write(cmd); err != nil {
		log.Warnf("player: write %q: %v", cmd, err)
	}
}

func (p *Player) processFinished(status ExitStatus) {
	p.timers.cancel(timerFinish)
	p.timers.cancel(timerLoad)
	p.timers.cancel(timerParameter)
	p.params.take()
	p.awaitSeek = mo.None[float64]()

	if status.Crashed && !p.stopping {
		p.errs.raise(Fatal, "process crashed")
	}

	if st := p.sm.current; st == Playing || st == Paused {
		p.errs.raise(Warning, "playback interrupted")
		p.sm.set(Stopped)
	}

	p.sm.set(NotStarted)
	p.proc = nil
	p.stopping = false
}
