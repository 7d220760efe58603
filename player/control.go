package player

import (
	"errors"
	"strings"

	"github.com/samber/mo"
)

// started raises a Fatal error and reports false before Start.
func (p *Player) started() bool {
	if p.sm.current == NotStarted {
		p.errs.raise(Fatal, "call Start first")
		return false
	}
	return true
}

func (p *Player) nearEnd(action string) bool {
	if p.timers.armed(timerFinish) {
		p.errs.raise(Warning, "near the end, "+action+" not permitted now")
		return true
	}
	return false
}

// play loads url, or the current media when url is empty. Playing the
// loaded media again resumes it.
func (p *Player) play(url string) {
	if !p.started() {
		return
	}

	if url != "" {
		clean, err := validateMediaTarget(url)
		if err != nil {
			p.errs.raise(Warning, "invalid media target: "+err.Error())
			return
		}
		url = clean
	}

	if url != "" && url != p.info.URL {
		p.write("stop")
		p.timers.cancel(timerFinish)
		p.timers.cancel(timerLoad)
		p.awaitSeek = mo.None[float64]()
		p.sm.set(Idle)
		p.info.URL = url
	} else {
		switch p.sm.current {
		case Paused, Stopped:
			p.pause()
			return
		case Playing, Loading, Buffering:
			return
		}
	}

	target := p.info.URL
	if target == "" {
		p.errs.raise(Warning, "no media selected")
		return
	}

	p.info = newMediaInfo(target)
	p.parser.reset()
	p.events.mediaInfo(p.info.snapshot())
	p.params.commit(slotSeek, 0)
	p.events.tick(0)
	p.eos.reset()

	p.sm.set(Loading)
	p.write(loadCommand(target))
}

// pause toggles between Playing and Paused. From Idle it starts playback,
// from Stopped it resumes.
func (p *Player) pause() {
	if !p.started() {
		return
	}

	if p.sm.current == Idle {
		p.play("")
		return
	}

	if p.nearEnd("pause") {
		return
	}

	switch p.sm.current {
	case Playing:
		p.write("pause")
		p.sm.set(Paused)
	case Paused, Stopped:
		p.write("pause")
		p.sm.set(Playing)
	}
}

// stop rewinds to the start and leaves the player paused there.
func (p *Player) stop() {
	if !p.started() || p.nearEnd("stop") {
		return
	}

	if st := p.sm.current; st != Playing && st != Paused {
		return
	}

	if pending, ok := p.params.pending.Get(); ok {
		if pending.slot == slotSeek {
			p.params.take()
			p.timers.cancel(timerParameter)
		} else {
			p.flushParameter()
		}
	}

	needPause := p.sm.current == Playing
	if p.info.Seekable && !fuzzyEqual(p.params.value(slotSeek), 0) {
		cmd, _ := serialize(slotSeek, 0, p.info.Length)
		p.write(cmd)
		needPause = true
	}
	if needPause {
		p.write("pause")
	}

	p.params.commit(slotSeek, 0)
	p.events.tick(0)
	p.sm.set(Stopped)
}

func (p *Player) seek(value float64, absolute bool) {
	if p.nearEnd("seek") {
		return
	}
	p.request(slotSeek, value, absolute)
}

// request records a parameter change and restarts the quiescence timer.
// A pending change of another parameter is sent first.
func (p *Player) request(s slot, value float64, absolute bool) {
	if !p.started() {
		return
	}

	if p.params.pendingOther(s) {
		p.flushParameter()
	}

	p.params.accumulate(s, value, absolute)
	p.timers.schedule(timerParameter, p.cfg.ParameterDelay, p.flushParameter)
}

func (p *Player) flushParameter() {
	p.timers.cancel(timerParameter)

	pending, ok := p.params.take()
	if !ok {
		return
	}

	if pending.slot == slotSeek {
		if p.sm.current == Idle {
			p.seekAfterLoad(pending.value)
		} else {
			p.sendSeek(pending.value)
		}
		return
	}

	cmd, value := serialize(pending.slot, pending.value, p.info.Length)
	if p.params.unchanged(pending.slot, value) {
		return
	}

	p.params.commit(pending.slot, value)
	p.write(cmd)
	p.applyWhilePaused()
}

// seekAfterLoad loads the current media and sends the seek once loading
// is over.
func (p *Player) seekAfterLoad(value float64) {
	p.play("")

	if st := p.sm.current; st != Loading && st != Buffering {
		p.resumeSeek(value)
		return
	}

	p.awaitSeek = mo.Some(value)
	p.timers.schedule(timerLoad, p.cfg.LoadTimeout, func() {
		p.awaitSeek = mo.None[float64]()
		p.errs.raise(Warning, "media did not load in time, seek dropped")
	})
}

func (p *Player) resumeSeek(value float64) {
	if p.sm.current == Playing {
		p.pause()
	}
	p.sendSeek(value)
}

func (p *Player) sendSeek(value float64) {
	if st := p.sm.current; st != Playing && st != Paused && st != Stopped {
		p.errs.raise(Warning, "invalid state for seek")
		return
	}

	if !p.info.Seekable {
		p.errs.raise(Warning, "media is not seekable")
		return
	}

	cmd, value := serialize(slotSeek, value, p.info.Length)
	if p.params.unchanged(slotSeek, value) {
		return
	}

	p.write(cmd)

	// The process resumes on every command, so a seek always ends paused.
	p.sm.set(Playing)
	p.pause()
}

// applyWhilePaused briefly resumes a paused or stopped player. Any command
// unpauses the process, so the state is marked Playing and paused again.
func (p *Player) applyWhilePaused() {
	if st := p.sm.current; st == Paused || st == Stopped {
		p.sm.set(Playing)
		p.pause()
	}
}

// validateMediaTarget rejects targets that would break the loadfile command.
func validateMediaTarget(target string) (string, error) {
	t := strings.TrimSpace(target)
	if t == "" {
		return "", errors.New("empty target")
	}

	if strings.ContainsAny(t, "\x00\n\r") {
		return "", errors.New("control characters in target")
	}

	if strings.Contains(t, "'") && strings.Contains(t, `"`) {
		return "", errors.New("target contains both quote characters")
	}

	return t, nil
}

func loadCommand(target string) string {
	if strings.Contains(target, "'") {
		return `loadfile "` + target + `"`
	}
	return "loadfile '" + target + "'"
}
