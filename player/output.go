package player

import "github.com/mpctl/mpctl/log"

func (p *Player) handleLine(stream Stream, line string) {
	log.Debugf("player %s: %s", stream, line)

	if stream == Stderr {
		p.handleStderr(ClassifyStderr(line))
		return
	}

	event := Classify(line)
	switch event.Kind {
	case Ignorable:
	case BufferingNotice:
		p.sm.set(Buffering)
	case PlaybackStarted:
		p.playbackStarted()
	case FatalNotice:
		p.errs.raise(Fatal, event.Line)
		p.sm.set(Stopped)
	case MediaInfoField:
		p.parser.parse(p.info, event.Line)
	case PositionUpdate:
		p.positionUpdate(event.Line)
	case ProcessExiting:
		p.sm.set(NotStarted)
	case ErrorCandidate:
		p.errs.raise(Unknown, event.Line)
	}
}

func (p *Player) handleStderr(event OutputEvent) {
	if event.Kind == SeekFailed {
		p.errs.raise(Fatal, "seek failed")
		p.sm.set(Idle)
		return
	}
	p.errs.raise(Unknown, event.Line)
}

func (p *Player) playbackStarted() {
	p.info.Valid = true
	p.events.mediaInfo(p.info.snapshot())
	p.params.commit(slotSeek, 0)
	p.events.tick(0)
	p.eos.reset()
	p.sm.set(Playing)
}

func (p *Player) positionUpdate(line string) {
	pos, ok := parsePosition(line)
	if !ok {
		return
	}

	// Refilling the cache mid-stream ends with the position moving again.
	if p.sm.current == Buffering && p.info.Valid {
		p.sm.set(Playing)
	}

	st := p.sm.current
	if st != Playing && st != Paused && st != Stopped {
		return
	}

	verdict := p.eos.observe(st, p.params.value(slotSeek), pos, p.info.Length)
	if verdict.nudge {
		p.write("seek -1 0")
	}

	if verdict.changed {
		p.params.commit(slotSeek, pos)
		p.events.tick(pos)
	}

	if !verdict.knownEnd {
		return
	}

	if verdict.nearEnd {
		if !p.timers.armed(timerFinish) {
			p.timers.schedule(timerFinish, p.cfg.FinishDelay, p.finishPlayback)
		}
	} else {
		p.timers.cancel(timerFinish)
	}
}

func (p *Player) finishPlayback() {
	p.sm.set(Idle)
	p.events.finished()
}
