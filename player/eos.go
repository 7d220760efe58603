package player

// endOfStream tracks the last reported position to spot the end of the media
// and a stalled player.
type endOfStream struct {
	threshold  float64
	stallLimit int
	stalls     int
}

type positionVerdict struct {
	changed  bool
	nudge    bool
	nearEnd  bool
	knownEnd bool
}

// observe judges a position update against the previous position.
func (e *endOfStream) observe(state State, previous, pos, length float64) positionVerdict {
	var v positionVerdict

	if state == Paused {
		e.stalls = 0
	}

	if length > 0 {
		v.knownEnd = true
		v.nearEnd = length-pos <= e.threshold
	}

	if fuzzyEqual(previous, pos) {
		if state == Playing {
			e.stalls++
			if e.stalls >= e.stallLimit {
				e.stalls = 0
				v.nudge = true
			}
		}
		return v
	}

	e.stalls = 0
	v.changed = true
	return v
}

func (e *endOfStream) reset() {
	e.stalls = 0
}
