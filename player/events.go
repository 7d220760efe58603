package player

const eventBufferSize = 32

// StateChange is sent on every accepted state transition.
type StateChange struct {
	Old State
	New State
}

// Subscription receives player events on buffered channels. Events are
// dropped when a buffer is full, so a slow reader never stalls playback.
// Done is closed on Unsubscribe and on Close.
type Subscription struct {
	StateChanged     <-chan StateChange
	MediaInfoChanged <-chan MediaInfo
	Tick             <-chan float64
	Error            <-chan Error
	Finished         <-chan struct{}
	Done             <-chan struct{}

	stateCh    chan StateChange
	mediaCh    chan MediaInfo
	tickCh     chan float64
	errorCh    chan Error
	finishedCh chan struct{}
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		mediaCh:    make(chan MediaInfo, eventBufferSize),
		tickCh:     make(chan float64, eventBufferSize),
		errorCh:    make(chan Error, eventBufferSize),
		finishedCh: make(chan struct{}, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.MediaInfoChanged = s.mediaCh
	s.Tick = s.tickCh
	s.Error = s.errorCh
	s.Finished = s.finishedCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func send[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
	}
}

// hub fans events out to the current subscribers. Loop-owned.
type hub struct {
	subs []*Subscription
}

func (h *hub) add(s *Subscription) {
	h.subs = append(h.subs, s)
}

func (h *hub) remove(s *Subscription) bool {
	for i, sub := range h.subs {
		if sub == s {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			s.close()
			return true
		}
	}
	return false
}

func (h *hub) closeAll() {
	for _, s := range h.subs {
		s.close()
	}
	h.subs = nil
}

func (h *hub) state(e StateChange) {
	for _, s := range h.subs {
		send(s.stateCh, e)
	}
}

func (h *hub) mediaInfo(info MediaInfo) {
	for _, s := range h.subs {
		send(s.mediaCh, info)
	}
}

func (h *hub) tick(pos float64) {
	for _, s := range h.subs {
		send(s.tickCh, pos)
	}
}

func (h *hub) error(e Error) {
	for _, s := range h.subs {
		send(s.errorCh, e)
	}
}

func (h *hub) finished() {
	for _, s := range h.subs {
		send(s.finishedCh, struct{}{})
	}
}
