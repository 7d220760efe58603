package player

import "time"

type timerKey int

const (
	timerParameter timerKey = iota
	timerErrors
	timerFinish
	timerLoad
)

type pendingTimer struct {
	timer *time.Timer
	gen   uint64
}

// scheduler runs single-shot callbacks on the player loop. Rescheduling a
// key replaces the previous timer; a callback whose timer was cancelled or
// replaced after it fired is discarded.
type scheduler struct {
	post    func(func()) bool
	pending map[timerKey]pendingTimer
	gen     uint64
}

func newScheduler(post func(func()) bool) *scheduler {
	return &scheduler{
		post:    post,
		pending: make(map[timerKey]pendingTimer),
	}
}

func (s *scheduler) schedule(key timerKey, d time.Duration, fn func()) {
	s.cancel(key)

	s.gen++
	gen := s.gen
	t := time.AfterFunc(d, func() {
		s.post(func() {
			current, ok := s.pending[key]
			if !ok || current.gen != gen {
				return
			}
			delete(s.pending, key)
			fn()
		})
	})

	s.pending[key] = pendingTimer{timer: t, gen: gen}
}

func (s *scheduler) armed(key timerKey) bool {
	_, ok := s.pending[key]
	return ok
}

func (s *scheduler) cancel(key timerKey) {
	if current, ok := s.pending[key]; ok {
		current.timer.Stop()
		delete(s.pending, key)
	}
}

func (s *scheduler) cancelAll() {
	for key := range s.pending {
		s.cancel(key)
	}
}
