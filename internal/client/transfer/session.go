package transfer

import "sync"

// Snapshot is the observable state of a Session.
type Snapshot struct {
	Uploading bool
	Progress  int
}

// Session aggregates the in-flight state of one batch: a busy flag and the
// percentage of files completed. Both return to false/0 when the batch ends,
// whatever the outcome, so callers must use the result of CreateTransfer to
// tell success from failure.
type Session struct {
	mu    sync.Mutex
	state Snapshot

	// notifyMu serializes update+notify so observers see changes in order;
	// mu alone guards state so observers may call Snapshot.
	notifyMu  sync.Mutex
	observers []func(Snapshot)
}

func NewSession() *Session {
	return &Session{}
}

// OnChange registers fn to receive every state change.
func (s *Session) OnChange(fn func(Snapshot)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Uploading() bool { return s.Snapshot().Uploading }

func (s *Session) Progress() int { return s.Snapshot().Progress }

func (s *Session) begin() {
	s.update(func(st *Snapshot) bool {
		*st = Snapshot{Uploading: true}
		return true
	})
}

// complete records that done of total files finished. Progress never moves
// backwards while the batch runs.
func (s *Session) complete(done, total int) {
	p := Percent(done, total)
	s.update(func(st *Snapshot) bool {
		if !st.Uploading || p <= st.Progress {
			return false
		}
		st.Progress = p
		return true
	})
}

func (s *Session) reset() {
	s.update(func(st *Snapshot) bool {
		*st = Snapshot{}
		return true
	})
}

func (s *Session) update(fn func(*Snapshot) bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	changed := fn(&s.state)
	snap := s.state
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, o := range s.observers {
		o(snap)
	}
}

// Percent returns round(100*done/total), rounding halves up, clamped to
// 0..100.
func Percent(done, total int) int {
	if total <= 0 || done <= 0 {
		return 0
	}
	if done >= total {
		return 100
	}
	return (200*done + total) / (2 * total)
}
