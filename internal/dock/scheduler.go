package dock

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultSaveDelay is the quiet period after the last layout edit
// before the scheduler writes to disk.
const DefaultSaveDelay = 10 * time.Second

// Scheduler debounces layout writes. Every LayoutChanged restarts the
// delay timer; a burst of edits produces at most one write, issued
// after the last edit in the burst. At most one timer is ever pending:
// storing a new one cancels the old (cancel-by-replace).
type Scheduler struct {
	mu    sync.Mutex
	delay time.Duration
	dump  func() *State
	save  func(*State) error
	timer *time.Timer
	last  *State
}

// NewScheduler wires a scheduler to a snapshot source and a sink.
// dump must be safe to call from the scheduler's worker goroutine.
func NewScheduler(delay time.Duration, dump func() *State, save func(*State) error) *Scheduler {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	return &Scheduler{delay: delay, dump: dump, save: save}
}

// LayoutChanged (re)starts the debounce timer.
func (s *Scheduler) LayoutChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.expire)
}

// expire runs on the timer goroutine: snapshot, dedupe, persist.
func (s *Scheduler) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveIfChanged()
}

// saveIfChanged skips the write when the snapshot matches the last
// successful save. A write failure is reported and dropped; the next
// LayoutChanged simply tries again.
func (s *Scheduler) saveIfChanged() {
	state := s.dump()
	if state.Equal(s.last) {
		return
	}
	if err := s.save(state); err != nil {
		slog.Warn("layout save failed", "error", err)
		return
	}
	s.last = state
}

// Flush performs the shutdown write: cancel any pending timer, then
// dump and persist unconditionally. The one place a save failure is
// surfaced to the caller.
func (s *Scheduler) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	state := s.dump()
	if err := s.save(state); err != nil {
		return err
	}
	s.last = state
	return nil
}

// SaveNow persists the current snapshot immediately, bypassing the
// debounce. Used when the default layout is rebuilt after a version
// migration.
func (s *Scheduler) SaveNow() error {
	return s.Flush()
}
