package dock

import (
	"log/slog"
)

// ExpectedVersion is the layout version this build writes. Bump it
// when the built-in default layout changes shape.
const ExpectedVersion = 5

// PromptLevel classifies a confirmation dialog.
type PromptLevel int

const (
	PromptInfo PromptLevel = iota
	PromptWarning
)

// Prompter is the host-provided confirmation dialog. Confirm returns a
// channel that eventually delivers the index of the chosen option; the
// host feeds that index back through Migrator.Resolve on the
// interactive thread.
type Prompter interface {
	Confirm(level PromptLevel, message string, options []string) <-chan int
}

// Phase tracks the one-shot migration state machine.
type Phase int

const (
	PhaseLoaded Phase = iota
	PhaseAwaitingConfirmation
	PhaseResettingToDefault
	PhaseKeptStale
)

// Migrator drives the startup layout load and the user-confirmed
// reset when the persisted version is outdated. All transitions are
// one-shot per process lifetime.
type Migrator struct {
	area         *Area
	store        *Store
	sched        *Scheduler
	prompt       Prompter
	applyDefault func(*Area)
	phase        Phase
}

// NewMigrator wires the migration flow. applyDefault rebuilds the
// built-in default layout onto the area (stamping ExpectedVersion).
func NewMigrator(area *Area, store *Store, sched *Scheduler, prompt Prompter, applyDefault func(*Area)) *Migrator {
	return &Migrator{area: area, store: store, sched: sched, prompt: prompt, applyDefault: applyDefault}
}

func (m *Migrator) Phase() Phase { return m.phase }

// Startup loads the persisted layout. Read or parse failures bypass
// the state machine and rebuild the default immediately. A version
// mismatch keeps the stale layout live, issues the async prompt, and
// returns the pending answer channel; the caller must deliver the
// chosen index to Resolve. Returns nil when no confirmation is needed.
func (m *Migrator) Startup() <-chan int {
	st, err := m.store.Load()
	if err != nil {
		slog.Info("layout unavailable, building default", "error", err)
		m.reset()
		return nil
	}
	if err := m.area.LoadTolerant(st); err != nil {
		slog.Warn("layout load failed, building default", "error", err)
		m.reset()
		return nil
	}
	if st.Version == ExpectedVersion {
		m.phase = PhaseLoaded
		return nil
	}

	// Stale version: keep rendering the loaded layout while the
	// prompt is outstanding.
	m.phase = PhaseAwaitingConfirmation
	slog.Info("layout version mismatch", "have", st.Version, "want", ExpectedVersion)
	return m.prompt.Confirm(PromptInfo,
		"The default main layout has been updated.\nDo you want to reset the layout to default?",
		[]string{"Yes", "No"})
}

// Resolve consumes the prompt answer. Option 0 rebuilds and persists
// the default layout; anything else (including dismissal) keeps the
// stale layout. One-shot: later calls are ignored.
func (m *Migrator) Resolve(choice int) {
	if m.phase != PhaseAwaitingConfirmation {
		return
	}
	if choice != 0 {
		m.phase = PhaseKeptStale
		return
	}
	m.reset()
}

func (m *Migrator) reset() {
	m.phase = PhaseResettingToDefault
	m.applyDefault(m.area)
	m.area.SetVersion(ExpectedVersion)
	if err := m.sched.SaveNow(); err != nil {
		slog.Warn("default layout save failed", "error", err)
	}
}
