package dock

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	asked   int
	message string
	options []string
	answer  chan int
}

func newFakePrompter() *fakePrompter {
	return &fakePrompter{answer: make(chan int, 1)}
}

func (p *fakePrompter) Confirm(level PromptLevel, message string, options []string) <-chan int {
	p.asked++
	p.message = message
	p.options = options
	return p.answer
}

type migrateFixture struct {
	reg      *Registry
	area     *Area
	store    *Store
	sched    *Scheduler
	prompt   *fakePrompter
	migrator *Migrator
}

func newMigrateFixture(t *testing.T) *migrateFixture {
	t.Helper()
	reg := stubRegistry(sampleKeys()...)
	area := NewArea(reg, nil, ExpectedVersion)
	store := NewStore(filepath.Join(t.TempDir(), "layout.json"))
	sched := NewScheduler(time.Hour, area.Dump, store.Save)
	prompt := newFakePrompter()
	applyDefault := func(a *Area) {
		a.SetRoot(NewTabs(mustCreate(t, reg, "button"), mustCreate(t, reg, "input")))
		a.SetLeftDock([]*PanelRef{mustCreate(t, reg, "list")}, IntPtr(35))
	}
	return &migrateFixture{
		reg:      reg,
		area:     area,
		store:    store,
		sched:    sched,
		prompt:   prompt,
		migrator: NewMigrator(area, store, sched, prompt, applyDefault),
	}
}

func staleState(version int) *State {
	return &State{
		Version: version,
		Root:    &NodeState{Type: "tabs", Panels: []PanelState{{Key: "text"}}},
	}
}

func TestMissingFileBootstrapsDefault(t *testing.T) {
	fx := newMigrateFixture(t)
	pending := fx.migrator.Startup()
	require.Nil(t, pending, "no prompt on a missing file")
	assert.Equal(t, PhaseResettingToDefault, fx.migrator.Phase())
	assert.Equal(t, 0, fx.prompt.asked)

	// The default layout must be live and freshly persisted with the
	// expected version.
	saved, err := fx.store.Load()
	require.NoError(t, err)
	assert.Equal(t, ExpectedVersion, saved.Version)
	assert.True(t, saved.Equal(fx.area.Dump()))
}

func TestCorruptFileBootstrapsDefault(t *testing.T) {
	fx := newMigrateFixture(t)
	require.NoError(t, os.WriteFile(fx.store.Path(), []byte("{nope"), 0o600))
	pending := fx.migrator.Startup()
	require.Nil(t, pending)
	assert.Equal(t, PhaseResettingToDefault, fx.migrator.Phase())
	saved, err := fx.store.Load()
	require.NoError(t, err)
	assert.Equal(t, ExpectedVersion, saved.Version)
}

func TestMatchingVersionLoadsWithoutPrompt(t *testing.T) {
	fx := newMigrateFixture(t)
	require.NoError(t, fx.store.Save(staleState(ExpectedVersion)))
	pending := fx.migrator.Startup()
	require.Nil(t, pending)
	assert.Equal(t, PhaseLoaded, fx.migrator.Phase())
	assert.Equal(t, 0, fx.prompt.asked)
	assert.Equal(t, "text", fx.area.Panels()[0].Key())
}

func TestVersionMismatchResetOnAccept(t *testing.T) {
	fx := newMigrateFixture(t)
	require.NoError(t, fx.store.Save(staleState(3)))

	pending := fx.migrator.Startup()
	require.NotNil(t, pending, "mismatch must issue the prompt")
	assert.Equal(t, PhaseAwaitingConfirmation, fx.migrator.Phase())
	assert.Equal(t, []string{"Yes", "No"}, fx.prompt.options)

	// The stale layout stays live while the prompt is outstanding.
	assert.Equal(t, 3, fx.area.Version())
	assert.Equal(t, "text", fx.area.Panels()[0].Key())

	fx.migrator.Resolve(0)
	assert.Equal(t, PhaseResettingToDefault, fx.migrator.Phase())
	assert.Equal(t, ExpectedVersion, fx.area.Version())

	saved, err := fx.store.Load()
	require.NoError(t, err)
	assert.Equal(t, ExpectedVersion, saved.Version)
	assert.True(t, saved.Equal(fx.area.Dump()), "reset layout must be persisted immediately")
}

func TestVersionMismatchKeptStaleOnDecline(t *testing.T) {
	fx := newMigrateFixture(t)
	require.NoError(t, fx.store.Save(staleState(3)))

	require.NotNil(t, fx.migrator.Startup())
	fx.migrator.Resolve(1)
	assert.Equal(t, PhaseKeptStale, fx.migrator.Phase())
	assert.Equal(t, 3, fx.area.Version(), "declined reset keeps the stale layout live")

	// Nothing was re-persisted: the file still carries version 3.
	saved, err := fx.store.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, saved.Version)
}

func TestResolveIsOneShot(t *testing.T) {
	fx := newMigrateFixture(t)
	require.NoError(t, fx.store.Save(staleState(3)))
	require.NotNil(t, fx.migrator.Startup())

	fx.migrator.Resolve(1)
	require.Equal(t, PhaseKeptStale, fx.migrator.Phase())
	fx.migrator.Resolve(0)
	assert.Equal(t, PhaseKeptStale, fx.migrator.Phase(), "a second answer must be ignored")
	assert.Equal(t, 3, fx.area.Version())
}

func TestStartupDropsRetiredPanelsWhenKeptStale(t *testing.T) {
	fx := newMigrateFixture(t)
	st := staleState(3)
	st.Root.Panels = append(st.Root.Panels, PanelState{Key: "retired"})
	require.NoError(t, fx.store.Save(st))

	require.NotNil(t, fx.migrator.Startup())
	fx.migrator.Resolve(1)

	keys := make([]string, 0, 1)
	for _, ref := range fx.area.Panels() {
		keys = append(keys, ref.Key())
	}
	assert.Equal(t, []string{"text"}, keys, "retired keys are dropped, not fatal")
}
