// Package tui is the interactive shell: the workspace controller that
// owns the dock area, routes key gestures into layout mutations, hosts
// the version-migration prompt, and renders the whole arrangement.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dockyard/internal/config"
	"github.com/jask/dockyard/internal/dock"
	"github.com/jask/dockyard/internal/panels"
)

// migrationAnswerMsg carries the index the user chose in the
// version-migration prompt back onto the interactive loop.
type migrationAnswerMsg int

// Workspace is the top-level bubbletea model. It owns one dock area,
// wires its change notifications into the save scheduler, and performs
// the startup load before the program starts.
type Workspace struct {
	cfg    config.Config
	ctx    *panels.Context
	reg    *dock.Registry
	area   *dock.Area
	store  *dock.Store
	sched  *dock.Scheduler
	mig    *dock.Migrator
	prompt *promptState
	answer <-chan int

	keys   keyMap
	styles styles
	picker *pickerState

	width     int
	height    int
	focus     int
	status    string
	statusErr bool
}

// New builds the fully wired workspace and runs the startup load. The
// returned model is ready to hand to tea.NewProgram.
func New(cfg config.Config) Workspace {
	theme := panels.NewTheme(panels.ThemeMode(cfg.UI.Theme))
	ctx := panels.NewContext(theme, cfg.UI.Locale)

	reg := dock.NewRegistry()
	panels.RegisterAll(reg)

	area := dock.NewArea(reg, ctx, dock.ExpectedVersion)
	store := dock.NewStore(cfg.LayoutPath())
	sched := dock.NewScheduler(time.Duration(cfg.State.DebounceSeconds)*time.Second, area.Dump, store.Save)
	area.SetOnLayoutChanged(sched.LayoutChanged)

	prompt := &promptState{}
	mig := dock.NewMigrator(area, store, sched, prompt, panels.DefaultLayout(reg, ctx))

	w := Workspace{
		cfg:    cfg,
		ctx:    ctx,
		reg:    reg,
		area:   area,
		store:  store,
		sched:  sched,
		mig:    mig,
		prompt: prompt,
		keys:   defaultKeyMap(),
		styles: newStyles(theme),
		status: "Ready",
		width:  100,
		height: 32,
	}
	w.answer = mig.Startup()
	return w
}

// Scheduler exposes the save scheduler so main can run the shutdown
// flush after the program exits.
func (w Workspace) Scheduler() *dock.Scheduler { return w.sched }

func (w Workspace) Area() *dock.Area { return w.area }

func (w Workspace) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 8)
	if w.answer != nil {
		cmds = append(cmds, awaitAnswer(w.answer))
	}
	for _, ref := range w.area.Panels() {
		if cmd := ref.Panel().Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func awaitAnswer(ch <-chan int) tea.Cmd {
	return func() tea.Msg {
		idx, ok := <-ch
		if !ok {
			return nil
		}
		return migrationAnswerMsg(idx)
	}
}

func (w Workspace) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case migrationAnswerMsg:
		w.mig.Resolve(int(msg))
		w.prompt.pending = false
		if w.mig.Phase() == dock.PhaseResettingToDefault {
			w.setStatus("Layout reset to default")
		} else {
			w.setStatus("Keeping saved layout")
		}
		return w, nil

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	// Everything else (blink ticks and friends) goes to the panel
	// that currently has focus.
	if ref := w.focusedPanel(); ref != nil {
		return w, ref.Panel().Update(msg)
	}
	return w, nil
}

func (w Workspace) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if w.prompt.pending {
		return w.handlePromptKey(msg)
	}
	if w.picker != nil {
		return w.handlePickerKey(msg)
	}

	// A panel that is actively editing text gets first claim on
	// printable keys. Only chorded gestures stay global.
	if ref := w.focusedPanel(); ref != nil && isEditing(ref.Panel()) {
		switch msg.String() {
		case "ctrl+c":
			return w, tea.Quit
		case "tab":
			w.moveFocus(1)
			return w, nil
		case "shift+tab":
			w.moveFocus(-1)
			return w, nil
		case "ctrl+p":
			w.picker = newPickerState(w.reg.Keys())
			return w, nil
		default:
			return w, ref.Panel().Update(msg)
		}
	}

	switch {
	case key.Matches(msg, w.keys.Quit):
		return w, tea.Quit

	case key.Matches(msg, w.keys.NextGroup):
		w.moveFocus(1)
		return w, nil

	case key.Matches(msg, w.keys.PrevGroup):
		w.moveFocus(-1)
		return w, nil

	case key.Matches(msg, w.keys.NextTab):
		if t := w.focusedTabs(); t != nil {
			w.area.CycleTab(t, 1)
		}
		return w, nil

	case key.Matches(msg, w.keys.PrevTab):
		if t := w.focusedTabs(); t != nil {
			w.area.CycleTab(t, -1)
		}
		return w, nil

	case key.Matches(msg, w.keys.ClosePanel):
		if t := w.focusedTabs(); t != nil {
			title := ""
			if ref := t.ActivePanel(); ref != nil {
				title = ref.Panel().Title()
			}
			w.area.CloseActivePanel(t)
			w.setStatus("Closed panel: " + title)
			w.clampFocus()
		}
		return w, nil

	case key.Matches(msg, w.keys.Grow):
		if side := w.focusedSide(); side != dock.SideMain {
			w.area.ResizeDock(side, 2)
		}
		return w, nil

	case key.Matches(msg, w.keys.Shrink):
		if side := w.focusedSide(); side != dock.SideMain {
			w.area.ResizeDock(side, -2)
		}
		return w, nil

	case key.Matches(msg, w.keys.Picker):
		w.picker = newPickerState(w.reg.Keys())
		return w, nil

	case key.Matches(msg, w.keys.LeftDock):
		w.area.ToggleDock(dock.SideLeft)
		w.clampFocus()
		return w, nil

	case key.Matches(msg, w.keys.BottomDock):
		w.area.ToggleDock(dock.SideBottom)
		w.clampFocus()
		return w, nil

	case key.Matches(msg, w.keys.RightDock):
		w.area.ToggleDock(dock.SideRight)
		w.clampFocus()
		return w, nil

	case key.Matches(msg, w.keys.Theme):
		w.ctx.Theme = w.ctx.Theme.Toggle()
		w.styles = newStyles(w.ctx.Theme)
		w.cfg.UI.Theme = string(w.ctx.Theme.Mode)
		w.persistPrefs()
		w.setStatus("Theme: " + string(w.ctx.Theme.Mode))
		return w, nil

	case key.Matches(msg, w.keys.Locale):
		w.ctx.Locale = nextLocale(w.ctx.Locale)
		w.cfg.UI.Locale = w.ctx.Locale
		w.persistPrefs()
		w.setStatus("Locale: " + w.ctx.Locale)
		return w, nil
	}

	if ref := w.focusedPanel(); ref != nil {
		return w, ref.Panel().Update(msg)
	}
	return w, nil
}

func (w Workspace) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab":
		w.prompt.cursor = 1 - w.prompt.cursor
	case "y":
		w.prompt.deliver(0)
	case "n", "esc":
		w.prompt.deliver(1)
	case "enter":
		w.prompt.deliver(w.prompt.cursor)
	}
	return w, nil
}

func (w Workspace) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		w.picker = nil
		return w, nil
	case "enter":
		choice := w.picker.choice()
		w.picker = nil
		if choice == "" {
			return w, nil
		}
		return w.activatePanel(choice)
	case "up":
		w.picker.move(-1)
		return w, nil
	case "down":
		w.picker.move(1)
		return w, nil
	case "backspace":
		w.picker.backspace()
		return w, nil
	}
	if msg.Type == tea.KeyRunes {
		w.picker.typeRunes(msg.Runes)
	}
	return w, nil
}

// activatePanel brings an existing panel to the front, or creates it
// into the focused tabs group when the tree has no instance yet.
func (w Workspace) activatePanel(panelKey string) (tea.Model, tea.Cmd) {
	if w.area.ActivatePanel(panelKey) {
		w.focusGroupWithKey(panelKey)
		w.setStatus("Switched to panel: " + panelKey)
		return w, nil
	}
	t := w.focusedTabs()
	if t == nil {
		groups := w.area.TabGroups()
		if len(groups) == 0 {
			return w, nil
		}
		t = groups[0]
	}
	ref, err := w.reg.Create(panelKey, w.ctx)
	if err != nil {
		slog.Warn("panel activation failed", "key", panelKey, "error", err)
		w.setError("Unknown panel: " + panelKey)
		return w, nil
	}
	w.area.AppendPanel(t, ref)
	w.setStatus("Opened panel: " + panelKey)
	return w, ref.Panel().Init()
}

func (w *Workspace) persistPrefs() {
	if err := config.Save(w.cfg); err != nil {
		slog.Warn("config save failed", "error", err)
	}
}

func (w *Workspace) setStatus(s string) {
	w.status = s
	w.statusErr = false
}

func (w *Workspace) setError(s string) {
	w.status = s
	w.statusErr = true
}

// isEditing reports whether a panel is currently consuming printable
// keys, such as a focused text input.
func isEditing(p dock.Panel) bool {
	ed, ok := p.(interface{ Editing() bool })
	return ok && ed.Editing()
}

func nextLocale(current string) string {
	locales := panels.Locales()
	for i, l := range locales {
		if l == current {
			return locales[(i+1)%len(locales)]
		}
	}
	return locales[0]
}

// promptState implements dock.Prompter. Confirm records the dialog
// content for rendering and hands back the answer channel; the modal
// key handler delivers the choice, and awaitAnswer turns it into a
// message that reaches Migrator.Resolve on the interactive loop.
type promptState struct {
	pending bool
	message string
	options []string
	cursor  int
	answer  chan int
}

func (p *promptState) Confirm(level dock.PromptLevel, message string, options []string) <-chan int {
	p.pending = true
	p.message = message
	p.options = options
	p.cursor = 0
	p.answer = make(chan int, 1)
	return p.answer
}

func (p *promptState) deliver(choice int) {
	if p.answer == nil {
		return
	}
	p.answer <- choice
	p.answer = nil
}
