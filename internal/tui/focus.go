package tui

import "github.com/jask/dockyard/internal/dock"

// focusTarget is one stop on the focus ring: either a tabs group in
// the main tree or one of the edge docks.
type focusTarget struct {
	tabs *dock.Tabs
	edge *dock.EdgeDock
	side dock.Side
}

// targets rebuilds the focus ring from the current layout. Main tabs
// groups come first in tree order, then left, bottom, right docks.
func (w *Workspace) targets() []focusTarget {
	out := make([]focusTarget, 0, 8)
	for _, t := range w.area.TabGroups() {
		out = append(out, focusTarget{tabs: t, side: dock.SideMain})
	}
	if d := w.area.Left(); d != nil {
		out = append(out, focusTarget{edge: d, side: dock.SideLeft})
	}
	if d := w.area.Bottom(); d != nil {
		out = append(out, focusTarget{edge: d, side: dock.SideBottom})
	}
	if d := w.area.Right(); d != nil {
		out = append(out, focusTarget{edge: d, side: dock.SideRight})
	}
	return out
}

func (w *Workspace) clampFocus() {
	n := len(w.targets())
	if n == 0 {
		w.focus = 0
		return
	}
	if w.focus >= n {
		w.focus = n - 1
	}
	if w.focus < 0 {
		w.focus = 0
	}
}

func (w *Workspace) moveFocus(delta int) {
	ts := w.targets()
	if len(ts) == 0 {
		return
	}
	w.focus = ((w.focus+delta)%len(ts) + len(ts)) % len(ts)
}

func (w *Workspace) focusedTarget() *focusTarget {
	ts := w.targets()
	if len(ts) == 0 {
		return nil
	}
	if w.focus < 0 || w.focus >= len(ts) {
		w.focus = 0
	}
	t := ts[w.focus]
	return &t
}

// focusedTabs returns the focused tabs group, or nil when an edge dock
// has focus.
func (w *Workspace) focusedTabs() *dock.Tabs {
	if t := w.focusedTarget(); t != nil {
		return t.tabs
	}
	return nil
}

func (w *Workspace) focusedSide() dock.Side {
	if t := w.focusedTarget(); t != nil {
		return t.side
	}
	return dock.SideMain
}

// focusedPanel resolves the panel that should receive forwarded input:
// the active tab of a focused group, or the first panel of a focused
// edge dock.
func (w *Workspace) focusedPanel() *dock.PanelRef {
	t := w.focusedTarget()
	if t == nil {
		return nil
	}
	if t.tabs != nil {
		return t.tabs.ActivePanel()
	}
	if t.edge != nil && len(t.edge.Panels) > 0 {
		return t.edge.Panels[0]
	}
	return nil
}

// focusGroupWithKey points the focus ring at the tabs group holding
// the given panel key, if any.
func (w *Workspace) focusGroupWithKey(key string) {
	for i, t := range w.targets() {
		if t.tabs == nil {
			continue
		}
		for _, ref := range t.tabs.Panels {
			if ref.Key() == key {
				w.focus = i
				return
			}
		}
	}
}
