package dock

import (
	"fmt"
	"sync"
)

// Side names one dock region of the area.
type Side int

const (
	SideMain Side = iota
	SideLeft
	SideRight
	SideBottom
)

// Area is the runtime container owning the full docking layout for one
// workspace window: a root node tree plus up to three auxiliary docks.
// All mutation runs on the interactive loop; the mutex only guards
// Dump against the save scheduler's worker goroutine.
type Area struct {
	mu       sync.RWMutex
	reg      *Registry
	rc       RenderContext
	version  int
	root     Node
	left     *EdgeDock
	right    *EdgeDock
	bottom   *EdgeDock
	hidden   map[Side]*EdgeDock
	onChange func()
}

func NewArea(reg *Registry, rc RenderContext, version int) *Area {
	return &Area{reg: reg, rc: rc, version: version, root: NewTabs(), hidden: map[Side]*EdgeDock{}}
}

// SetOnLayoutChanged installs the single change-notification hook.
// The hook carries no payload: consumers only learn "the tree changed".
func (a *Area) SetOnLayoutChanged(fn func()) { a.onChange = fn }

// mutate is the single mutation entry point. Every completed gesture
// funnels through here and emits exactly one LayoutChanged.
func (a *Area) mutate(fn func() bool) {
	a.mu.Lock()
	changed := fn()
	a.mu.Unlock()
	if changed && a.onChange != nil {
		a.onChange()
	}
}

func (a *Area) Version() int { return a.version }

func (a *Area) SetVersion(v int) {
	a.mu.Lock()
	a.version = v
	a.mu.Unlock()
}

func (a *Area) Root() Node { return a.root }

func (a *Area) Left() *EdgeDock   { return a.left }
func (a *Area) Right() *EdgeDock  { return a.right }
func (a *Area) Bottom() *EdgeDock { return a.bottom }

// SetRoot replaces the whole tree. Always succeeds; nodes are
// validated at construction.
func (a *Area) SetRoot(n Node) {
	a.mutate(func() bool {
		a.root = n
		return true
	})
}

func (a *Area) SetLeftDock(panels []*PanelRef, size *int) {
	a.mutate(func() bool {
		a.left = &EdgeDock{Panels: panels, Size: size}
		delete(a.hidden, SideLeft)
		return true
	})
}

func (a *Area) SetRightDock(panels []*PanelRef, size *int) {
	a.mutate(func() bool {
		a.right = &EdgeDock{Panels: panels, Size: size}
		delete(a.hidden, SideRight)
		return true
	})
}

func (a *Area) SetBottomDock(panels []*PanelRef, size *int) {
	a.mutate(func() bool {
		a.bottom = &EdgeDock{Panels: panels, Size: size}
		delete(a.hidden, SideBottom)
		return true
	})
}

// CycleTab advances the active tab of a group. One gesture, one
// LayoutChanged.
func (a *Area) CycleTab(t *Tabs, delta int) {
	a.mutate(func() bool {
		before := t.Active
		t.Cycle(delta)
		return t.Active != before
	})
}

// CloseActivePanel removes the active panel of a group and prunes any
// container the removal left empty.
func (a *Area) CloseActivePanel(t *Tabs) {
	a.mutate(func() bool {
		if len(t.Panels) == 0 {
			return false
		}
		t.RemoveActive()
		a.root = pruneNode(a.root)
		if a.root == nil {
			a.root = NewTabs()
		}
		return true
	})
}

// AppendPanel adds a panel to a tabs group and activates it.
func (a *Area) AppendPanel(t *Tabs, ref *PanelRef) {
	a.mutate(func() bool {
		t.Panels = append(t.Panels, ref)
		t.Active = len(t.Panels) - 1
		return true
	})
}

// ActivatePanel brings the first panel with the given key to the
// front of its tabs group. Returns false when no tree group holds it.
func (a *Area) ActivatePanel(key string) bool {
	found := false
	a.mutate(func() bool {
		for _, t := range a.TabGroups() {
			for i, ref := range t.Panels {
				if ref.Key() != key {
					continue
				}
				found = true
				if t.Active == i {
					return false
				}
				t.Active = i
				return true
			}
		}
		return false
	})
	return found
}

// ResizeDock grows or shrinks one auxiliary dock by delta cells.
func (a *Area) ResizeDock(side Side, delta int) {
	a.mutate(func() bool {
		var d *EdgeDock
		switch side {
		case SideLeft:
			d = a.left
		case SideRight:
			d = a.right
		case SideBottom:
			d = a.bottom
		}
		if d == nil || d.Size == nil {
			return false
		}
		next := *d.Size + delta
		if next < 4 {
			next = 4
		}
		if next == *d.Size {
			return false
		}
		d.Size = &next
		return true
	})
}

// ToggleDock hides a visible dock or restores the one last hidden on
// that side. The stash is session-only: a hidden dock is absent from
// snapshots, so only visible docks persist.
func (a *Area) ToggleDock(side Side) {
	a.mutate(func() bool {
		var cur **EdgeDock
		switch side {
		case SideLeft:
			cur = &a.left
		case SideRight:
			cur = &a.right
		case SideBottom:
			cur = &a.bottom
		default:
			return false
		}
		if *cur != nil {
			a.hidden[side] = *cur
			*cur = nil
			return true
		}
		if d := a.hidden[side]; d != nil {
			*cur = d
			delete(a.hidden, side)
			return true
		}
		return false
	})
}

// TabGroups returns every tabs group of the main tree in depth-first
// order.
func (a *Area) TabGroups() []*Tabs {
	var out []*Tabs
	if a.root != nil {
		a.root.walkTabs(func(t *Tabs) { out = append(out, t) })
	}
	return out
}

// Panels returns every live panel ref in the area, tree first, then
// left, right, bottom docks.
func (a *Area) Panels() []*PanelRef {
	var out []*PanelRef
	for _, t := range a.TabGroups() {
		out = append(out, t.Panels...)
	}
	for _, d := range []*EdgeDock{a.left, a.right, a.bottom} {
		if d != nil {
			out = append(out, d.Panels...)
		}
	}
	return out
}

// Dump takes a consistent point-in-time snapshot of the area. Never
// fails. Safe to call from the save scheduler's goroutine.
func (a *Area) Dump() *State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	root := a.root.snapshot()
	return &State{
		Version: a.version,
		Root:    &root,
		Left:    a.left.snapshot(),
		Right:   a.right.snapshot(),
		Bottom:  a.bottom.snapshot(),
	}
}

// Load reconstructs the area from a snapshot, resolving every panel
// key through the registry. All-or-nothing: the replacement tree is
// built fully off to the side and only swapped in when every key
// resolves, so a failed load leaves the area exactly as it was.
func (a *Area) Load(st *State) error {
	return a.load(st, false)
}

// LoadTolerant is the startup variant: panel keys no longer present in
// the registry are silently dropped instead of failing the load, and
// containers emptied by the drops are pruned. Fails only when nothing
// survives.
func (a *Area) LoadTolerant(st *State) error {
	return a.load(st, true)
}

func (a *Area) load(st *State, tolerant bool) error {
	if st == nil || st.Root == nil {
		return fmt.Errorf("load layout: empty state")
	}
	root, err := a.buildNode(st.Root, tolerant)
	if err != nil {
		return err
	}
	if tolerant {
		root = pruneNode(root)
	}
	if root == nil {
		return fmt.Errorf("load layout: no panels survived resolution")
	}
	if err := root.validate(); err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	left, err := a.buildDock(st.Left, tolerant)
	if err != nil {
		return err
	}
	right, err := a.buildDock(st.Right, tolerant)
	if err != nil {
		return err
	}
	bottom, err := a.buildDock(st.Bottom, tolerant)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.version = st.Version
	a.root = root
	a.left = left
	a.right = right
	a.bottom = bottom
	a.hidden = map[Side]*EdgeDock{}
	a.mu.Unlock()
	return nil
}

func (a *Area) buildNode(st *NodeState, tolerant bool) (Node, error) {
	switch st.Type {
	case nodeTypeSplit:
		if len(st.Sizes) != len(st.Children) {
			return nil, fmt.Errorf("load layout: split sizes length %d does not match children length %d", len(st.Sizes), len(st.Children))
		}
		axis, err := parseAxis(st.Axis)
		if err != nil {
			return nil, fmt.Errorf("load layout: %w", err)
		}
		children := make([]Node, 0, len(st.Children))
		sizes := make([]*int, 0, len(st.Sizes))
		for i, c := range st.Children {
			child, err := a.buildNode(c, tolerant)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			sizes = append(sizes, cloneSize(st.Sizes[i]))
		}
		return &Split{Axis: axis, Children: children, Sizes: sizes}, nil
	case nodeTypeTabs:
		panels, err := a.buildPanels(st.Panels, tolerant)
		if err != nil {
			return nil, err
		}
		active := st.Active
		if active >= len(panels) {
			active = len(panels) - 1
		}
		if active < 0 {
			active = 0
		}
		return &Tabs{Panels: panels, Active: active}, nil
	default:
		return nil, fmt.Errorf("load layout: unknown node type %q", st.Type)
	}
}

func (a *Area) buildDock(st *DockState, tolerant bool) (*EdgeDock, error) {
	if st == nil {
		return nil, nil
	}
	panels, err := a.buildPanels(st.Panels, tolerant)
	if err != nil {
		return nil, err
	}
	if tolerant && len(panels) == 0 {
		return nil, nil
	}
	return &EdgeDock{Panels: panels, Size: cloneSize(st.Size)}, nil
}

func (a *Area) buildPanels(states []PanelState, tolerant bool) ([]*PanelRef, error) {
	panels := make([]*PanelRef, 0, len(states))
	for _, ps := range states {
		ref, err := a.reg.Create(ps.Key, a.rc)
		if err != nil {
			if tolerant {
				continue
			}
			return nil, err
		}
		ref.params = ps.Params
		panels = append(panels, ref)
	}
	return panels, nil
}

// pruneNode removes empty tabs groups and collapses splits left with a
// single child. Returns nil when nothing remains.
func pruneNode(n Node) Node {
	switch node := n.(type) {
	case *Split:
		children := make([]Node, 0, len(node.Children))
		sizes := make([]*int, 0, len(node.Sizes))
		for i, c := range node.Children {
			if kept := pruneNode(c); kept != nil {
				children = append(children, kept)
				sizes = append(sizes, node.Sizes[i])
			}
		}
		if len(children) == 0 {
			return nil
		}
		if len(children) == 1 {
			return children[0]
		}
		return &Split{Axis: node.Axis, Children: children, Sizes: sizes}
	case *Tabs:
		if len(node.Panels) == 0 {
			return nil
		}
		return node
	default:
		return nil
	}
}
