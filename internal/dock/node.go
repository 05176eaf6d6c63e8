package dock

import (
	"errors"
	"fmt"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func parseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

// Node is one element of the dock tree: either a Split or a Tabs
// group. Leaves are single-panel Tabs groups.
type Node interface {
	validate() error
	snapshot() NodeState
	walkTabs(fn func(*Tabs))
}

// Split arranges child nodes along one axis. Sizes holds one optional
// cell size per child; nil means "share the remainder".
type Split struct {
	Axis     Axis
	Children []Node
	Sizes    []*int
}

// NewSplit builds a split node. The sizes sequence must match the
// children sequence in length.
func NewSplit(axis Axis, children []Node, sizes []*int) (*Split, error) {
	s := &Split{Axis: axis, Children: children, Sizes: sizes}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Split) validate() error {
	if len(s.Children) == 0 {
		return errors.New("split node has no children")
	}
	if len(s.Sizes) != len(s.Children) {
		return fmt.Errorf("split sizes length %d does not match children length %d", len(s.Sizes), len(s.Children))
	}
	for _, c := range s.Children {
		if c == nil {
			return errors.New("split node has nil child")
		}
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Split) snapshot() NodeState {
	children := make([]*NodeState, len(s.Children))
	for i, c := range s.Children {
		st := c.snapshot()
		children[i] = &st
	}
	return NodeState{
		Type:     nodeTypeSplit,
		Axis:     s.Axis.String(),
		Children: children,
		Sizes:    cloneSizes(s.Sizes),
	}
}

func (s *Split) walkTabs(fn func(*Tabs)) {
	for _, c := range s.Children {
		c.walkTabs(fn)
	}
}

// Tabs is an ordered group of panels with one active tab.
type Tabs struct {
	Panels []*PanelRef
	Active int
}

func NewTabs(panels ...*PanelRef) *Tabs {
	return &Tabs{Panels: panels}
}

func (t *Tabs) validate() error {
	if len(t.Panels) == 0 {
		return nil
	}
	if t.Active < 0 || t.Active >= len(t.Panels) {
		return fmt.Errorf("active tab index %d out of range for %d panels", t.Active, len(t.Panels))
	}
	return nil
}

func (t *Tabs) snapshot() NodeState {
	panels := make([]PanelState, len(t.Panels))
	for i, p := range t.Panels {
		panels[i] = p.snapshot()
	}
	return NodeState{Type: nodeTypeTabs, Panels: panels, Active: t.Active}
}

func (t *Tabs) walkTabs(fn func(*Tabs)) { fn(t) }

// ActivePanel returns the panel the active tab points at, or nil for
// an empty group.
func (t *Tabs) ActivePanel() *PanelRef {
	if len(t.Panels) == 0 {
		return nil
	}
	return t.Panels[t.Active]
}

// Cycle moves the active tab by delta, wrapping at both ends.
func (t *Tabs) Cycle(delta int) {
	if len(t.Panels) == 0 {
		return
	}
	n := len(t.Panels)
	t.Active = ((t.Active+delta)%n + n) % n
}

// RemoveActive drops the active panel from the group and clamps the
// active index. The removed ref is destroyed with its slot.
func (t *Tabs) RemoveActive() {
	if len(t.Panels) == 0 {
		return
	}
	t.Panels = append(t.Panels[:t.Active], t.Panels[t.Active+1:]...)
	if t.Active >= len(t.Panels) {
		t.Active = len(t.Panels) - 1
	}
	if t.Active < 0 {
		t.Active = 0
	}
}

// EdgeDock is one auxiliary dock region: an ordered panel list plus an
// optional cell size.
type EdgeDock struct {
	Panels []*PanelRef
	Size   *int
}

func (d *EdgeDock) snapshot() *DockState {
	if d == nil {
		return nil
	}
	panels := make([]PanelState, len(d.Panels))
	for i, p := range d.Panels {
		panels[i] = p.snapshot()
	}
	return &DockState{Panels: panels, Size: cloneSize(d.Size)}
}

func cloneSizes(sizes []*int) []*int {
	out := make([]*int, len(sizes))
	for i, s := range sizes {
		out[i] = cloneSize(s)
	}
	return out
}

func cloneSize(s *int) *int {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// IntPtr is a convenience for building size sequences.
func IntPtr(v int) *int { return &v }
