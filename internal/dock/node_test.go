package dock

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubPanel struct {
	key   string
	title string
}

func (p stubPanel) Key() string   { return p.key }
func (p stubPanel) Title() string { return p.title }
func (p stubPanel) Init() tea.Cmd { return nil }
func (p stubPanel) Update(msg tea.Msg) tea.Cmd {
	return nil
}
func (p stubPanel) View(width, height int, focused bool) string {
	return p.title
}

func stubRegistry(keys ...string) *Registry {
	reg := NewRegistry()
	for _, k := range keys {
		key := k
		reg.Register(key, func(rc RenderContext) Panel {
			return stubPanel{key: key, title: "Panel " + key}
		})
	}
	return reg
}

func mustCreate(t *testing.T, reg *Registry, key string) *PanelRef {
	t.Helper()
	ref, err := reg.Create(key, nil)
	if err != nil {
		t.Fatalf("create %q: %v", key, err)
	}
	return ref
}

func TestNewSplitRejectsMismatchedSizes(t *testing.T) {
	reg := stubRegistry("a", "b")
	children := []Node{
		NewTabs(mustCreate(t, reg, "a")),
		NewTabs(mustCreate(t, reg, "b")),
	}
	if _, err := NewSplit(Horizontal, children, []*int{IntPtr(20)}); err == nil {
		t.Fatalf("expected mismatched sizes to be rejected")
	}
	if _, err := NewSplit(Horizontal, children, []*int{IntPtr(20), nil}); err != nil {
		t.Fatalf("matched sizes should construct: %v", err)
	}
}

func TestNewSplitRejectsEmptyChildren(t *testing.T) {
	if _, err := NewSplit(Vertical, nil, nil); err == nil {
		t.Fatalf("expected empty split to be rejected")
	}
}

func TestTabsCycleWraps(t *testing.T) {
	reg := stubRegistry("a", "b", "c")
	tabs := NewTabs(mustCreate(t, reg, "a"), mustCreate(t, reg, "b"), mustCreate(t, reg, "c"))
	tabs.Cycle(1)
	if tabs.Active != 1 {
		t.Fatalf("active = %d, want 1", tabs.Active)
	}
	tabs.Cycle(-2)
	if tabs.Active != 2 {
		t.Fatalf("active should wrap backwards, got %d", tabs.Active)
	}
	tabs.Cycle(1)
	if tabs.Active != 0 {
		t.Fatalf("active should wrap forwards, got %d", tabs.Active)
	}
}

func TestTabsRemoveActiveClampsIndex(t *testing.T) {
	reg := stubRegistry("a", "b")
	tabs := NewTabs(mustCreate(t, reg, "a"), mustCreate(t, reg, "b"))
	tabs.Active = 1
	tabs.RemoveActive()
	if len(tabs.Panels) != 1 || tabs.Active != 0 {
		t.Fatalf("panels = %d active = %d, want 1 and 0", len(tabs.Panels), tabs.Active)
	}
	if tabs.ActivePanel().Key() != "a" {
		t.Fatalf("remaining panel = %q, want a", tabs.ActivePanel().Key())
	}
	tabs.RemoveActive()
	if tabs.ActivePanel() != nil {
		t.Fatalf("empty group should have no active panel")
	}
}

func TestPanelRefInstanceIDsAreUnique(t *testing.T) {
	reg := stubRegistry("a")
	one := mustCreate(t, reg, "a")
	two := mustCreate(t, reg, "a")
	if one.ID() == two.ID() {
		t.Fatalf("two instances of the same key must have distinct ids")
	}
}
