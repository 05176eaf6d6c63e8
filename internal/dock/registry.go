package dock

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ErrUnknownPanel is returned by Registry.Create when no factory is
// registered for the requested key.
var ErrUnknownPanel = errors.New("unknown panel key")

// PanelResolutionError reports the first panel key that could not be
// resolved while reconstructing a layout.
type PanelResolutionError struct {
	Key string
}

func (e *PanelResolutionError) Error() string {
	return fmt.Sprintf("resolve panel %q: unknown panel key", e.Key)
}

func (e *PanelResolutionError) Unwrap() error { return ErrUnknownPanel }

// Panel is a live panel instance hosted by the workspace. Key is the
// stable identity written into layout snapshots.
type Panel interface {
	Key() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, focused bool) string
}

// RenderContext is the host-provided presentation context handed to
// panel factories. The docking core never inspects it.
type RenderContext interface{}

// Factory constructs a live panel instance from a rendering context.
type Factory func(rc RenderContext) Panel

// Registry maps stable panel keys to factories. Registration happens
// once at startup, before any layout load.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates key with factory. Re-registering a key replaces
// the prior factory.
func (r *Registry) Register(key string, factory Factory) {
	if _, exists := r.factories[key]; exists {
		slog.Debug("panel factory replaced", "key", key)
	}
	r.factories[key] = factory
}

// Keys returns every registered panel key, in no particular order.
func (r *Registry) Keys() []string {
	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	return out
}

// Create builds a new panel instance for key. Callers must treat a
// resolution failure as recoverable: drop the panel, not the workspace.
func (r *Registry) Create(key string, rc RenderContext) (*PanelRef, error) {
	factory, ok := r.factories[key]
	if !ok {
		return nil, &PanelResolutionError{Key: key}
	}
	return &PanelRef{id: uuid.NewString(), panel: factory(rc)}, nil
}

// PanelRef is an owned handle to one live panel instance. A ref lives
// in exactly one node at a time and dies with it.
type PanelRef struct {
	id     string
	panel  Panel
	params map[string]any
}

// ID is the per-instance identifier, unique across live panels even
// when they share a key.
func (p *PanelRef) ID() string { return p.id }

func (p *PanelRef) Key() string { return p.panel.Key() }

func (p *PanelRef) Panel() Panel { return p.panel }

// Params returns the opaque parameters carried through layout round
// trips. Nil for panels that persist nothing beyond their key.
func (p *PanelRef) Params() map[string]any { return p.params }

func (p *PanelRef) snapshot() PanelState {
	return PanelState{Key: p.panel.Key(), Params: p.params}
}
