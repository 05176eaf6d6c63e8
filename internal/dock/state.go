package dock

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	nodeTypeSplit = "split"
	nodeTypeTabs  = "tabs"
)

// State is the versioned, serializable snapshot of a dock area. Pure
// data: panel identity is a key plus parameters, never a live
// instance. Field names are stable across versions so old files stay
// parseable even when the version differs.
type State struct {
	Version int        `json:"version"`
	Root    *NodeState `json:"root"`
	Left    *DockState `json:"left,omitempty"`
	Right   *DockState `json:"right,omitempty"`
	Bottom  *DockState `json:"bottom,omitempty"`
}

// NodeState is the flat encoding of one dock node, discriminated by
// Type. Split nodes carry axis/children/sizes; tabs nodes carry
// panels/active_index.
type NodeState struct {
	Type     string       `json:"type"`
	Axis     string       `json:"axis,omitempty"`
	Children []*NodeState `json:"children,omitempty"`
	Sizes    []*int       `json:"sizes,omitempty"`
	Panels   []PanelState `json:"panels,omitempty"`
	Active   int          `json:"active_index,omitempty"`
}

// PanelState identifies one panel by key plus opaque parameters.
type PanelState struct {
	Key    string         `json:"panel_key"`
	Params map[string]any `json:"params,omitempty"`
}

// DockState is the encoding of one auxiliary dock region.
type DockState struct {
	Panels []PanelState `json:"panels"`
	Size   *int         `json:"size,omitempty"`
}

// Encode renders the state as the on-disk JSON document.
func (s *State) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout state: %w", err)
	}
	return data, nil
}

// DecodeState parses an on-disk layout document. Unknown fields are
// ignored for forward compatibility.
func DecodeState(data []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode layout state: %w", err)
	}
	if s.Root == nil {
		return nil, fmt.Errorf("decode layout state: missing root node")
	}
	return &s, nil
}

// Equal reports structural equality of two snapshots via their
// serialized forms. Used by the save scheduler to skip no-op writes.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	a, err := json.Marshal(s)
	if err != nil {
		return false
	}
	b, err := json.Marshal(o)
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}
