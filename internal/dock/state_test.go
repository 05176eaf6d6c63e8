package dock

import (
	"strings"
	"testing"
)

const sampleLayout = `{
  "version": 5,
  "root": {
    "type": "split",
    "axis": "vertical",
    "children": [
      {"type": "tabs", "panels": [{"panel_key": "button"}, {"panel_key": "input"}], "active_index": 1}
    ],
    "sizes": [null]
  },
  "left": {"panels": [{"panel_key": "list"}], "size": 35},
  "bottom": {"panels": [{"panel_key": "tooltip"}, {"panel_key": "icon"}], "size": 8}
}`

func TestDecodeStateEnvelope(t *testing.T) {
	st, err := DecodeState([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Version != 5 {
		t.Fatalf("version = %d, want 5", st.Version)
	}
	if st.Root.Type != "split" || st.Root.Axis != "vertical" {
		t.Fatalf("root = %q/%q, want split/vertical", st.Root.Type, st.Root.Axis)
	}
	if len(st.Root.Children) != 1 || st.Root.Children[0].Active != 1 {
		t.Fatalf("tabs group should keep active_index 1")
	}
	if st.Left == nil || st.Left.Size == nil || *st.Left.Size != 35 {
		t.Fatalf("left dock size should decode")
	}
	if st.Right != nil {
		t.Fatalf("absent dock should stay nil")
	}
	if got := st.Bottom.Panels[1].Key; got != "icon" {
		t.Fatalf("bottom panel key = %q, want icon", got)
	}
}

func TestDecodeStateIgnoresUnknownFields(t *testing.T) {
	doc := strings.Replace(sampleLayout, `"version": 5,`, `"version": 5, "future_field": {"x": 1},`, 1)
	st, err := DecodeState([]byte(doc))
	if err != nil {
		t.Fatalf("unknown fields must be ignored: %v", err)
	}
	if st.Version != 5 {
		t.Fatalf("version = %d, want 5", st.Version)
	}
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	if _, err := DecodeState([]byte("not json")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := DecodeState([]byte(`{"version": 5}`)); err == nil {
		t.Fatalf("expected missing root to be rejected")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	st, err := DecodeState([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, err := st.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := DecodeState(data)
	if err != nil {
		t.Fatalf("decode round trip: %v", err)
	}
	if !st.Equal(again) {
		t.Fatalf("round trip should be structurally equal")
	}
}

func TestStateEqualIsStructural(t *testing.T) {
	a, _ := DecodeState([]byte(sampleLayout))
	b, _ := DecodeState([]byte(sampleLayout))
	if !a.Equal(b) {
		t.Fatalf("identical documents should compare equal")
	}
	b.Version = 4
	if a.Equal(b) {
		t.Fatalf("differing version should compare unequal")
	}
	var nilState *State
	if a.Equal(nilState) || !nilState.Equal(nil) {
		t.Fatalf("nil comparison semantics broken")
	}
}
