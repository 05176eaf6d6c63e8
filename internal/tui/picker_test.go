package tui

import (
	"reflect"
	"testing"
)

func TestRankPanelsEmptyQuerySorts(t *testing.T) {
	got := rankPanels("", []string{"table", "button", "icon"})
	want := []string{"button", "icon", "table"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rankPanels(\"\") = %v, want %v", got, want)
	}
}

func TestRankPanelsSubstringWins(t *testing.T) {
	got := rankPanels("too", []string{"button", "table", "tooltip"})
	if got[0] != "tooltip" {
		t.Fatalf("expected tooltip first, got %v", got)
	}
	if len(got) != 3 {
		t.Fatalf("ranking must keep every key, got %v", got)
	}
}

func TestRankPanelsPrefersEarlierMatch(t *testing.T) {
	got := rankPanels("n", []string{"button", "input"})
	if got[0] != "input" {
		t.Fatalf("earlier substring position should rank higher, got %v", got)
	}
}

func TestRankPanelsFallsBackToEditDistance(t *testing.T) {
	got := rankPanels("mdal", []string{"image", "modal"})
	if got[0] != "modal" {
		t.Fatalf("closer edit distance should rank higher, got %v", got)
	}
}

func TestRankPanelsIsCaseInsensitive(t *testing.T) {
	got := rankPanels("TAB", []string{"icon", "table"})
	if got[0] != "table" {
		t.Fatalf("matching should ignore case, got %v", got)
	}
}

func TestPickerStateEditing(t *testing.T) {
	p := newPickerState([]string{"button", "input", "table"})
	if p.choice() != "button" {
		t.Fatalf("initial choice = %q, want button", p.choice())
	}

	p.typeRunes([]rune("tab"))
	if p.choice() != "table" {
		t.Fatalf("after typing: choice = %q, want table", p.choice())
	}

	p.backspace()
	p.backspace()
	p.backspace()
	if p.query != "" {
		t.Fatalf("backspace should clear query, got %q", p.query)
	}
	p.backspace() // no-op on empty query

	p.move(-1)
	if p.choice() != "table" {
		t.Fatalf("cursor should wrap backwards, got %q", p.choice())
	}
	p.move(1)
	if p.choice() != "button" {
		t.Fatalf("cursor should wrap forwards, got %q", p.choice())
	}
}
