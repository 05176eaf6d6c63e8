package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// pickerState is the fuzzy panel picker overlay. Matches are ranked by
// rankPanels on every keystroke; enter activates the highlighted key.
type pickerState struct {
	all     []string
	query   string
	cursor  int
	matches []string
}

func newPickerState(keys []string) *pickerState {
	p := &pickerState{all: keys}
	p.refresh()
	return p
}

func (p *pickerState) refresh() {
	p.matches = rankPanels(p.query, p.all)
	if p.cursor >= len(p.matches) {
		p.cursor = len(p.matches) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *pickerState) typeRunes(runes []rune) {
	p.query += string(runes)
	p.cursor = 0
	p.refresh()
}

func (p *pickerState) backspace() {
	if p.query == "" {
		return
	}
	r := []rune(p.query)
	p.query = string(r[:len(r)-1])
	p.cursor = 0
	p.refresh()
}

func (p *pickerState) move(delta int) {
	if len(p.matches) == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%len(p.matches) + len(p.matches)) % len(p.matches)
}

func (p *pickerState) choice() string {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return ""
	}
	return p.matches[p.cursor]
}

// rankPanels orders keys for a query: substring hits first, earlier
// and shorter matches winning, then the rest by edit distance. An
// empty query yields the keys sorted.
func rankPanels(query string, keys []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := append([]string(nil), keys...)
		sort.Strings(out)
		return out
	}

	type scored struct {
		key   string
		score int
	}
	subs := make([]scored, 0, len(keys))
	rest := make([]scored, 0, len(keys))
	for _, k := range keys {
		lower := strings.ToLower(k)
		if idx := strings.Index(lower, q); idx >= 0 {
			subs = append(subs, scored{key: k, score: idx*100 + len(k)})
			continue
		}
		rest = append(rest, scored{key: k, score: levenshtein.ComputeDistance(q, lower)})
	}
	rank := func(s []scored) {
		sort.Slice(s, func(i, j int) bool {
			if s[i].score != s[j].score {
				return s[i].score < s[j].score
			}
			return s[i].key < s[j].key
		})
	}
	rank(subs)
	rank(rest)

	out := make([]string, 0, len(keys))
	for _, s := range subs {
		out = append(out, s.key)
	}
	for _, s := range rest {
		out = append(out, s.key)
	}
	return out
}
