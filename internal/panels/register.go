package panels

import (
	"github.com/jask/dockyard/internal/dock"
)

// Keys lists every gallery panel key in default-tab order.
func Keys() []string {
	return []string{
		"button", "input", "dropdown", "text", "modal", "popup",
		"switch", "progress", "table", "image", "icon", "tooltip",
		"calendar", "resizable", "scrollable", "accordion", "list",
	}
}

// RegisterAll installs a factory for every gallery panel. Called once
// at startup, before any layout load.
func RegisterAll(reg *dock.Registry) {
	reg.Register("input", func(rc dock.RenderContext) dock.Panel {
		return newInputStory(ctxOf(rc))
	})
	reg.Register("table", func(rc dock.RenderContext) dock.Panel {
		return newTableStory(ctxOf(rc))
	})
	reg.Register("list", func(rc dock.RenderContext) dock.Panel {
		return newListStory(ctxOf(rc))
	})
	reg.Register("progress", func(rc dock.RenderContext) dock.Panel {
		return newProgressStory(ctxOf(rc))
	})
	for key, body := range staticBodies {
		k, b := key, body
		reg.Register(k, func(rc dock.RenderContext) dock.Panel {
			return newStaticStory(ctxOf(rc), k, b)
		})
	}
}

func ctxOf(rc dock.RenderContext) *Context {
	if ctx, ok := rc.(*Context); ok {
		return ctx
	}
	return NewContext(NewTheme(ModeDark), "en")
}

var staticBodies = map[string]string{
	"button":     "[ Primary ]  [ Secondary ]  [ Ghost ]\n\nPress styles for every button variant.",
	"dropdown":   "Fruit: apple ▾\n\n  apple\n  banana\n  cherry",
	"text":       "Body text, emphasis and captions.\n\nThe quick brown fox jumps over the lazy dog.",
	"modal":      "Modals block the workspace until dismissed.\n\n[ Open modal ]",
	"popup":      "Popups anchor to a trigger element.\n\n[ Open popup ▾ ]",
	"switch":     "Notifications  (on)\nAuto-save      (on)\nTelemetry      (off)",
	"image":      "  ▄▄▄▄▄▄▄▄\n ▐ ascii  ▌\n ▐  art   ▌\n  ▀▀▀▀▀▀▀▀\n256x256 placeholder",
	"icon":       "✓ ✗ ★ ☆ ⚑ ⚙ ⌂ ⌫ ↑ ↓ → ←",
	"tooltip":    "Hover targets show contextual hints.\n\n[ Save ]  — writes the current document",
	"calendar":   "   February 2026\nMo Tu We Th Fr Sa Su\n                   1\n 2  3  4  5  6  7  8\n 9 10 11 12 13 14 15",
	"resizable":  "Drag the shared border between panes\nto redistribute space.",
	"scrollable": "Line 1\nLine 2\nLine 3\nLine 4\nLine 5\nLine 6\nLine 7\n...",
	"accordion":  "▸ Section one\n▾ Section two\n    Expanded content lives here.\n▸ Section three",
}

// DefaultLayout returns a builder for the built-in arrangement: one
// tabs group of every story across the root, with list, tooltip+icon
// and image panels in the left, bottom and right docks.
func DefaultLayout(reg *dock.Registry, rc dock.RenderContext) func(*dock.Area) {
	return func(a *dock.Area) {
		tabs := dock.NewTabs(createAll(reg, rc, Keys()...)...)
		root, err := dock.NewSplit(dock.Vertical, []dock.Node{tabs}, []*int{nil})
		if err != nil {
			// Static shape; cannot fail.
			panic(err)
		}
		a.SetRoot(root)
		a.SetLeftDock(createAll(reg, rc, "list"), dock.IntPtr(35))
		a.SetBottomDock(createAll(reg, rc, "tooltip", "icon"), dock.IntPtr(8))
		a.SetRightDock(createAll(reg, rc, "image"), dock.IntPtr(32))
	}
}

func createAll(reg *dock.Registry, rc dock.RenderContext, keys ...string) []*dock.PanelRef {
	out := make([]*dock.PanelRef, 0, len(keys))
	for _, key := range keys {
		ref, err := reg.Create(key, rc)
		if err != nil {
			// A missing builtin is a programming error, but the
			// workspace must not die for it: drop the panel.
			continue
		}
		out = append(out, ref)
	}
	return out
}
