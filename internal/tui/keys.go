package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	NextGroup  key.Binding
	PrevGroup  key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	ClosePanel key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Picker     key.Binding
	Theme      key.Binding
	Locale     key.Binding
	LeftDock   key.Binding
	BottomDock key.Binding
	RightDock  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextGroup: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next group"),
		),
		PrevGroup: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev group"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev tab"),
		),
		ClosePanel: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "close panel"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow dock"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink dock"),
		),
		Picker: key.NewBinding(
			key.WithKeys("ctrl+p", "p"),
			key.WithHelp("p", "panels"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Locale: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "locale"),
		),
		LeftDock: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "left dock"),
		),
		BottomDock: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "bottom dock"),
		),
		RightDock: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "right dock"),
		),
	}
}

// footerBindings is the order help hints appear in the footer.
func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{
		k.NextGroup, k.NextTab, k.ClosePanel, k.Picker, k.Theme, k.Quit,
	}
}
