package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// staticStory renders fixed demo content. Most gallery entries need
// nothing more.
type staticStory struct {
	key     string
	content string
	ctx     *Context
}

func newStaticStory(ctx *Context, key, body string) *staticStory {
	return &staticStory{key: key, content: body, ctx: ctx}
}

func (s *staticStory) Key() string                { return s.key }
func (s *staticStory) Title() string              { return s.ctx.Tr("panel." + s.key) }
func (s *staticStory) Init() tea.Cmd              { return nil }
func (s *staticStory) Update(msg tea.Msg) tea.Cmd { return nil }
func (s *staticStory) View(width, height int, focused bool) string {
	style := lipgloss.NewStyle().Foreground(s.ctx.Theme.Text)
	return clampLines(style.Render(s.content), width, height)
}

// inputStory hosts a live textinput, exercising per-panel state that
// must survive focus changes but never persists.
type inputStory struct {
	key   string
	ctx   *Context
	input textinput.Model
}

func newInputStory(ctx *Context) *inputStory {
	ti := textinput.New()
	ti.Placeholder = "Type here..."
	ti.CharLimit = 64
	ti.Focus()
	return &inputStory{key: "input", ctx: ctx, input: ti}
}

func (s *inputStory) Key() string   { return s.key }
func (s *inputStory) Title() string { return s.ctx.Tr("panel." + s.key) }
func (s *inputStory) Init() tea.Cmd { return textinput.Blink }
// Editing reports that this panel consumes printable keys while its
// input has cursor focus.
func (s *inputStory) Editing() bool { return s.input.Focused() }

func (s *inputStory) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *inputStory) View(width, height int, focused bool) string {
	s.input.Width = max(8, width-4)
	hint := lipgloss.NewStyle().Foreground(s.ctx.Theme.Subtle).Render("A single-line text input.")
	return clampLines(hint+"\n\n"+s.input.View(), width, height)
}

// tableStory shows a scrolling data table.
type tableStory struct {
	key   string
	ctx   *Context
	table table.Model
}

func newTableStory(ctx *Context) *tableStory {
	cols := []table.Column{
		{Title: "Name", Width: 14},
		{Title: "Kind", Width: 12},
		{Title: "Size", Width: 8},
	}
	rows := []table.Row{
		{"alpha", "document", "12 KB"},
		{"beta", "image", "384 KB"},
		{"gamma", "archive", "2.1 MB"},
		{"delta", "document", "8 KB"},
		{"epsilon", "binary", "96 KB"},
		{"zeta", "image", "1.4 MB"},
	}
	tbl := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithFocused(true), table.WithHeight(6))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(ctx.Theme.Accent)
	styles.Selected = styles.Selected.Bold(true).Foreground(ctx.Theme.Focus)
	tbl.SetStyles(styles)
	return &tableStory{key: "table", ctx: ctx, table: tbl}
}

func (s *tableStory) Key() string   { return s.key }
func (s *tableStory) Title() string { return s.ctx.Tr("panel." + s.key) }
func (s *tableStory) Init() tea.Cmd { return nil }
func (s *tableStory) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return cmd
}

func (s *tableStory) View(width, height int, focused bool) string {
	s.table.SetWidth(max(20, width))
	s.table.SetHeight(max(3, height-1))
	return clampLines(s.table.View(), width, height)
}

// listStory is a plain cursor list.
type listStory struct {
	key    string
	ctx    *Context
	items  []string
	cursor int
}

func newListStory(ctx *Context) *listStory {
	return &listStory{
		key:   "list",
		ctx:   ctx,
		items: []string{"Overview", "Components", "Layouts", "Inputs", "Feedback", "Data display", "Navigation"},
	}
}

func (s *listStory) Key() string   { return s.key }
func (s *listStory) Title() string { return s.ctx.Tr("panel." + s.key) }
func (s *listStory) Init() tea.Cmd { return nil }
func (s *listStory) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	}
	return nil
}

func (s *listStory) View(width, height int, focused bool) string {
	normal := lipgloss.NewStyle().Foreground(s.ctx.Theme.Text)
	selected := lipgloss.NewStyle().Foreground(s.ctx.Theme.Focus).Bold(true)
	var b strings.Builder
	for i, item := range s.items {
		marker := "  "
		style := normal
		if i == s.cursor {
			marker = "> "
			style = selected
		}
		b.WriteString(style.Render(marker + item))
		if i < len(s.items)-1 {
			b.WriteByte('\n')
		}
	}
	return clampLines(b.String(), width, height)
}

// progressStory renders fixed-value bars in the theme's accent set.
type progressStory struct {
	key string
	ctx *Context
}

func newProgressStory(ctx *Context) *progressStory {
	return &progressStory{key: "progress", ctx: ctx}
}

func (s *progressStory) Key() string                { return s.key }
func (s *progressStory) Title() string              { return s.ctx.Tr("panel." + s.key) }
func (s *progressStory) Init() tea.Cmd              { return nil }
func (s *progressStory) Update(msg tea.Msg) tea.Cmd { return nil }

func (s *progressStory) View(width, height int, focused bool) string {
	accents := AccentColors()
	barWidth := max(10, width-10)
	var b strings.Builder
	for i, pct := range []int{25, 50, 75, 100} {
		filled := barWidth * pct / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		line := lipgloss.NewStyle().Foreground(accents[i%len(accents)]).Render(bar)
		fmt.Fprintf(&b, "%s %3d%%", line, pct)
		if i < 3 {
			b.WriteByte('\n')
		}
	}
	return clampLines(b.String(), width, height)
}

// clampLines trims rendered content to the pane's content box.
func clampLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
