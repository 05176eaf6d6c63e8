package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/dockyard/internal/dock"
)

const minDockExtent = 6

func (w Workspace) View() string {
	if w.width < 24 || w.height < 10 {
		return "window too small"
	}

	header := w.renderHeader()
	status := w.renderStatus()
	footer := w.renderFooter()
	bodyHeight := w.height - 3
	body := w.renderArea(w.width, bodyHeight)

	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
	if w.prompt.pending {
		screen = overlayCenter(screen, w.renderPrompt(), w.width, w.height)
	} else if w.picker != nil {
		screen = overlayCenter(screen, w.renderPicker(), w.width, w.height)
	}
	return screen
}

func (w Workspace) renderHeader() string {
	title := w.styles.header.Render("Dockyard")
	meta := w.styles.footer.Render(string(w.ctx.Theme.Mode) + " · " + w.ctx.Locale)
	gap := w.width - lipgloss.Width(title) - lipgloss.Width(meta)
	if gap < 1 {
		return truncate(title, w.width)
	}
	return title + strings.Repeat(" ", gap) + meta
}

func (w Workspace) renderStatus() string {
	style := w.styles.status
	if w.statusErr {
		style = w.styles.statusErr
	}
	return truncate(style.Render(w.status), w.width)
}

func (w Workspace) renderFooter() string {
	parts := make([]string, 0, 8)
	for _, b := range w.keys.footerBindings() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return truncate(w.styles.footer.Render(strings.Join(parts, "  ·  ")), w.width)
}

// renderArea composes the whole dock arrangement: the bottom dock runs
// the full width, and the left/right docks flank the main tree above
// it.
func (w Workspace) renderArea(width, height int) string {
	bottomHeight := 0
	if d := w.area.Bottom(); d != nil {
		bottomHeight = clampExtent(dockExtent(d, 8), minDockExtent, height/2)
	}
	middleHeight := height - bottomHeight

	leftWidth, rightWidth := 0, 0
	if d := w.area.Left(); d != nil {
		leftWidth = clampExtent(dockExtent(d, 24), minDockExtent, width/3)
	}
	if d := w.area.Right(); d != nil {
		rightWidth = clampExtent(dockExtent(d, 24), minDockExtent, width/3)
	}
	centerWidth := width - leftWidth - rightWidth

	parts := make([]string, 0, 3)
	if leftWidth > 0 {
		parts = append(parts, w.renderDock(w.area.Left(), dock.SideLeft, leftWidth, middleHeight))
	}
	parts = append(parts, w.renderNode(w.area.Root(), centerWidth, middleHeight))
	if rightWidth > 0 {
		parts = append(parts, w.renderDock(w.area.Right(), dock.SideRight, rightWidth, middleHeight))
	}
	middle := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	if bottomHeight == 0 {
		return middle
	}
	bottom := w.renderDock(w.area.Bottom(), dock.SideBottom, width, bottomHeight)
	return lipgloss.JoinVertical(lipgloss.Left, middle, bottom)
}

func (w Workspace) renderNode(n dock.Node, width, height int) string {
	switch t := n.(type) {
	case *dock.Tabs:
		return w.renderTabs(t, width, height)
	case *dock.Split:
		return w.renderSplit(t, width, height)
	default:
		return lipgloss.NewStyle().Width(width).Height(height).Render("")
	}
}

// renderSplit divides the extent along the split axis: fixed sizes hold
// their cells, flexible children share the remainder, and the last
// child absorbs rounding.
func (w Workspace) renderSplit(s *dock.Split, width, height int) string {
	total := width
	if s.Axis == dock.Vertical {
		total = height
	}

	extents := make([]int, len(s.Children))
	remaining := total
	flexible := 0
	for i, size := range s.Sizes {
		if size != nil {
			extents[i] = clampExtent(*size, 3, total)
			remaining -= extents[i]
		} else {
			flexible++
		}
	}
	if flexible > 0 {
		share := remaining / flexible
		last := -1
		for i, size := range s.Sizes {
			if size == nil {
				extents[i] = share
				remaining -= share
				last = i
			}
		}
		extents[last] += remaining
	} else if remaining > 0 {
		extents[len(extents)-1] += remaining
	}

	parts := make([]string, len(s.Children))
	for i, child := range s.Children {
		if s.Axis == dock.Vertical {
			parts[i] = w.renderNode(child, width, extents[i])
		} else {
			parts[i] = w.renderNode(child, extents[i], height)
		}
	}
	if s.Axis == dock.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (w Workspace) renderTabs(t *dock.Tabs, width, height int) string {
	focused := w.focusedTabs() == t

	var bar strings.Builder
	for i, ref := range t.Panels {
		style := w.styles.tab
		if i == t.Active {
			style = w.styles.tabActive
		}
		bar.WriteString(style.Render(truncate(ref.Panel().Title(), 18)))
	}
	barLine := truncate(bar.String(), width-2)

	content := ""
	if ref := t.ActivePanel(); ref != nil {
		content = ref.Panel().View(width-2, height-3, focused)
	}

	frame := w.styles.pane
	if focused {
		frame = w.styles.paneFocused
	}
	return frame.Width(width - 2).Height(height - 2).Render(barLine + "\n" + content)
}

// renderDock stacks a dock's panels vertically inside one frame, each
// with a title line.
func (w Workspace) renderDock(d *dock.EdgeDock, side dock.Side, width, height int) string {
	focused := w.focusedSide() == side

	inner := make([]string, 0, len(d.Panels)*2)
	if n := len(d.Panels); n > 0 {
		share := (height - 2) / n
		for i, ref := range d.Panels {
			h := share
			if i == n-1 {
				h = (height - 2) - share*(n-1)
			}
			title := w.styles.dockTitle.Render(truncate(ref.Panel().Title(), width-2))
			body := ref.Panel().View(width-2, h-1, focused)
			inner = append(inner, title, body)
		}
	}

	frame := w.styles.pane
	if focused {
		frame = w.styles.paneFocused
	}
	return frame.Width(width - 2).Height(height - 2).Render(strings.Join(inner, "\n"))
}

func (w Workspace) renderPrompt() string {
	var b strings.Builder
	b.WriteString(w.styles.modalTitle.Render("Workspace"))
	b.WriteString("\n\n")
	b.WriteString(w.prompt.message)
	b.WriteString("\n\n")
	opts := make([]string, len(w.prompt.options))
	for i, o := range w.prompt.options {
		style := w.styles.option
		if i == w.prompt.cursor {
			style = w.styles.optionHot
		}
		opts[i] = style.Render(o)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, opts...))
	return w.styles.modal.Render(b.String())
}

func (w Workspace) renderPicker() string {
	var b strings.Builder
	b.WriteString(w.styles.pickerQuery.Render("> " + w.picker.query + "▌"))
	b.WriteString("\n")
	shown := w.picker.matches
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for i, key := range shown {
		style := w.styles.pickerItem
		if i == w.picker.cursor {
			style = w.styles.pickerHot
		}
		b.WriteString("\n")
		b.WriteString(style.Render(truncate(key, 28)))
	}
	if len(w.picker.matches) == 0 {
		b.WriteString("\n")
		b.WriteString(w.styles.footer.Render("no matches"))
	}
	return w.styles.modal.Render(b.String())
}

func dockExtent(d *dock.EdgeDock, fallback int) int {
	if d.Size != nil {
		return *d.Size
	}
	return fallback
}

func clampExtent(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
