package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/gridconsole/console"
	"github.com/young1lin/gridconsole/grid"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	if m.root != nil {
		sections = append(sections, m.renderGrid())
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

// renderGrid draws the active grid into the buffer and styles each run of
// equally colored cells
func (m Model) renderGrid() string {
	m.buffer.SetBackground(console.Black)
	m.buffer.Clear()
	m.root.Render()

	lines := m.buffer.Lines()
	last := len(lines) - 1
	for last >= 0 && lines[last] == "" {
		last--
	}

	out := make([]string, 0, last+1)
	for y := 0; y <= last; y++ {
		out = append(out, m.renderRow(y))
	}
	return strings.Join(out, "\n")
}

func (m Model) renderRow(y int) string {
	runs := m.buffer.Runs(y)
	// drop trailing blank background
	for len(runs) > 0 {
		r := runs[len(runs)-1]
		if strings.TrimSpace(r.Text) != "" || r.Bg != console.Black {
			break
		}
		runs = runs[:len(runs)-1]
	}

	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(runStyle(r).Render(r.Text))
	}
	return sb.String()
}

func runStyle(r console.Run) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ansiColor(r.Fg)).
		Background(ansiColor(r.Bg))
}

func ansiColor(c console.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(c.ANSI()))
}

// renderStatus renders the breadcrumb, the last activation and any error.
// Once the terminal width is known the line is cut to fit it.
func (m Model) renderStatus() string {
	type part struct {
		text  string
		style lipgloss.Style
	}
	parts := []part{{Breadcrumb(m.root), m.styles.Breadcrumb}}

	if m.lastActivation != "" {
		parts = append(parts, part{"▸ " + m.lastActivation, m.styles.Activation})
	}
	if len(m.history) > 0 {
		recent := make([]string, 0, len(m.history))
		for _, h := range m.history {
			recent = append(recent, h.Where)
		}
		parts = append(parts, part{"recent: " + strings.Join(recent, ", "), m.styles.Muted})
	}
	if m.watching && m.source != "" {
		parts = append(parts, part{"watching " + m.source, m.styles.Muted})
	}
	if m.err != nil {
		parts = append(parts, part{"Error: " + m.err.Error(), m.styles.Error})
	}

	const sep = "  "
	remaining := m.help.Width
	rendered := make([]string, 0, len(parts))
	for i, p := range parts {
		text := p.text
		if m.help.Width > 0 {
			if i > 0 {
				remaining -= len(sep)
			}
			if remaining <= 0 {
				break
			}
			text = console.Truncate(text, remaining)
			remaining -= console.StringWidth(text)
		}
		rendered = append(rendered, p.style.Render(text))
	}

	return m.styles.Status.Render(strings.Join(rendered, sep))
}

// Breadcrumb names every grid on the drill-down chain, outermost first
func Breadcrumb(root *grid.Grid) string {
	if root == nil {
		return ""
	}
	names := []string{"top"}
	for g := root.ActiveChild(); g != nil; g = g.ActiveChild() {
		name := g.Label()
		if name == "" {
			name = g.String()
		}
		names = append(names, name)
	}
	return strings.Join(names, " › ")
}
