package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewQuitting(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	m.quitting = true

	if got := m.View(); got != "" {
		t.Errorf("View() when quitting = %q, want empty", got)
	}
}

func TestViewShowsGridAndStatus(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	view := m.View()
	lines := strings.Split(view, "\n")
	if lines[0] != "Go Menu" {
		t.Errorf("first line = %q, want %q", lines[0], "Go Menu")
	}
	if !strings.Contains(view, "top") {
		t.Errorf("View() should contain the breadcrumb:\n%s", view)
	}
}

func TestViewAfterDrillDown(t *testing.T) {
	m, root, sub := newTestModel(t, nil)
	_ = root.Select(sub)
	m = press(t, m, keyEnter)

	view := m.View()
	if !strings.HasPrefix(view, "Inner") {
		t.Errorf("View() should start with the nested grid:\n%s", view)
	}
	if !strings.Contains(view, "top › Menu") {
		t.Errorf("View() should show the breadcrumb top › Menu:\n%s", view)
	}
}

func TestViewShowsErrorAndActivation(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	m.err = errors.New("layout.cells[0]: bad")
	m.lastActivation = "Go"
	m.history = []HistoryEntry{{Where: "Menu / Inner"}}
	m.watching = true
	m.source = "layout.yaml"

	view := m.View()
	for _, want := range []string{"Error: layout.cells[0]: bad", "▸ Go", "recent: Menu / Inner", "watching layout.yaml"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestStatusLineFitsWindow(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	m.lastActivation = "Deploy application / Debug"
	m.err = errors.New("layout.cells[3]: column out of range")
	result, _ := m.Update(tea.WindowSizeMsg{Width: 16, Height: 10})
	m = result.(Model)

	status := m.renderStatus()
	if w := lipgloss.Width(status); w > 16 {
		t.Errorf("status width = %d, want at most 16: %q", w, status)
	}
	if !strings.Contains(status, "top  ▸ Deploy") {
		t.Errorf("status = %q, want the breadcrumb and the start of the activation", status)
	}
	if strings.Contains(status, "Error") {
		t.Errorf("status = %q, parts past the width should be dropped", status)
	}
}

func TestStatusLineUnboundedBeforeResize(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	m.lastActivation = "Deploy application / Debug"

	if status := m.renderStatus(); !strings.Contains(status, "▸ Deploy application / Debug") {
		t.Errorf("status = %q, want the full activation", status)
	}
}

func TestBreadcrumbNil(t *testing.T) {
	if got := Breadcrumb(nil); got != "" {
		t.Errorf("Breadcrumb(nil) = %q, want empty", got)
	}
}
