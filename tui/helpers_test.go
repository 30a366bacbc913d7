package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/gridconsole/console"
	"github.com/young1lin/gridconsole/grid"
)

// newTestModel hosts a 2x1 root holding a "Go" button and a "Menu" grid
// with a single "Inner" button
func newTestModel(t *testing.T, inbox Inbox) (Model, *grid.Grid, *grid.Grid) {
	t.Helper()
	buf := console.NewBuffer(40, 5)

	post := func(e grid.Element, param any) {
		if inbox != nil {
			inbox.Post(ActivatedMsg{Where: param.(string)})
		}
	}

	root, err := grid.New(grid.DefaultConfig(buf, 2, 1))
	if err != nil {
		t.Fatalf("grid.New() error = %v", err)
	}
	sub, err := grid.New(grid.Config{
		Width: 1, Height: 1, MarginWidth: 1, Target: buf,
		Label: "Menu", OnActivate: post, Parameter: "Menu",
	})
	if err != nil {
		t.Fatalf("grid.New() error = %v", err)
	}
	sub.Add(0, 0, grid.NewButton(grid.ElementConfig{Text: "Inner", OnActivate: post, Parameter: "Menu / Inner"}))
	root.Add(0, 0, grid.NewButton(grid.ElementConfig{Text: "Go", OnActivate: post, Parameter: "Go"}))
	root.Add(1, 0, sub)

	var opts []Option
	if inbox != nil {
		opts = append(opts, WithInbox(inbox))
	}
	return NewModel(root, buf, opts...), root, sub
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		result, _ := m.Update(msg)
		next, ok := result.(Model)
		if !ok {
			t.Fatal("Update() should return a Model")
		}
		m = next
	}
	return m
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)
