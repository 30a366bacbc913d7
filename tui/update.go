package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/gridconsole/console"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		height := msg.Height - statusLines
		if height < 1 {
			height = 1
		}
		m.buffer.Resize(msg.Width, height)
		m.help.Width = msg.Width
		if m.root != nil {
			m.root.Invalidate()
		}
		return m, nil

	case LayoutReloadedMsg:
		if msg.Root != nil {
			m.root = msg.Root
			m.root.Invalidate()
		}
		if msg.Source != "" {
			m.source = msg.Source
		}
		m.err = nil
		return m, nil

	case ActivatedMsg:
		m.recordActivation(msg)
		return m, nil

	case HistoryLoadedMsg:
		m.history = msg.Entries
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case WatcherStartedMsg:
		m.watching = true
		m.err = nil
		return m, nil

	case WatcherFailedMsg:
		m.watching = false
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.root == nil {
		return m, nil
	}

	k := m.keys.Translate(msg)
	if k == console.KeyEscape && m.root.Depth() == 0 {
		m.quitting = true
		return m, tea.Quit
	}

	if err := m.root.HandleKey(k); err != nil {
		m.err = err
	}
	if m.inbox != nil {
		for _, a := range m.inbox.drain() {
			m.recordActivation(a)
		}
	}
	return m, nil
}

func (m *Model) recordActivation(a ActivatedMsg) {
	m.lastActivation = a.Where
	if a.Parameter != "" {
		m.lastActivation += " (" + a.Parameter + ")"
	}
}
