package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/gridconsole/console"
	"github.com/young1lin/gridconsole/grid"
)

// statusLines is the number of terminal rows reserved below the grid
const statusLines = 2

// Model hosts a grid tree inside a bubbletea program. The grid draws into an
// in-memory buffer which View converts to styled text.
type Model struct {
	root   *grid.Grid
	buffer *console.Buffer
	source string

	keys  KeyMap
	help  help.Model
	inbox Inbox

	lastActivation string
	history        []HistoryEntry

	// State
	watching bool
	quitting bool

	// Error state
	err error

	// Styles
	styles Styles
}

// HistoryEntry is one recorded activation shown below the grid
type HistoryEntry struct {
	Timestamp string
	Where     string
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Status     lipgloss.Style
	Breadcrumb lipgloss.Style
	Activation lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	styles.Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	styles.Breadcrumb = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Activation = lipgloss.NewStyle().
		Foreground(lipgloss.Color("228"))

	styles.Muted = lipgloss.NewStyle().
		Foreground(secondaryColor)

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	return styles
}

// Option customises a Model
type Option func(*Model)

// WithInbox sets the queue grid callbacks post activations to
func WithInbox(in Inbox) Option {
	return func(m *Model) { m.inbox = in }
}

// WithSource records the layout file shown in the status line
func WithSource(path string) Option {
	return func(m *Model) { m.source = path }
}

// NewModel creates a model hosting root, which must target buffer
func NewModel(root *grid.Grid, buffer *console.Buffer, opts ...Option) Model {
	m := Model{
		root:    root,
		buffer:  buffer,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
		history: make([]HistoryEntry, 0, 3),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Root returns the hosted grid tree
func (m Model) Root() *grid.Grid {
	return m.root
}

// LastActivation returns the description of the most recent activation
func (m Model) LastActivation() string {
	return m.lastActivation
}

// Err returns the error shown in the status line, if any
func (m Model) Err() error {
	return m.err
}
