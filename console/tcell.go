package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Tcell is a Surface drawing on a real terminal through tcell.
// Drawing is buffered by tcell; ReadKey presents the pending frame before it
// blocks, which matches the Render-then-HandleInput loop.
type Tcell struct {
	screen  tcell.Screen
	cursorX int
	cursorY int
	style   tcell.Style
	fg      Color
	bg      Color
}

// NewTcell opens the controlling terminal
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewTcellWithScreen(screen)
}

// NewTcellWithScreen initialises the given screen and wraps it.
// Tests pass a tcell simulation screen here.
func NewTcellWithScreen(screen tcell.Screen) (*Tcell, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	t := &Tcell{screen: screen, fg: Gray, bg: Black}
	t.updateStyle()
	return t, nil
}

// Screen exposes the underlying tcell screen
func (t *Tcell) Screen() tcell.Screen {
	return t.screen
}

// Fini restores the terminal. Safe to call more than once.
func (t *Tcell) Fini() {
	if t.screen == nil {
		return
	}
	t.screen.Fini()
	t.screen = nil
}

func (t *Tcell) MoveCursor(x, y int) {
	t.cursorX = x
	t.cursorY = y
}

func (t *Tcell) WriteChar(r rune) {
	w := CellWidth(r)
	if t.screen != nil {
		t.screen.SetContent(t.cursorX, t.cursorY, r, nil, t.style)
	}
	t.cursorX += w
}

func (t *Tcell) Clear() {
	if t.screen == nil {
		return
	}
	t.screen.Fill(' ', t.style)
}

func (t *Tcell) SetForeground(c Color) {
	t.fg = c
	t.updateStyle()
}

func (t *Tcell) SetBackground(c Color) {
	t.bg = c
	t.updateStyle()
}

func (t *Tcell) Width() int {
	if t.screen == nil {
		return 0
	}
	w, _ := t.screen.Size()
	return w
}

func (t *Tcell) Height() int {
	if t.screen == nil {
		return 0
	}
	_, h := t.screen.Size()
	return h
}

// Show presents everything drawn since the last Show
func (t *Tcell) Show() {
	if t.screen != nil {
		t.screen.Show()
	}
}

// Interrupt wakes a goroutine blocked in ReadKey, which then returns KeyNone.
// It is safe to call from any goroutine.
func (t *Tcell) Interrupt() {
	if t.screen != nil {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// ReadKey shows the pending frame and blocks for the next event.
// Resize and interrupt events return KeyNone; a finalised screen returns
// KeyNone immediately.
func (t *Tcell) ReadKey() Key {
	if t.screen == nil {
		return KeyNone
	}
	t.screen.Show()

	switch ev := t.screen.PollEvent().(type) {
	case nil:
		return KeyNone
	case *tcell.EventResize:
		t.screen.Sync()
		return KeyNone
	case *tcell.EventInterrupt:
		return KeyNone
	case *tcell.EventKey:
		return mapTcellKey(ev)
	default:
		return KeyUnknown
	}
}

func mapTcellKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	default:
		return KeyUnknown
	}
}

func (t *Tcell) updateStyle() {
	t.style = tcell.StyleDefault.
		Foreground(tcell.PaletteColor(t.fg.ANSI())).
		Background(tcell.PaletteColor(t.bg.ANSI()))
}
