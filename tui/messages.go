package tui

import "github.com/young1lin/gridconsole/grid"

// LayoutReloadedMsg replaces the hosted grid tree after the layout file changed
type LayoutReloadedMsg struct {
	Root   *grid.Grid
	Source string
}

// ActivatedMsg reports an Enter press on a layout element
type ActivatedMsg struct {
	Where     string
	Parameter string
}

// HistoryLoadedMsg carries recent activations read from the history store
type HistoryLoadedMsg struct {
	Entries []HistoryEntry
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// WatcherStartedMsg is sent when the layout watcher starts
type WatcherStartedMsg struct {
	Path string
}

// WatcherFailedMsg is sent when the layout watcher fails
type WatcherFailedMsg struct {
	Err error
}

// Inbox queues activations raised while the model handles a key.
// Grid callbacks run inside Update, where Program.Send would block, so they
// post here and the model drains the queue after each key.
type Inbox chan ActivatedMsg

// NewInbox creates an inbox holding up to size pending activations
func NewInbox(size int) Inbox {
	return make(Inbox, size)
}

// Post queues msg, dropping it when the inbox is full
func (in Inbox) Post(msg ActivatedMsg) {
	select {
	case in <- msg:
	default:
	}
}

// drain returns every queued activation
func (in Inbox) drain() []ActivatedMsg {
	var out []ActivatedMsg
	for {
		select {
		case msg := <-in:
			out = append(out, msg)
		default:
			return out
		}
	}
}
