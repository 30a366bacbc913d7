// Package console defines the terminal surface the grid engine draws on
// and reads keys from.
//
// Two surfaces are provided: Buffer, an in-memory cell matrix used by the
// bubbletea host and by tests, and Tcell, which drives a real terminal
// through gdamore/tcell.
package console
