// Package grid arranges elements on a character-cell grid and drives
// keyboard focus across them.
//
// A Grid measures its columns and rows from the natural sizes of the
// elements it holds, draws them on a console.Surface, and moves focus with
// the arrow keys, wrapping around the edges and skipping empty or
// unselectable cells. A Grid is itself an Element: placed in another grid it
// shows up as a labelled entry, and pressing Enter on it drills down so that
// rendering and input go to the nested grid until Backspace pops back.
//
// Typical host loop:
//
//	for {
//		root.Render()
//		if err := root.HandleInput(); err != nil {
//			return err
//		}
//	}
//
// A grid tree is not safe for concurrent use.
package grid
