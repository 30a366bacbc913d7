package grid

import "errors"

var (
	// ErrInvalidConfiguration is returned by New for unusable dimensions or a
	// missing target surface
	ErrInvalidConfiguration = errors.New("invalid grid configuration")

	// ErrInternalInconsistency means the focused element is no longer in the
	// grid's cells. The grid state is corrupt and the operation is aborted.
	ErrInternalInconsistency = errors.New("grid internal inconsistency")

	// ErrNotInGrid is returned by Select for an element the grid does not hold
	ErrNotInGrid = errors.New("element is not in grid")

	// ErrNotSelectable is returned by Select for an element that cannot take focus
	ErrNotSelectable = errors.New("element cannot be selected")
)
