package preproc

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph is returned by prepareEdges when the graph has zero edges;
// preprocessing completes as a no-op.
var ErrEmptyGraph = errors.New("preproc: graph has no edges")

// ErrEmptyPriorityQueue is returned by prepareNodes when the graph has zero
// nodes; preprocessing completes as a no-op.
var ErrEmptyPriorityQueue = errors.New("preproc: graph has no nodes")

// DuplicateShortcutError signals that both directions of a pending shortcut
// existed simultaneously in findShortcuts' pending map — an internal
// invariant violation, not reachable on well-formed input. Treated as
// defensive: the Contractor panics with this attached rather than returning
// it, since there is no sane way to keep contracting past it.
type DuplicateShortcutError struct {
	U, V int32
}

func (self *DuplicateShortcutError) Error() string {
	return fmt.Sprintf("preproc: duplicate shortcut invariant violated for pending pair (%d, %d)", self.U, self.V)
}
