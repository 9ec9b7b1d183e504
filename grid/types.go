// Package grid defines the cell-world types, sentinel errors, and
// coordinate primitives shared by the gridpath module.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a zero row or column count.
	ErrInvalidDimension = errors.New("grid: rows and cols must both be greater than zero")

	// ErrCapacityExceeded indicates rows*cols exceeds the addressable cell store.
	ErrCapacityExceeded = errors.New("grid: world is too large for the cell store")

	// ErrEmptyGrid indicates an operation on a world with no cells.
	ErrEmptyGrid = errors.New("grid: world has no cells")

	// ErrOutOfBounds indicates a coordinate outside the world extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrDivideByZero indicates a ratio request while either cell counter is zero.
	ErrDivideByZero = errors.New("grid: blocked/unblocked ratio undefined while either counter is zero")
)

// maxCells bounds the flat cell store. Dimensions are 16-bit magnitudes,
// so rows*cols can reach 2^32-2^17+1; capping at MaxInt32 keeps indices
// well inside int range on every platform.
const maxCells = math.MaxInt32

// Coord identifies a single cell as a 0-indexed (row, column) pair.
// Coordinates are row-major: Row selects the horizontal line, Col the
// position within it.
type Coord struct {
	Row, Col uint16
}

// neighborOffsets lists the four axis-aligned moves in fixed order:
// up, right, down, left. All neighbor traversal uses this order.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// NeighborOffsets returns the fixed 4-directional offset table
// (up, right, down, left) used for all adjacency traversals.
// Complexity: O(1).
func NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// World represents an NxM region of cells, each blocked (impassable) or
// unblocked (passable). The store keeps one bit of state per cell
// (false = unblocked, true = blocked) plus two maintained counters.
// Invariant: unblocked + blocked == rows*cols at all times.
type World struct {
	rows, cols uint16
	cells      []bool // false = unblocked, true = blocked
	unblocked  int
	blocked    int
}
