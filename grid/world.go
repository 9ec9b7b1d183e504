// Package grid implements the mutable cell world used by the search
// engine: creation, single-cell and batch blocking, bounds and neighbor
// queries, and O(1) occupancy counters.
package grid

// New constructs a World with the given dimensions, all cells unblocked.
// Returns ErrInvalidDimension if either dimension is zero, or
// ErrCapacityExceeded if rows*cols exceeds the addressable cell store.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols uint16) (*World, error) {
	w := &World{}
	if err := w.initialize(rows, cols); err != nil {
		return nil, err
	}

	return w, nil
}

// initialize validates dimensions and (re)builds the cell store.
// On error the receiver is left untouched.
func (w *World) initialize(rows, cols uint16) error {
	if rows == 0 || cols == 0 {
		return ErrInvalidDimension
	}
	// Multiply in 64 bits so the capacity check cannot itself overflow.
	total := int64(rows) * int64(cols)
	if total > maxCells {
		return ErrCapacityExceeded
	}
	w.rows, w.cols = rows, cols
	w.cells = make([]bool, int(total))
	w.unblocked = int(total)
	w.blocked = 0

	return nil
}

// index maps (row,col) to the row-major store index: row*cols + col.
// Returns ErrEmptyGrid for a world with no cells and ErrOutOfBounds for
// coordinates beyond the extent.
// Complexity: O(1).
func (w *World) index(row, col uint16) (int, error) {
	if len(w.cells) == 0 {
		return 0, ErrEmptyGrid
	}
	if row >= w.rows || col >= w.cols {
		return 0, ErrOutOfBounds
	}

	return int(row)*int(w.cols) + int(col), nil
}

// InBounds reports whether (row,col) lies within the world extent.
// Complexity: O(1).
func (w *World) InBounds(row, col uint16) bool {
	return row < w.rows && col < w.cols
}

// SetBlocked sets the state of a single cell (true = blocked).
// Returns false for out-of-bounds coordinates or an empty world.
// Counters are updated only when the stored state actually changes;
// setting a cell to its current state is a no-op success.
// Complexity: O(1).
func (w *World) SetBlocked(row, col uint16, blocked bool) bool {
	idx, err := w.index(row, col)
	if err != nil {
		return false
	}
	if w.cells[idx] == blocked {
		return true // no-op: state unchanged, counters untouched
	}
	w.cells[idx] = blocked
	if blocked {
		w.unblocked--
		w.blocked++
	} else {
		w.blocked--
		w.unblocked++
	}

	return true
}

// BlockMany blocks every listed cell that is currently unblocked.
// Cells already blocked are skipped without error. Returns false as soon
// as any coordinate is invalid; cells blocked before the failure stay
// blocked (no rollback).
// Complexity: O(len(coords)).
func (w *World) BlockMany(coords []Coord) bool {
	var c Coord
	for _, c = range coords {
		unblocked, err := w.IsUnblocked(c.Row, c.Col)
		if err != nil {
			return false
		}
		if !unblocked {
			continue
		}
		if !w.SetBlocked(c.Row, c.Col, true) {
			return false
		}
	}

	return true
}

// IsUnblocked reports whether the cell at (row,col) is passable.
// Returns ErrEmptyGrid for a world with no cells, ErrOutOfBounds for
// invalid coordinates. The stored bit is inverted: the store keeps
// true = blocked.
// Complexity: O(1).
func (w *World) IsUnblocked(row, col uint16) (bool, error) {
	idx, err := w.index(row, col)
	if err != nil {
		return false, err
	}

	return !w.cells[idx], nil
}

// CountUnblockedNeighbors counts the unblocked cells among the four
// axis-aligned neighbors of (row,col). An out-of-bounds center yields 0
// rather than an error; neighbors outside the extent are ignored.
// Complexity: O(1).
func (w *World) CountUnblockedNeighbors(row, col uint16) int {
	if !w.InBounds(row, col) {
		return 0
	}
	count := 0
	var nr, nc int
	for _, d := range neighborOffsets {
		nr, nc = int(row)+d[0], int(col)+d[1]
		if nr < 0 || nr >= int(w.rows) || nc < 0 || nc >= int(w.cols) {
			continue
		}
		if !w.cells[nr*int(w.cols)+nc] {
			count++
		}
	}

	return count
}

// Resize destructively reinitializes the world to the new dimensions:
// all cells unblocked, counters reset. Returns false if the new
// dimensions are invalid, leaving the current state untouched.
// Complexity: O(rows×cols).
func (w *World) Resize(rows, cols uint16) bool {
	return w.initialize(rows, cols) == nil
}

// Clear resets every cell to unblocked without changing dimensions.
// Returns false for a world with no cells.
// Complexity: O(rows×cols).
func (w *World) Clear() bool {
	if len(w.cells) == 0 {
		return false
	}
	clear(w.cells)
	w.unblocked = len(w.cells)
	w.blocked = 0

	return true
}

// IsFullyUnblocked reports whether no cell is blocked, using the
// maintained counter instead of a store scan.
// Complexity: O(1).
func (w *World) IsFullyUnblocked() bool {
	return w.blocked == 0
}

// BlockedToUnblockedRatio returns blocked/unblocked as a float64.
// Returns ErrDivideByZero while either counter is zero.
// Complexity: O(1).
func (w *World) BlockedToUnblockedRatio() (float64, error) {
	if w.blocked == 0 || w.unblocked == 0 {
		return 0, ErrDivideByZero
	}

	return float64(w.blocked) / float64(w.unblocked), nil
}

// Rows returns the number of rows.
func (w *World) Rows() uint16 { return w.rows }

// Cols returns the number of columns.
func (w *World) Cols() uint16 { return w.cols }

// TotalCells returns rows*cols.
func (w *World) TotalCells() int { return len(w.cells) }

// UnblockedCells returns the maintained count of passable cells.
func (w *World) UnblockedCells() int { return w.unblocked }

// BlockedCells returns the maintained count of impassable cells.
func (w *World) BlockedCells() int { return w.blocked }
