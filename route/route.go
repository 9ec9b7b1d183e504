// Package route provides the ordered coordinate sequence grown and
// shrunk by the search engine, with stack-discipline tail operations and
// an on-demand contiguity check.
package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slepotek/gridpath/grid"
)

// ErrEmptyRoute indicates a tail read or removal on an empty route.
var ErrEmptyRoute = errors.New("route: route is empty")

// Route is an ordered, mutable sequence of cell coordinates. Appends and
// removals are restricted to the tail, matching the push/pop discipline
// of depth-first backtracking. Contiguity is validated on demand, never
// enforced on insertion.
//
// The zero value is an empty route ready for use.
type Route struct {
	coords []grid.Coord
}

// New returns an empty route.
func New() *Route {
	return &Route{}
}

// Append adds (row,col) at the tail. No validation is performed.
// Complexity: amortized O(1).
func (r *Route) Append(row, col uint16) {
	r.coords = append(r.coords, grid.Coord{Row: row, Col: col})
}

// PopLast removes and returns the tail coordinate.
// Returns ErrEmptyRoute if the route is empty.
// Complexity: O(1).
func (r *Route) PopLast() (grid.Coord, error) {
	if len(r.coords) == 0 {
		return grid.Coord{}, ErrEmptyRoute
	}
	last := r.coords[len(r.coords)-1]
	r.coords = r.coords[:len(r.coords)-1]

	return last, nil
}

// PeekLast returns the tail coordinate without removing it.
// Returns ErrEmptyRoute if the route is empty.
// Complexity: O(1).
func (r *Route) PeekLast() (grid.Coord, error) {
	if len(r.coords) == 0 {
		return grid.Coord{}, ErrEmptyRoute
	}

	return r.coords[len(r.coords)-1], nil
}

// Len returns the number of coordinates in the route.
func (r *Route) Len() int { return len(r.coords) }

// IsEmpty reports whether the route holds no coordinates.
func (r *Route) IsEmpty() bool { return len(r.coords) == 0 }

// Clear removes all coordinates, resetting the route to empty.
func (r *Route) Clear() { r.coords = r.coords[:0] }

// IsContiguous reports whether every consecutive coordinate pair is
// 4-directionally adjacent (Manhattan distance exactly 1). Routes of
// length 0 or 1 are trivially contiguous. Differences are taken with
// order-independent subtraction so unsigned coordinates never underflow.
// Complexity: O(n).
func (r *Route) IsContiguous() bool {
	if len(r.coords) < 2 {
		return true
	}
	var prev, cur grid.Coord
	for i := 1; i < len(r.coords); i++ {
		prev, cur = r.coords[i-1], r.coords[i]
		if absDiff(prev.Row, cur.Row)+absDiff(prev.Col, cur.Col) != 1 {
			return false
		}
	}

	return true
}

// absDiff returns |a-b| without underflowing uint16 arithmetic.
func absDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}

	return b - a
}

// Coords returns a forward-order copy of the coordinate sequence for
// inspection or rendering. The copy is finite, restartable, and
// detached from later mutations of the route.
// Complexity: O(n).
func (r *Route) Coords() []grid.Coord {
	out := make([]grid.Coord, len(r.coords))
	copy(out, r.coords)

	return out
}

// String renders the route as "(row, col) (row, col) …" for display.
func (r *Route) String() string {
	var sb strings.Builder
	for i, c := range r.coords {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d, %d)", c.Row, c.Col)
	}

	return sb.String()
}
