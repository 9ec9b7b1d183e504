// Package dfs implements the depth-first search engine: repeated search
// attempts from priority-selected starting points, each growing and
// shrinking a route by recursive backtracking against the grid world.
package dfs

import (
	"fmt"
	"time"

	"github.com/slepotek/gridpath/grid"
	"github.com/slepotek/gridpath/route"
	"github.com/slepotek/gridpath/selector"
)

// DFS finds contiguous routes of an exact length by depth-first search
// with backtracking. It implements Algorithm.
type DFS struct{}

// compile-time capability check
var _ Algorithm = (*DFS)(nil)

// New returns a ready-to-use DFS engine. The engine itself is stateless;
// every FindPath call allocates its own selector, visited markers, and
// route, so independent searches never share state.
func New() *DFS {
	return &DFS{}
}

// Name returns the human-readable strategy name.
func (d *DFS) Name() string {
	return "Depth-First Search (DFS)"
}

// FindPath searches w for a contiguous route of exactly targetLength
// cells over 4-directional movement, avoiding blocked cells.
//
// Starting points are pulled from a fresh selector in priority batches
// of up to MaxStartingPoints. For each candidate the engine allocates a
// visited marker and an empty route, seeds them with the candidate, and
// explores recursively in fixed up, right, down, left order, undoing
// each failed extension before trying the next direction. The first
// successful attempt returns its route immediately; once the selector
// is exhausted with no success, an empty route and a nil error are
// returned — "no path found" is a normal outcome, never an error.
//
// Preconditions (validated in order):
//  1. w must be non-nil (ErrNilWorld).
//  2. targetLength must be positive (ErrZeroTargetLength).
//  3. targetLength must not exceed w.TotalCells() (ErrTargetExceedsGrid).
//
// Complexity: worst case O(4^targetLength × candidatesTried); recursion
// depth is bounded by targetLength. No pruning beyond the visited set
// and immediate backtracking on dead ends.
func (d *DFS) FindPath(w *grid.World, targetLength int, opts ...Option) (*route.Route, error) {
	// 1. Apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2. Validate inputs.
	if w == nil {
		return nil, ErrNilWorld
	}
	if targetLength <= 0 {
		return nil, ErrZeroTargetLength
	}
	if targetLength > w.TotalCells() {
		return nil, ErrTargetExceedsGrid
	}

	// 3. Arm instrumentation for this call only.
	if cfg.Stats != nil {
		*cfg.Stats = Stats{}
		start := time.Now()
		defer func() { cfg.Stats.Duration = time.Since(start) }()
	}

	wk := &walker{world: w, target: targetLength, stats: cfg.Stats}

	// 4. Main loop: drain the selector batch by batch.
	sel := selector.New()
	for !sel.IsExhausted() {
		batch, err := sel.RequestCandidates(w, cfg.MaxStartingPoints)
		if err != nil {
			return nil, fmt.Errorf("dfs: requesting starting points: %w", err)
		}
		if cfg.Stats != nil {
			cfg.Stats.Batches++
		}

		// 5. Attempt a full search from each candidate, best first.
		var c grid.Coord
		for _, c = range batch {
			if cfg.Stats != nil {
				cfg.Stats.CandidatesTried++
			}
			if rt, ok := wk.attempt(c); ok {
				return rt, nil
			}
		}
	}

	// 6. Every candidate across every batch failed.
	return route.New(), nil
}

// walker holds the per-call search state shared by one FindPath run.
type walker struct {
	world  *grid.World
	target int
	stats  *Stats
}

// attempt runs one search rooted at c with fresh visited markers and an
// empty route. Reports the completed route on success.
func (wk *walker) attempt(c grid.Coord) (*route.Route, bool) {
	visited := make([]bool, wk.world.TotalCells())
	rt := route.New()

	visited[int(c.Row)*int(wk.world.Cols())+int(c.Col)] = true
	rt.Append(c.Row, c.Col)

	if wk.explore(rt, visited) {
		return rt, true
	}

	return nil, false
}

// explore grows rt by one cell at a time, backtracking on dead ends.
// Returns true once rt reaches the target length.
func (wk *walker) explore(rt *route.Route, visited []bool) bool {
	// Base case: route is complete.
	if rt.Len() == wk.target {
		return true
	}

	// The route is seeded before the first call, so the tail exists.
	cur, err := rt.PeekLast()
	if err != nil {
		return false
	}

	cols := int(wk.world.Cols())
	var nr, nc, idx int
	for _, dir := range grid.NeighborOffsets() {
		nr, nc = int(cur.Row)+dir[0], int(cur.Col)+dir[1]
		if nr < 0 || nc < 0 || !wk.world.InBounds(uint16(nr), uint16(nc)) {
			continue
		}
		idx = nr*cols + nc
		if visited[idx] {
			continue
		}
		unblocked, uerr := wk.world.IsUnblocked(uint16(nr), uint16(nc))
		if uerr != nil || !unblocked {
			continue
		}

		// Extend the route into the neighbor and recurse.
		visited[idx] = true
		rt.Append(uint16(nr), uint16(nc))
		if wk.stats != nil {
			wk.stats.CellsExpanded++
		}
		if wk.explore(rt, visited) {
			return true
		}

		// Backtrack: undo the extension before trying the next direction.
		_, _ = rt.PopLast()
		visited[idx] = false
		if wk.stats != nil {
			wk.stats.Backtracks++
		}
	}

	return false
}
