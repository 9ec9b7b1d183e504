// Package selector implements stateful, priority-based selection of
// starting-point candidates for the search engine.
package selector

import (
	"container/heap"

	"github.com/slepotek/gridpath/grid"
)

// Selector scores unblocked cells by local connectivity and yields them
// in priority batches across repeated calls. The internal queue follows
// a strict two-phase lifecycle: populated lazily on the first request,
// then drain-only. It never rescans the world, so candidates are stale
// relative to grid mutations made after the first call; that staleness
// is part of the contract.
//
// A Selector is single-use: once drained, IsExhausted reports true
// permanently and further requests fail with ErrExhausted.
type Selector struct {
	queue     candidateHeap
	populated bool
	exhausted bool
}

// New returns an empty, unpopulated Selector.
func New() *Selector {
	return &Selector{}
}

// RequestCandidates returns up to n starting-point candidates ordered
// best-first. On the first call it scans every cell of w once and scores
// each unblocked cell by its unblocked 4-neighbor count; later calls
// drain the existing queue. If fewer than n candidates remain, all
// remaining candidates are returned and the selector becomes exhausted;
// draining the queue exactly also exhausts it.
//
// Validation (in order):
//  1. n must be greater than zero (ErrNoCandidatesRequested).
//  2. w must be non-nil (ErrNilWorld).
//  3. w must have at least one unblocked cell (ErrFullyBlocked).
//  4. n must not exceed w.TotalCells() (ErrTooManyCandidates).
//  5. the selector must not already be exhausted (ErrExhausted).
//
// Complexity: O(rows×cols × log(rows×cols)) on the populating call,
// O(n log q) afterwards for queue size q.
func (s *Selector) RequestCandidates(w *grid.World, n int) ([]grid.Coord, error) {
	// 1. Validate the request size.
	if n <= 0 {
		return nil, ErrNoCandidatesRequested
	}

	// 2. Validate the world.
	if w == nil {
		return nil, ErrNilWorld
	}

	// 3. A fully blocked world has nothing to offer.
	if w.UnblockedCells() == 0 {
		return nil, ErrFullyBlocked
	}

	// 4. Requests beyond the world's size are a configuration mistake.
	if n > w.TotalCells() {
		return nil, ErrTooManyCandidates
	}

	// 5. A drained selector stays drained.
	if s.exhausted {
		return nil, ErrExhausted
	}

	// 6. Lazy populate: scan once, column-major, scoring unblocked cells.
	if !s.populated {
		s.populate(w)
	}

	// 7. Drain up to n highest-priority entries.
	count := n
	if count > s.queue.Len() {
		count = s.queue.Len()
	}
	candidates := make([]grid.Coord, 0, count)
	for i := 0; i < count; i++ {
		candidates = append(candidates, heap.Pop(&s.queue).(candidate).coord)
	}

	// 8. Exact or over-drain both mark permanent exhaustion.
	if s.queue.Len() == 0 {
		s.exhausted = true
	}

	return candidates, nil
}

// populate performs the one-time scan, inserting every unblocked cell
// with its connectivity score. Scan order is column-major (outer columns,
// inner rows), a fixed deterministic order.
func (s *Selector) populate(w *grid.World) {
	s.queue = make(candidateHeap, 0, w.UnblockedCells())
	var row, col uint16
	for col = 0; col < w.Cols(); col++ {
		for row = 0; row < w.Rows(); row++ {
			unblocked, err := w.IsUnblocked(row, col)
			if err != nil || !unblocked {
				continue
			}
			s.queue = append(s.queue, candidate{
				score: w.CountUnblockedNeighbors(row, col),
				coord: grid.Coord{Row: row, Col: col},
			})
		}
	}
	heap.Init(&s.queue)
	s.populated = true
}

// IsExhausted reports whether every candidate has been yielded. It is
// false before and immediately after population, and flips to true
// permanently once the final candidate leaves the queue.
func (s *Selector) IsExhausted() bool {
	return s.exhausted
}
