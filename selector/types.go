// Package selector defines the candidate types, ordering, and sentinel
// errors for priority-based starting-point selection.
package selector

import (
	"errors"

	"github.com/slepotek/gridpath/grid"
)

// Sentinel errors for candidate selection.
var (
	// ErrNilWorld indicates a nil *grid.World was passed to RequestCandidates.
	ErrNilWorld = errors.New("selector: world is nil")

	// ErrNoCandidatesRequested indicates a request for zero candidates.
	ErrNoCandidatesRequested = errors.New("selector: number of candidates must be greater than zero")

	// ErrFullyBlocked indicates the world has no unblocked cells to select from.
	ErrFullyBlocked = errors.New("selector: world has no unblocked cells")

	// ErrTooManyCandidates indicates a request exceeding the world's total cell count.
	ErrTooManyCandidates = errors.New("selector: number of candidates exceeds total cells")

	// ErrExhausted indicates a request after the selector already drained
	// every candidate. Signals caller misuse of the stateful selector.
	ErrExhausted = errors.New("selector: all candidates have been exhausted")
)

// candidate pairs a connectivity score with the cell it belongs to.
// The score is the cell's unblocked 4-neighbor count (0-4) at scan time.
type candidate struct {
	score int
	coord grid.Coord
}

// candidateHeap is a max-heap of candidates ordered by score descending.
// Ties break by comparing the coordinate pair itself: higher row first,
// then higher column. The tie-break mirrors raw pair comparison in the
// original deployment and is kept for deterministic batch output.
//
// Like the lazy priority queues elsewhere in this module's lineage, the
// heap is drained destructively; entries are never re-keyed.
type candidateHeap []candidate

// Len returns the number of candidates in the heap.
func (h candidateHeap) Len() int { return len(h) }

// Less ranks i before j on higher score, then higher row, then higher column.
func (h candidateHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	if h[i].coord.Row != h[j].coord.Row {
		return h[i].coord.Row > h[j].coord.Row
	}

	return h[i].coord.Col > h[j].coord.Col
}

// Swap swaps two heap entries.
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a candidate.
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

// Pop removes and returns the highest-priority candidate.
// Called by heap.Pop.
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
