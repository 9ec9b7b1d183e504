package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slepotek/gridpath/grid"
	"github.com/slepotek/gridpath/selector"
)

// openWorld builds a fully unblocked rows×cols world.
func openWorld(t *testing.T, rows, cols uint16) *grid.World {
	t.Helper()
	w, err := grid.New(rows, cols)
	if err != nil {
		t.Fatalf("grid.New(%d,%d): %v", rows, cols, err)
	}

	return w
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestRequestCandidates_ZeroRequested(t *testing.T) {
	s := selector.New()
	_, err := s.RequestCandidates(openWorld(t, 2, 2), 0)
	assert.ErrorIs(t, err, selector.ErrNoCandidatesRequested)
}

func TestRequestCandidates_NilWorld(t *testing.T) {
	s := selector.New()
	_, err := s.RequestCandidates(nil, 1)
	assert.ErrorIs(t, err, selector.ErrNilWorld)
}

func TestRequestCandidates_FullyBlocked(t *testing.T) {
	w := openWorld(t, 2, 2)
	w.BlockMany([]grid.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	})

	s := selector.New()
	_, err := s.RequestCandidates(w, 1)
	assert.ErrorIs(t, err, selector.ErrFullyBlocked)
}

func TestRequestCandidates_TooMany(t *testing.T) {
	s := selector.New()
	_, err := s.RequestCandidates(openWorld(t, 2, 2), 5)
	assert.ErrorIs(t, err, selector.ErrTooManyCandidates)
}

// ------------------------------------------------------------------------
// 2. Ordering Tests
// ------------------------------------------------------------------------

// TestRequestCandidates_PriorityOrder checks score-descending order on a
// grid with distinct connectivity classes: the open 3×3 center scores 4,
// edges 3, corners 2.
func TestRequestCandidates_PriorityOrder(t *testing.T) {
	w := openWorld(t, 3, 3)
	s := selector.New()

	got, err := s.RequestCandidates(w, 9)
	assert.NoError(t, err)
	assert.Len(t, got, 9)

	// Best candidate is the only score-4 cell.
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, got[0])
	// Next four are the score-3 edge midpoints, tie-broken by higher
	// row then higher column.
	assert.Equal(t, []grid.Coord{
		{Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 0}, {Row: 0, Col: 1},
	}, got[1:5])
	// Corners (score 2) come last, same tie-break.
	assert.Equal(t, []grid.Coord{
		{Row: 2, Col: 2}, {Row: 2, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 0},
	}, got[5:])
}

// TestRequestCandidates_TieBreak verifies the raw-pair tie-break on a
// grid where every cell has the same score.
func TestRequestCandidates_TieBreak(t *testing.T) {
	w := openWorld(t, 2, 2) // every cell scores 2
	s := selector.New()

	got, err := s.RequestCandidates(w, 4)
	assert.NoError(t, err)
	assert.Equal(t, []grid.Coord{
		{Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 0},
	}, got)
}

// ------------------------------------------------------------------------
// 3. Lifecycle Tests
// ------------------------------------------------------------------------

// TestSelector_BatchedDrainAndExhaustion walks a 2×2 world in batches of
// three: the second call returns the single remaining candidate and
// exhausts the selector; the third call fails.
func TestSelector_BatchedDrainAndExhaustion(t *testing.T) {
	w := openWorld(t, 2, 2)
	s := selector.New()
	assert.False(t, s.IsExhausted())

	first, err := s.RequestCandidates(w, 3)
	assert.NoError(t, err)
	assert.Len(t, first, 3)
	assert.False(t, s.IsExhausted(), "one candidate still queued")

	second, err := s.RequestCandidates(w, 3)
	assert.NoError(t, err)
	assert.Len(t, second, 1)
	assert.True(t, s.IsExhausted())

	_, err = s.RequestCandidates(w, 3)
	assert.ErrorIs(t, err, selector.ErrExhausted)
}

// TestSelector_ExactDrainExhausts verifies that draining the queue with
// an exactly-sized request also marks exhaustion.
func TestSelector_ExactDrainExhausts(t *testing.T) {
	w := openWorld(t, 2, 2)
	s := selector.New()

	got, err := s.RequestCandidates(w, 4)
	assert.NoError(t, err)
	assert.Len(t, got, 4)
	assert.True(t, s.IsExhausted())
}

// TestSelector_NoRescanAfterPopulate documents the staleness contract:
// blocking a cell after the first request does not remove it from the
// already-populated queue.
func TestSelector_NoRescanAfterPopulate(t *testing.T) {
	w := openWorld(t, 2, 2)
	s := selector.New()

	first, err := s.RequestCandidates(w, 1)
	assert.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}}, first)

	// Mutate the world after population.
	assert.True(t, w.SetBlocked(0, 0, true))

	rest, err := s.RequestCandidates(w, 3)
	assert.NoError(t, err)
	assert.Contains(t, rest, grid.Coord{Row: 0, Col: 0}, "stale entry must survive grid mutation")
}

// TestSelector_DoesNotMutateWorld confirms selection is read-only.
func TestSelector_DoesNotMutateWorld(t *testing.T) {
	w := openWorld(t, 3, 3)
	s := selector.New()
	_, err := s.RequestCandidates(w, 9)
	assert.NoError(t, err)
	assert.Equal(t, 9, w.UnblockedCells())
	assert.Equal(t, 0, w.BlockedCells())
}
