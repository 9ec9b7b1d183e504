package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slepotek/gridpath/grid"
	"github.com/slepotek/gridpath/route"
)

// build appends the given pairs to a fresh route.
func build(coords ...[2]uint16) *route.Route {
	r := route.New()
	for _, c := range coords {
		r.Append(c[0], c[1])
	}

	return r
}

func TestRoute_EmptyAccessors(t *testing.T) {
	r := route.New()
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())

	_, err := r.PopLast()
	assert.ErrorIs(t, err, route.ErrEmptyRoute)
	_, err = r.PeekLast()
	assert.ErrorIs(t, err, route.ErrEmptyRoute)
}

func TestRoute_StackDiscipline(t *testing.T) {
	r := build([2]uint16{0, 0}, [2]uint16{0, 1}, [2]uint16{1, 1})
	assert.Equal(t, 3, r.Len())

	tail, err := r.PeekLast()
	assert.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, tail)
	assert.Equal(t, 3, r.Len(), "peek must not remove")

	popped, err := r.PopLast()
	assert.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, popped)
	assert.Equal(t, 2, r.Len())

	tail, err = r.PeekLast()
	assert.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 0, Col: 1}, tail)
}

func TestRoute_Clear(t *testing.T) {
	r := build([2]uint16{2, 2}, [2]uint16{2, 3})
	r.Clear()
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())
	assert.True(t, r.IsContiguous())
}

// TestRoute_IsContiguous covers the truth table, including the
// underflow-safety pairs where the first coordinate is the larger one.
func TestRoute_IsContiguous(t *testing.T) {
	cases := []struct {
		name   string
		coords [][2]uint16
		want   bool
	}{
		{"Empty", nil, true},
		{"Singleton", [][2]uint16{{3, 3}}, true},
		{"AdjacentRight", [][2]uint16{{0, 0}, {0, 1}}, true},
		{"AdjacentDown", [][2]uint16{{0, 0}, {1, 0}}, true},
		{"DecreasingCol", [][2]uint16{{5, 10}, {5, 9}}, true},
		{"DecreasingRow", [][2]uint16{{8, 5}, {7, 5}}, true},
		{"Diagonal", [][2]uint16{{0, 0}, {1, 1}}, false},
		{"Gap", [][2]uint16{{0, 0}, {0, 2}}, false},
		{"Repeat", [][2]uint16{{1, 1}, {1, 1}}, false},
		{"BreakMidway", [][2]uint16{{0, 0}, {0, 1}, {2, 1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := build(tc.coords...)
			assert.Equal(t, tc.want, r.IsContiguous())
		})
	}
}

// TestRoute_CoordsSnapshot verifies the returned slice is forward-order
// and detached from later mutations.
func TestRoute_CoordsSnapshot(t *testing.T) {
	r := build([2]uint16{0, 0}, [2]uint16{0, 1})
	snap := r.Coords()
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, snap)

	r.Append(1, 1)
	assert.Len(t, snap, 2, "snapshot must not grow with the route")

	_, _ = r.PopLast()
	_, _ = r.PopLast()
	assert.Equal(t, grid.Coord{Row: 0, Col: 1}, snap[1], "snapshot must not shrink with the route")
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "", route.New().String())
	r := build([2]uint16{1, 2}, [2]uint16{1, 3})
	assert.Equal(t, "(1, 2) (1, 3)", r.String())
}
