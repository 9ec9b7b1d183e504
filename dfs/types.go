// Package dfs defines the search-engine types and options: the
// Algorithm capability, functional options for batch size and
// instrumentation, and sentinel errors.
package dfs

import (
	"errors"
	"time"

	"github.com/slepotek/gridpath/grid"
	"github.com/slepotek/gridpath/route"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilWorld is returned when a nil *grid.World is passed to FindPath.
	ErrNilWorld = errors.New("dfs: world is nil")

	// ErrZeroTargetLength indicates a requested route length of zero.
	ErrZeroTargetLength = errors.New("dfs: target length must be greater than zero")

	// ErrTargetExceedsGrid indicates a target length larger than the
	// world's total cell count; no simple route that long can exist.
	ErrTargetExceedsGrid = errors.New("dfs: target length exceeds total cells")

	// ErrBadMaxStartingPoints indicates a zero batch size, which would
	// make every candidate request invalid.
	ErrBadMaxStartingPoints = errors.New("dfs: MaxStartingPoints must be greater than zero")
)

// DefaultMaxStartingPoints is the starting-point batch size used when
// WithMaxStartingPoints is not supplied.
const DefaultMaxStartingPoints = 5

// Algorithm is the capability a path-finding strategy must provide so
// alternative search strategies can be substituted for one another.
// DFS is one variant implementation.
type Algorithm interface {
	// FindPath searches w for a contiguous route of exactly targetLength
	// cells. A nil error with an empty route means "no path found".
	FindPath(w *grid.World, targetLength int, opts ...Option) (*route.Route, error)

	// Name returns the human-readable strategy name for display/logging.
	Name() string
}

// Stats collects per-call search diagnostics. Supply one via WithStats;
// the engine fills it in place, replacing any previous contents.
type Stats struct {
	// Batches counts starting-point batches requested from the selector.
	Batches int

	// CandidatesTried counts starting points a search attempt began from.
	CandidatesTried int

	// CellsExpanded counts route extensions, successful or later undone.
	CellsExpanded int

	// Backtracks counts extensions undone on dead ends.
	Backtracks int

	// Duration is the wall time of the whole FindPath call.
	Duration time.Duration
}

// Option configures optional behavior of a FindPath call.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// MaxStartingPoints bounds each candidate batch pulled from the
	// selector. Default is DefaultMaxStartingPoints.
	MaxStartingPoints int

	// Stats, if non-nil, receives search diagnostics for this call.
	// Instrumentation is per-call configuration, never process state.
	Stats *Stats
}

// DefaultOptions returns an Options struct with:
//   - MaxStartingPoints = DefaultMaxStartingPoints
//   - no Stats sink
func DefaultOptions() Options {
	return Options{
		MaxStartingPoints: DefaultMaxStartingPoints,
		Stats:             nil,
	}
}

// WithMaxStartingPoints returns an Option that sets the per-batch
// starting-point limit. Must be positive; zero or negative values cause
// ErrBadMaxStartingPoints to be raised as a panic, signaling invalid
// configuration at the call site.
func WithMaxStartingPoints(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxStartingPoints.Error())
		}
		o.MaxStartingPoints = n
	}
}

// WithStats returns an Option that installs s as the diagnostics sink
// for the call. Passing nil has no effect.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		if s != nil {
			o.Stats = s
		}
	}
}
