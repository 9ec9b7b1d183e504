// Package grid models a rectangular world of blocked and unblocked cells
// for path-finding over 4-directional movement.
//
// What:
//
//   - World wraps a flat bit-per-cell store (false = unblocked) with
//     maintained unblocked/blocked counters.
//   - Single-cell (SetBlocked) and batch (BlockMany) blocking operations.
//   - Bounds, passability, and 4-directional neighbor-count queries.
//   - Destructive Resize and Clear reinitialization.
//
// Why:
//
//   - Robotics routing: obstacle maps with cheap occupancy statistics.
//   - Game navigation: impassable terrain lookups during exploration.
//   - Search engines: the neighbor count doubles as a connectivity score
//     for starting-point selection.
//
// Complexity:
//
//   - New/Resize/Clear: O(rows×cols) time, O(rows×cols) memory.
//   - SetBlocked, IsUnblocked, InBounds, CountUnblockedNeighbors,
//     counters and ratio: O(1).
//   - BlockMany: O(k) for k coordinates.
//
// Invariant:
//
//   - UnblockedCells() + BlockedCells() == rows*cols after every
//     sequence of mutations.
//
// Errors:
//
//   - ErrInvalidDimension: a dimension is zero.
//   - ErrCapacityExceeded: rows*cols exceeds the addressable cell store.
//   - ErrEmptyGrid: cell query on a world with no cells.
//   - ErrOutOfBounds: coordinate outside the world extent.
//   - ErrDivideByZero: ratio requested while either counter is zero.
//
// Concurrency: a World is single-writer; mutating it while a search is
// in progress is outside the contract.
package grid
