// Package route represents a contiguous candidate path through a grid
// world as an ordered coordinate sequence with stack discipline.
//
// What:
//
//   - Route: append/pop/peek restricted to the tail, full forward
//     iteration via Coords(), on-demand IsContiguous() validation.
//   - Contiguity means every consecutive pair is 4-directionally
//     adjacent: |Δrow| + |Δcol| == 1, computed underflow-safe.
//
// Why:
//
//   - Depth-first backtracking needs O(1) grow/shrink at the tail.
//   - Callers need a stable, restartable view for rendering and checks.
//
// Complexity:
//
//   - Append, PopLast, PeekLast, Len, IsEmpty: O(1).
//   - IsContiguous, Coords, String: O(n).
//
// Errors:
//
//   - ErrEmptyRoute: PopLast or PeekLast on an empty route.
//
// A route is created empty per search attempt, mutated in place during
// recursion, and either discarded on failure or handed to the caller on
// success. "No path found" is represented by an empty route, not an error.
package route
