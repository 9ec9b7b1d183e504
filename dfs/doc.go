// Package dfs finds a contiguous route of an exact requested length
// through a grid world using depth-first search with backtracking.
//
// What:
//
//   - Algorithm: the substitutable search-strategy capability
//     (FindPath + Name); DFS is one variant implementation.
//   - FindPath(world, targetLength, opts...): pulls starting-point
//     batches from a fresh selector, then for each candidate grows and
//     shrinks a route by recursion, marking and unmarking visited cells.
//   - Direction order is fixed: up, right, down, left.
//   - The first success returns immediately; exhausting every candidate
//     returns an empty route with a nil error.
//
// Why:
//
//   - Robotics routing and game navigation where a feasible route of a
//     specific length — not necessarily the shortest — must be found
//     among obstacles.
//
// State machine of one FindPath call:
//
//	Init → SelectingStart → Exploring ⇄ Backtracking → {Found | Exhausted}
//
// Complexity:
//
//   - Time: O(4^L × S) worst case for target length L and S starting
//     points tried; no pruning beyond the visited set.
//   - Memory: O(W×H) visited markers plus O(L) recursion depth per attempt.
//
// Options:
//
//   - WithMaxStartingPoints(n): starting-point batch size (default 5).
//   - WithStats(s): per-call diagnostics sink (batches, candidates,
//     expansions, backtracks, wall time). Instrumentation is explicit
//     per-call configuration; there is no process-wide toggle.
//
// Errors:
//
//   - ErrNilWorld: nil world.
//   - ErrZeroTargetLength: target length of zero.
//   - ErrTargetExceedsGrid: target length beyond the world's cell count.
//   - selector errors are wrapped and propagated (a fully blocked world
//     surfaces selector.ErrFullyBlocked).
//
// "No path found" is never an error: it is an empty route.
//
// Concurrency: fully synchronous and single-threaded. Each call owns its
// selector, visited markers, and route; concurrent calls on independent
// worlds share nothing. Mutating a world mid-search is outside the
// contract. Worst-case cost is exponential in target length, so callers
// bound grid size and target length externally; there is no internal
// cancellation or timeout.
package dfs
