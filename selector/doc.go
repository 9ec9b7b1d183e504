// Package selector ranks unblocked grid cells as starting-point
// candidates for path finding and yields them in priority batches.
//
// What:
//
//   - Selector: a stateful max-priority queue of (score, coordinate)
//     entries with a permanent exhaustion flag.
//   - Score: the cell's unblocked 4-neighbor count (0-4) at scan time;
//     better-connected cells make better search roots.
//   - Batch API: RequestCandidates(world, n) pops up to n best entries
//     per call until the queue drains.
//
// Why:
//
//   - Trying well-connected starting points first lets the search engine
//     succeed before touching isolated corners of the world.
//   - The drain-only lifecycle lets repeated search rounds walk the
//     whole candidate space exactly once, without rescanning.
//
// Lifecycle:
//
//   - Phase one: the first RequestCandidates call scans the world once
//     (column-major) and builds the queue.
//   - Phase two: subsequent calls only drain. The selector never rescans,
//     so entries are intentionally stale with respect to grid mutations
//     made after the first call.
//
// Complexity:
//
//   - Populating call: O(W×H log(W×H)) time, O(W×H) memory.
//   - Later calls: O(n log q) for queue size q.
//
// Errors:
//
//   - ErrNilWorld: nil world.
//   - ErrNoCandidatesRequested: n == 0.
//   - ErrFullyBlocked: no unblocked cell exists.
//   - ErrTooManyCandidates: n exceeds the world's total cell count.
//   - ErrExhausted: request after the queue fully drained.
//
// Ordering: score descending; equal scores break by higher row, then
// higher column. The tie-break preserves bit-for-bit batch parity with
// the original deployment; any deterministic order would do.
package selector
