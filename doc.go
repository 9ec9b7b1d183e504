// Package gridpath finds contiguous routes of an exact requested length
// through an NxM grid of cells, some of which are impassable, using
// 4-directional movement.
//
// 🚀 What is gridpath?
//
//	A small, deterministic search library plus a CLI:
//		• grid:     the mutable cell world — blocked/unblocked state,
//		            occupancy counters, bounds and neighbor queries
//		• route:    an ordered coordinate sequence with stack discipline
//		            and on-demand contiguity validation
//		• selector: priority-batched starting-point selection, scored by
//		            local connectivity
//		• dfs:      the depth-first search engine with backtracking, and
//		            the Algorithm capability for substitutable strategies
//		• scenario: YAML scenarios and blocked-cells files for the CLI
//		• cmd/pathfinder: the command-line entrypoint
//
// ✨ Why gridpath?
//
//   - Feasible-route search: a route of a specific length, not the
//     shortest one — robotics routing, game navigation, coverage checks
//   - Deterministic output – fixed scan, tie-break, and direction orders
//   - "No path found" is a value, not an error – an empty route
//   - Pure Go core – the only runtime dependency is the YAML loader in
//     the scenario collaborator
//
// Quick ASCII example, a 3×3 world with one blocked cell (#) and a
// found route of length 4:
//
//	. 2 3
//	. 1 4
//	. # .
//
// Candidate selection is O((N×M) log(N×M)); the search itself is
// exponential in target length in the worst case, so callers bound grid
// size and target length externally.
//
//	go get github.com/slepotek/gridpath
package gridpath
