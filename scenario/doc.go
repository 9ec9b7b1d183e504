// Package scenario is the file-loading collaborator of the pathfinder
// CLI. The search core itself owns no file format; this package only
// produces the inputs the core consumes.
//
// Two formats are supported:
//
//   - A YAML scenario file describing a whole run:
//
//     rows: 10
//     cols: 10
//     path_length: 15
//     max_starting_points: 10
//     blocked_cells:
//     - [1, 0]
//     - [2, 1]
//
//   - A plain-text blocked-cells file with one "row,col" pair per line;
//     blank lines and lines starting with '#' are skipped.
//
// Errors:
//
//   - ErrBadDimensions, ErrBadPathLength, ErrBlockedOutOfBounds: scenario
//     validation failures.
//   - ErrBadCellLine: malformed line in a blocked-cells file, reported
//     with its line number.
package scenario
