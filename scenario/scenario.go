// Package scenario loads search scenarios for the pathfinder CLI: a
// YAML description of the world and target route, and the plain-text
// blocked-cells file format.
package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/slepotek/gridpath/grid"
)

// Sentinel errors for scenario validation and parsing.
var (
	// ErrBadDimensions indicates a zero row or column count in a scenario.
	ErrBadDimensions = errors.New("scenario: rows and cols must both be greater than zero")

	// ErrBadPathLength indicates a zero or oversized target length.
	ErrBadPathLength = errors.New("scenario: path_length must be positive and within the world")

	// ErrBlockedOutOfBounds indicates a blocked cell outside the world extent.
	ErrBlockedOutOfBounds = errors.New("scenario: blocked cell out of bounds")

	// ErrBadCellLine indicates a malformed line in a blocked-cells file.
	ErrBadCellLine = errors.New("scenario: malformed blocked-cell line, want \"row,col\"")
)

// DefaultMaxStartingPoints mirrors the search engine's default batch size.
const DefaultMaxStartingPoints = 5

// Scenario describes one search run: world dimensions, the target route
// length, the starting-point batch size, and the cells to block.
type Scenario struct {
	Rows              uint16      `yaml:"rows"`
	Cols              uint16      `yaml:"cols"`
	PathLength        int         `yaml:"path_length"`
	MaxStartingPoints int         `yaml:"max_starting_points,omitempty"`
	BlockedCells      [][2]uint16 `yaml:"blocked_cells,omitempty"`
}

// Load reads and validates a YAML scenario file.
func Load(path string) (Scenario, error) {
	var s Scenario
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err = yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("scenario %s: %w", path, err)
	}
	s.Normalize()
	if err = s.Validate(); err != nil {
		return s, fmt.Errorf("scenario %s: %w", path, err)
	}

	return s, nil
}

// Normalize fills defaulted fields.
func (s *Scenario) Normalize() {
	if s.MaxStartingPoints <= 0 {
		s.MaxStartingPoints = DefaultMaxStartingPoints
	}
}

// Validate checks the scenario against the world it describes.
func (s *Scenario) Validate() error {
	if s.Rows == 0 || s.Cols == 0 {
		return ErrBadDimensions
	}
	total := int(s.Rows) * int(s.Cols)
	if s.PathLength <= 0 || s.PathLength > total {
		return fmt.Errorf("%w: got %d for %d cells", ErrBadPathLength, s.PathLength, total)
	}
	for _, c := range s.BlockedCells {
		if c[0] >= s.Rows || c[1] >= s.Cols {
			return fmt.Errorf("%w: (%d,%d)", ErrBlockedOutOfBounds, c[0], c[1])
		}
	}

	return nil
}

// Blocked returns the scenario's blocked cells as grid coordinates.
func (s *Scenario) Blocked() []grid.Coord {
	coords := make([]grid.Coord, 0, len(s.BlockedCells))
	for _, c := range s.BlockedCells {
		coords = append(coords, grid.Coord{Row: c[0], Col: c[1]})
	}

	return coords
}

// LoadBlockedCells parses a blocked-cells text file: one "row,col" pair
// per line, with blank lines and lines starting with '#' skipped.
// Malformed lines are rejected with their line number.
func LoadBlockedCells(path string) ([]grid.Coord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var coords []grid.Coord
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := ParseCell(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		coords = append(coords, c)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return coords, nil
}

// ParseCell parses a single "row,col" pair. Surrounding braces are
// accepted ("{row,col}") so shell-quoted CLI arguments parse unchanged.
func ParseCell(text string) (grid.Coord, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadCellLine, text)
	}
	row, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 16)
	if err != nil {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadCellLine, text)
	}
	col, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 16)
	if err != nil {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadCellLine, text)
	}

	return grid.Coord{Row: uint16(row), Col: uint16(col)}, nil
}
