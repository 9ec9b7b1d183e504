// Command pathfinder searches an NxM grid with blocked cells for a
// contiguous route of an exact requested length.
//
// Usage:
//
//	pathfinder -rows 8 -cols 8 -path-length 12 -blocked "1,0 2,0 1,1"
//	pathfinder -rows 100 -cols 100 -path-length 50 -blocked-file blocked_cells.txt
//	pathfinder -scenario run.yaml -measure
//
// "No path found" is a normal outcome and exits 0; configuration errors
// exit 1.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/slepotek/gridpath/dfs"
	"github.com/slepotek/gridpath/grid"
	"github.com/slepotek/gridpath/scenario"
)

func main() {
	var (
		rows         = flag.Uint("rows", 0, "number of grid rows")
		cols         = flag.Uint("cols", 0, "number of grid columns")
		pathLength   = flag.Int("path-length", 0, "target route length in cells")
		maxStarts    = flag.Int("max-starting-points", dfs.DefaultMaxStartingPoints, "starting points to try per batch")
		blocked      = flag.String("blocked", "", `blocked cells as space-separated "row,col" pairs`)
		blockedFile  = flag.String("blocked-file", "", "path to a blocked-cells file (one row,col per line, # comments)")
		scenarioPath = flag.String("scenario", "", "path to a YAML scenario file (overrides dimension flags)")
		measure      = flag.Bool("measure", false, "print search measurements (wall time and counters)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[pathfinder] ", log.LstdFlags)

	var cfg scenario.Scenario
	if strings.TrimSpace(*scenarioPath) != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			logger.Fatalf("load scenario: %v", err)
		}
		cfg = loaded
	} else {
		if *rows > 0xFFFF || *cols > 0xFFFF {
			logger.Fatalf("rows and cols must fit 16 bits")
		}
		cfg = scenario.Scenario{
			Rows:              uint16(*rows),
			Cols:              uint16(*cols),
			PathLength:        *pathLength,
			MaxStartingPoints: *maxStarts,
		}
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			logger.Fatalf("invalid parameters: %v", err)
		}
	}

	blockedCells := cfg.Blocked()
	if s := strings.TrimSpace(*blocked); s != "" {
		for _, tok := range strings.Fields(s) {
			c, err := scenario.ParseCell(tok)
			if err != nil {
				logger.Fatalf("parse -blocked: %v", err)
			}
			blockedCells = append(blockedCells, c)
		}
	}
	if strings.TrimSpace(*blockedFile) != "" {
		fromFile, err := scenario.LoadBlockedCells(*blockedFile)
		if err != nil {
			logger.Fatalf("load blocked cells: %v", err)
		}
		blockedCells = append(blockedCells, fromFile...)
	}

	world, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		logger.Fatalf("create world: %v", err)
	}
	if !world.BlockMany(blockedCells) {
		logger.Fatalf("block cells: a coordinate is outside the %dx%d world", cfg.Rows, cfg.Cols)
	}

	engine := dfs.New()
	opts := []dfs.Option{dfs.WithMaxStartingPoints(cfg.MaxStartingPoints)}
	var stats dfs.Stats
	if *measure {
		opts = append(opts, dfs.WithStats(&stats))
	}

	logger.Printf("%s: searching %dx%d world (%d blocked) for a route of length %d",
		engine.Name(), cfg.Rows, cfg.Cols, world.BlockedCells(), cfg.PathLength)

	rt, err := engine.FindPath(world, cfg.PathLength, opts...)
	if err != nil {
		logger.Fatalf("search: %v", err)
	}

	if rt.IsEmpty() {
		fmt.Println("no path found")
	} else {
		fmt.Printf("path of length %d: %s\n", rt.Len(), rt)
	}
	if *measure {
		fmt.Printf("measurements: duration=%s batches=%d candidates=%d expansions=%d backtracks=%d\n",
			stats.Duration, stats.Batches, stats.CandidatesTried, stats.CellsExpanded, stats.Backtracks)
	}
}
