// Command npuzzle-solve reads an N-puzzle board, finds an optimal
// sequence of blank moves via IDA*, and prints one move per line.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/go-logr/stdr"

	"github.com/oduvan/puzzle15go/internal/pdb"
	"github.com/oduvan/puzzle15go/internal/puzzle"
	"github.com/oduvan/puzzle15go/internal/solver"
)

var (
	stateFlag   = flag.String("state", "", "puzzle state as whitespace-separated tiles, row-major, 0 = blank (default: read a line from stdin)")
	groupsFlag  = flag.String("groups", "1,2,3,4,7|5,6,9,10,13|8,11,12,14,15", "partition used to look up the stored pattern database, | and , separated")
	dbPath      = flag.String("db", "", "pattern database store directory (default: platform data dir)")
	useFrontier = flag.Bool("frontier", true, "carry a persistent frontier across IDA* iterations")
	debug       = flag.Bool("debug", false, "trace bound raises to stderr")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	line := *stateFlag
	if line == "" {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
		if !scanner.Scan() {
			log.Fatal("no puzzle state given on stdin or via -state")
		}
		line = scanner.Text()
	}

	tiles, err := parseTiles(line)
	if err != nil {
		log.Fatalf("invalid input: %v", err)
	}
	state, err := puzzle.NewState(tiles)
	if err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	heuristic := loadHeuristic(state.Size())

	searcher := solver.NewSearcher(heuristic, solver.Options{UseFrontier: *useFrontier, Debug: *debug})
	solution, err := searcher.Solve(state)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			fmt.Println("no solution")
			os.Exit(1)
		}
		log.Fatalf("solve: %v", err)
	}

	for _, m := range solution {
		fmt.Println(m)
	}
}

// loadHeuristic loads the stored pattern database for size from the
// store, falling back to plain Manhattan distance with a warning if none
// is present. Library callers should treat a missing PDB as fatal
// (spec.md §7 PdbMissing); the CLI relaxes that so it stays usable
// without a pre-built database.
func loadHeuristic(size int) solver.Heuristic {
	partition, err := parsePartition(*groupsFlag)
	if err != nil {
		log.Fatalf("invalid -groups: %v", err)
	}
	if err := partition.Validate(size); err != nil {
		log.Fatalf("invalid partition for size %d: %v", size, err)
	}

	dir := *dbPath
	if dir == "" {
		dir, err = pdb.DefaultStoreDir()
		if err != nil {
			log.Printf("warning: resolve default store directory: %v; using Manhattan distance", err)
			return solver.ManhattanHeuristic{}
		}
	}

	store, err := pdb.OpenStore(dir, stdr.New(log.Default()))
	if err != nil {
		log.Printf("warning: open store at %s: %v; using Manhattan distance", dir, err)
		return solver.ManhattanHeuristic{}
	}
	defer store.Close()

	set, err := store.Load(size, partition)
	if err != nil {
		log.Printf("warning: no pattern database for size %d at %s: %v; using Manhattan distance", size, dir, err)
		return solver.ManhattanHeuristic{}
	}
	return set
}

func parseTiles(line string) ([]int, error) {
	fields := strings.Fields(line)
	tiles := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", f, err)
		}
		tiles[i] = v
	}
	return tiles, nil
}

func parsePartition(s string) (pdb.Partition, error) {
	groupStrs := strings.Split(s, "|")
	partition := make(pdb.Partition, 0, len(groupStrs))
	for _, g := range groupStrs {
		var tiles []int
		for _, tok := range strings.Split(g, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("tile %q: %w", tok, err)
			}
			tiles = append(tiles, v)
		}
		if len(tiles) == 0 {
			return nil, fmt.Errorf("empty tile group in %q", s)
		}
		partition = append(partition, pdb.NewTileGroup(tiles))
	}
	return partition, nil
}
