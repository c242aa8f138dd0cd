// Command npuzzle-build constructs and persists disjoint additive pattern
// databases for a given board size and tile-group partition.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/stdr"

	"github.com/oduvan/puzzle15go/internal/pdb"
)

var (
	size       = flag.Int("size", 4, "board size N (board has N*N-1 tiles)")
	groupsFlag = flag.String("groups", "1,2,3,4,7|5,6,9,10,13|8,11,12,14,15", "partition as |-separated, comma-separated tile groups")
	dbPath     = flag.String("db", "", "pattern database store directory (default: platform data dir)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
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

	partition, err := parsePartition(*groupsFlag)
	if err != nil {
		log.Fatalf("invalid -groups: %v", err)
	}
	if err := partition.Validate(*size); err != nil {
		log.Fatalf("invalid partition for size %d: %v", *size, err)
	}

	dir := *dbPath
	if dir == "" {
		dir, err = pdb.DefaultStoreDir()
		if err != nil {
			log.Fatalf("resolve default store directory: %v", err)
		}
	}

	store, err := pdb.OpenStore(dir, stdr.New(log.Default()))
	if err != nil {
		log.Fatalf("open store at %s: %v", dir, err)
	}
	defer store.Close()

	log.Printf("building %d pattern groups for size %d into %s", len(partition), *size, dir)

	databases, err := pdb.BuildPartition(context.Background(), *size, partition, func(groupIndex int, p pdb.BuildProgress) {
		log.Printf("group %d: %s elapsed; iteration %s: depth %d, queue %s, visited %s, patterns %s",
			groupIndex, p.Elapsed.Round(time.Second),
			humanize.Comma(int64(p.Iteration)), p.Depth,
			humanize.Comma(int64(p.QueueLen)), humanize.Comma(int64(p.VisitedLen)),
			humanize.Comma(int64(p.Patterns)))
	})
	if err != nil {
		log.Fatalf("build partition: %v", err)
	}

	if err := store.Save(*size, partition, databases); err != nil {
		log.Fatalf("save databases: %v", err)
	}

	total := 0
	for i, db := range databases {
		log.Printf("group %d: %s patterns", i, humanize.Comma(int64(len(db))))
		total += len(db)
	}
	log.Printf("done: %s total patterns stored in %s", humanize.Comma(int64(total)), dir)
}

// parsePartition parses the -groups flag format "t1,t2,...|t1,t2,...|...".
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
