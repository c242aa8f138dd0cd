package pdb

import (
	"context"
	"log"
	"math/bits"
	"time"

	"github.com/oduvan/puzzle15go/internal/puzzle"
	"golang.org/x/sync/errgroup"
)

func logFallback(groupIndex int, g TileGroup) {
	log.Printf("pdb: group %d %v has no entry for a requested pattern, falling back to Manhattan distance", groupIndex, g.Tiles)
}

// directions is the BFS successor order. Unlike the solver's IDA* search,
// the builder's move order has no effect on correctness (BFS explores the
// whole reachable component regardless of order), so it simply follows the
// teacher/original's DOWN, UP, RIGHT, LEFT convention for consistency.
var directions = []puzzle.Move{puzzle.Down, puzzle.Up, puzzle.Right, puzzle.Left}

// BuildProgress reports periodic BFS progress, mirroring the original
// builder's "{elapsed:.1f}s; {iteration:,}: depth - {move_count}, queue -
// {len(open_list):,}, ..." trace line.
type BuildProgress struct {
	GroupIndex int
	Elapsed    time.Duration
	Iteration  int
	Depth      int
	QueueLen   int
	VisitedLen int
	Patterns   int
}

const progressInterval = 100_000

// bfsNode is a queue entry: the full board state (needed to keep exploring
// through the whole board, not just the group's tiles), the group-move
// count accumulated so far, and the last move taken (to skip its reverse).
type bfsNode struct {
	state     puzzle.State
	moveCount int
	last      puzzle.Move
	hasLast   bool
}

// BuildGroup runs the BFS enumeration of spec.md §4.4 for a single tile
// group: starting from the goal state, it explores all four blank moves
// (skipping the immediate reverse of the last move), tracking visited
// positions by the tuple of the group's tiles plus the blank — this is
// exactly the information a PDB lookup can distinguish, so it keeps the
// exploration finite while still routing through the whole board. A
// pattern is (re-)recorded at the lower of its existing and newly found
// group-move count (the conservative "min" update; spec.md §9's Open
// Question resolves in favor of this over assuming first-touch
// optimality).
func BuildGroup(ctx context.Context, size int, group TileGroup, progress func(BuildProgress)) (Database, error) {
	goal := puzzle.Goal(size)
	db := make(Database)
	db[puzzle.Compress(puzzle.Pattern(goal, group.lookup))] = 0

	groupWithBlank := append([]int{0}, group.Tiles...)
	posBits := bits.Len(uint(size*size - 1))

	visited := make(map[uint64]struct{})
	visited[positionKey(goal, groupWithBlank, posBits)] = struct{}{}

	queue := []bfsNode{{state: goal}}
	start := time.Now()

	for iteration := 0; len(queue) > 0; iteration++ {
		if iteration%1024 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		node := queue[0]
		queue = queue[1:]

		if progress != nil && iteration > 0 && iteration%progressInterval == 0 {
			progress(BuildProgress{
				Elapsed:    time.Since(start),
				Iteration:  iteration,
				Depth:      node.moveCount,
				QueueLen:   len(queue),
				VisitedLen: len(visited),
				Patterns:   len(db),
			})
		}

		for _, m := range directions {
			if node.hasLast && m == node.last.Reverse() {
				continue
			}
			next, moved, ok := node.state.Apply(m)
			if !ok {
				continue
			}

			posKey := positionKey(next, groupWithBlank, posBits)
			if _, seen := visited[posKey]; seen {
				continue
			}
			visited[posKey] = struct{}{}

			moveCount := node.moveCount
			if group.Contains(moved) {
				moveCount++
				key := puzzle.Compress(puzzle.Pattern(next, group.lookup))
				if existing, ok := db[key]; !ok || uint8(moveCount) < existing {
					db[key] = uint8(moveCount)
				}
			}

			queue = append(queue, bfsNode{state: next, moveCount: moveCount, last: m, hasLast: true})
		}
	}

	return db, nil
}

// positionKey packs the flat-array positions of each tile in tiles (in a
// fixed order) into one integer, used as the BFS visited key: it captures
// exactly where the group's tiles and the blank sit, which is the only
// thing a pattern-restricted lookup can ever distinguish.
func positionKey(s puzzle.State, tiles []int, posBits int) uint64 {
	var key uint64
	for _, t := range tiles {
		key = (key << uint(posBits)) | uint64(s.IndexOf(t))
	}
	return key
}

// BuildPartition builds every group's database concurrently — groups are
// independent (no shared mutable state, per spec.md §5), so one goroutine
// per group, coordinated with errgroup, is both correct and exactly what
// the teacher's Lazy-SMP worker pool does for the analogous "independent
// work, shared nothing" case.
func BuildPartition(ctx context.Context, size int, partition Partition, progress func(groupIndex int, p BuildProgress)) ([]Database, error) {
	databases := make([]Database, len(partition))

	g, ctx := errgroup.WithContext(ctx)
	for i, group := range partition {
		i, group := i, group
		g.Go(func() error {
			db, err := BuildGroup(ctx, size, group, func(p BuildProgress) {
				if progress != nil {
					p.GroupIndex = i
					progress(i, p)
				}
			})
			if err != nil {
				return err
			}
			databases[i] = db
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return databases, nil
}
