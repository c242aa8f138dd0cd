// Package solver implements the IDA* search: a recursive depth-bounded
// DFS (search), a driver loop that raises the bound between iterations,
// and an optional persistent Frontier that carries nodes which exceeded
// the bound into the next iteration instead of re-expanding them.
package solver

import (
	"log"
	"math"

	"github.com/oduvan/puzzle15go/internal/puzzle"
)

// Options configures a solve. UseFrontier is on in DefaultOptions (no
// effect on correctness, per spec.md §6 — both modes find solutions of equal
// optimal length); Debug traces bound raises the way the original
// calculate.py's "Increasing bound to: ..." print did, but gated behind
// a flag rather than always-on.
type Options struct {
	UseFrontier bool
	Debug       bool
}

// DefaultOptions returns the recommended configuration: frontier enabled,
// tracing off.
func DefaultOptions() Options {
	return Options{UseFrontier: true}
}

const infinity = math.MaxInt

// moveOrder fixes the order moves are tried in at every search node.
// spec.md §9 calls out that this order determines which optimal solution
// is returned when several exist; the end-to-end scenarios of spec.md §8
// assume exactly DOWN, UP, RIGHT, LEFT.
var moveOrder = [4]puzzle.Move{puzzle.Down, puzzle.Up, puzzle.Right, puzzle.Left}

// Searcher runs one IDA* solve at a time. It is not safe for concurrent
// use by multiple goroutines on the same instance — create one Searcher
// per solve (or reuse a single one sequentially, calling Solve again);
// the loaded heuristic it holds is read-only and may be shared across
// many Searchers solving disjoint inputs concurrently, matching the
// read-only-PDB concurrency model of spec.md §5.
type Searcher struct {
	heuristic Heuristic
	opts      Options

	size  int
	path  []puzzle.State
	moves []puzzle.Move
}

// NewSearcher builds a Searcher using heuristic (typically a *pdb.Set,
// or ManhattanHeuristic as a weaker fallback) and opts.
func NewSearcher(heuristic Heuristic, opts Options) *Searcher {
	return &Searcher{heuristic: heuristic, opts: opts}
}

// Solve returns the optimal move list taking start to the goal, or
// ErrUnsolvable if the parity oracle (or an exhausted search, as a
// defensive backstop) proves none exists.
func (s *Searcher) Solve(start puzzle.State) ([]puzzle.Move, error) {
	if !puzzle.IsSolvable(start) {
		return nil, ErrUnsolvable
	}

	s.size = start.Size()
	goal := puzzle.Goal(s.size)
	if puzzle.Equal(start, goal) {
		return []puzzle.Move{}, nil
	}

	bound := s.heuristic.Heuristic(start)
	frontier := NewFrontier()

	for {
		var (
			found bool
			next  int
		)
		if !s.opts.UseFrontier || frontier.Len() == 0 {
			s.path = []puzzle.State{start}
			s.moves = nil
			found, next = s.search(frontier, bound)
		} else {
			found, next = s.scanFrontier(frontier, bound)
		}

		if found {
			return append([]puzzle.Move(nil), s.moves...), nil
		}
		if next == infinity {
			return nil, ErrUnsolvable
		}
		if s.opts.Debug {
			log.Printf("solver: raising bound %d -> %d", bound, next)
		}
		bound = next
	}
}

// search is the recursive depth-bounded DFS of spec.md §4.5. It operates
// on s.path/s.moves via in-place push/pop (the teacher's Searcher does
// the same undo-by-index recursion in internal/engine/search.go); the
// branch-cycle check walks s.path only, never a global visited set,
// since IDA*'s optimality depends on that (spec.md §9).
func (s *Searcher) search(frontier *Frontier, bound int) (found bool, cost int) {
	u := s.path[len(s.path)-1]
	depth := len(s.moves)
	f := depth + s.heuristic.Heuristic(u)
	if f > bound {
		if s.opts.UseFrontier {
			frontier.Store(puzzle.Compress(u), s.moves)
		}
		return false, f
	}
	if puzzle.Equal(u, puzzle.Goal(s.size)) {
		return true, 0
	}

	minExceeded := infinity
	for _, m := range moveOrder {
		if len(s.moves) > 0 && m == s.moves[len(s.moves)-1].Reverse() {
			continue
		}
		next, _, ok := u.Apply(m)
		if !ok {
			continue
		}
		if puzzle.Contains(s.path, next) {
			continue
		}
		if s.opts.UseFrontier {
			frontier.Delete(puzzle.Compress(next))
		}

		s.path = append(s.path, next)
		s.moves = append(s.moves, m)

		childFound, childCost := s.search(frontier, bound)
		if childFound {
			return true, 0
		}

		s.path = s.path[:len(s.path)-1]
		s.moves = s.moves[:len(s.moves)-1]

		if childCost < minExceeded {
			minExceeded = childCost
		}
	}
	return false, minExceeded
}

// scanFrontier runs the "subsequent iterations" branch of the driver
// loop: each frontier entry is re-scored against the new bound, either
// folded back into min_exceeded (still too deep) or resumed as a fresh
// search rooted at that entry's state and move sequence.
func (s *Searcher) scanFrontier(frontier *Frontier, bound int) (found bool, cost int) {
	minExceeded := infinity
	for _, e := range frontier.Snapshot() {
		state := puzzle.Decompress(e.key, s.size)
		f := len(e.moves) + s.heuristic.Heuristic(state)
		if f > bound {
			if f < minExceeded {
				minExceeded = f
			}
			continue
		}
		if !frontier.Contains(e.key) {
			continue
		}
		frontier.Delete(e.key)

		s.path = []puzzle.State{state}
		s.moves = append([]puzzle.Move(nil), e.moves...)

		childFound, childCost := s.search(frontier, bound)
		if childFound {
			return true, 0
		}
		if childCost < minExceeded {
			minExceeded = childCost
		}
	}
	return false, minExceeded
}
