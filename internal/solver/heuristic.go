package solver

import "github.com/oduvan/puzzle15go/internal/puzzle"

// Heuristic estimates the cost remaining from state to the goal. It must
// be admissible (never overestimate) for the driver loop's bound to
// converge to an optimal solution length; *pdb.Set satisfies this
// interface directly.
type Heuristic interface {
	Heuristic(state puzzle.State) int
}

// ManhattanHeuristic adapts puzzle.ManhattanToGoal to Heuristic, used as
// a fallback when no pattern database is loaded. It remains admissible on
// its own, just weaker than a PDB — acceptable for the CLI's convenience
// mode (spec.md §7 PdbMissing), not meant for library callers that need
// PDB-strength pruning.
type ManhattanHeuristic struct{}

func (ManhattanHeuristic) Heuristic(state puzzle.State) int {
	return puzzle.ManhattanToGoal(state)
}
