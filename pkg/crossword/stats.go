package crossword

// stats.go: counters describing a solving run.

import "time"

// SolverStats holds statistics about a solving run. A Solver accumulates
// stats across its consistency and search phases; read them after Solve
// returns via Solver.Stats.
type SolverStats struct {
	// Search statistics
	NodesExplored int           // candidate placements tried during backtracking
	Backtracks    int           // placements undone after a failed branch
	SearchTime    time.Duration // wall time of the whole Solve call

	// Propagation statistics
	Revisions     int // calls to Revise
	ArcsProcessed int // arcs popped from the AC-3 worklist
	WordsRemoved  int // words pruned by node and arc consistency
}
