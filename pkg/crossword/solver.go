package crossword

import (
	"context"
	"errors"
	"sort"
	"time"
)

// ErrSearchLimitReached indicates a solve terminated because it hit a
// configured node limit before exhausting the search space. The puzzle may
// still be solvable.
var ErrSearchLimitReached = errors.New("search limit reached")

// Assignment maps slots to the words placed in them. Assignments are partial
// during search and complete in any result returned by Solve.
type Assignment map[Variable]string

// Arc is an ordered pair of variables considered for consistency checking:
// Arc{x, y} asks whether every word in x's domain has support in y's domain.
type Arc [2]Variable

// Solver fills a single Crossword. It owns the per-variable word domains,
// seeded with the full candidate list and shrunk by the consistency phase,
// and the search state threaded through backtracking.
//
// A Solver is single use and not safe for concurrent access; create one
// Solver per Solve call. To fill several puzzles concurrently, give each its
// own Solver (see SolveAll).
type Solver struct {
	cw      *Crossword
	domains map[Variable]*WordSet

	nodeLimit int
	stats     SolverStats
}

// SolveOption configures a Solver for one Solve call.
type SolveOption func(*Solver)

// WithNodeLimit bounds the number of candidate placements the backtracking
// search may try. When the limit is reached, Solve returns
// ErrSearchLimitReached. A limit <= 0 means unlimited.
func WithNodeLimit(n int) SolveOption {
	return func(s *Solver) { s.nodeLimit = n }
}

// NewSolver creates a solver for the given puzzle with every variable's
// domain initialized to the full candidate word list.
func NewSolver(cw *Crossword) *Solver {
	s := &Solver{
		cw:      cw,
		domains: make(map[Variable]*WordSet, len(cw.variables)),
	}
	for _, v := range cw.variables {
		s.domains[v] = NewWordSet(cw.words)
	}
	return s
}

// Domain returns a copy of v's current domain.
func (s *Solver) Domain(v Variable) *WordSet {
	return s.domains[v].Clone()
}

// Stats returns a snapshot of the solver's counters.
func (s *Solver) Stats() SolverStats { return s.stats }

// EnforceNodeConsistency removes from every domain the words whose length
// does not match the variable. It never fails; a variable with no word of
// the right length is simply left with an empty domain, which a later AC-3
// pass or search reports as unsolvable. Idempotent.
func (s *Solver) EnforceNodeConsistency() {
	for _, v := range s.cw.variables {
		length := v.Length
		s.stats.WordsRemoved += s.domains[v].Filter(func(w string) bool {
			return len(w) == length
		})
	}
}

// Revise makes x arc-consistent with respect to y: every word in x's domain
// that has no supporting word in y's domain at their crossing cell is
// removed. If x and y do not cross, x is trivially consistent and nothing
// changes. Reports whether any word was removed.
func (s *Solver) Revise(x, y Variable) bool {
	s.stats.Revisions++
	xi, yi, ok := s.cw.Overlap(x, y)
	if !ok {
		return false
	}

	dx, dy := s.domains[x], s.domains[y]
	removed := dx.Filter(func(wx string) bool {
		for _, wy := range dy.words {
			if wx[xi] == wy[yi] {
				return true
			}
		}
		return false
	})
	s.stats.WordsRemoved += removed
	return removed > 0
}

// AC3 enforces arc consistency over the domains with a FIFO worklist. When
// arcs is nil the worklist is seeded with every (v, neighbor) pair; callers
// may instead supply an explicit initial arc set. Each popped arc (x, y) is
// revised; if x's domain empties the puzzle is unsolvable and AC3 returns
// false immediately. A successful revision re-enqueues (z, x) for every
// neighbor z of x other than y, since narrowing x may have invalidated their
// previously established consistency.
//
// Returns true when the worklist drains with no empty domain. Domains may
// still hold several candidates each; narrowing to a single choice per
// variable is the search engine's job. Terminates because every revision
// strictly shrinks a finite domain.
func (s *Solver) AC3(arcs []Arc) bool {
	var queue []Arc
	if arcs == nil {
		for _, v := range s.cw.variables {
			for _, n := range s.cw.Neighbors(v) {
				queue = append(queue, Arc{v, n})
			}
		}
	} else {
		queue = append(queue, arcs...)
	}

	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		s.stats.ArcsProcessed++

		x, y := arc[0], arc[1]
		if !s.Revise(x, y) {
			continue
		}
		if s.domains[x].Count() == 0 {
			return false
		}
		for _, z := range s.cw.Neighbors(x) {
			if z != y {
				queue = append(queue, Arc{z, x})
			}
		}
	}
	return true
}

// AssignmentComplete reports whether a assigns a word to every slot in the
// puzzle.
func (s *Solver) AssignmentComplete(a Assignment) bool {
	for _, v := range s.cw.variables {
		if _, ok := a[v]; !ok {
			return false
		}
	}
	return true
}

// Consistent reports whether the partial assignment a violates no constraint
// so far: no word is used twice anywhere in the grid, every placed word fits
// its slot's length, and every pair of assigned crossing slots agrees on the
// shared letter. Slots not yet assigned are ignored, so a partial assignment
// is consistent whenever nothing placed so far conflicts.
//
// Word distinctness is global: two slots may never hold the same word even
// when they do not cross.
func (s *Solver) Consistent(a Assignment) bool {
	seen := make(map[string]struct{}, len(a))
	for _, w := range a {
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}
	}

	for v, w := range a {
		if len(w) != v.Length {
			return false
		}
		for _, n := range s.cw.Neighbors(v) {
			nw, ok := a[n]
			if !ok {
				continue
			}
			vi, ni, _ := s.cw.Overlap(v, n)
			if w[vi] != nw[ni] {
				return false
			}
		}
	}
	return true
}

// SelectUnassignedVariable picks the next slot to fill: minimum remaining
// values first, ties broken by highest degree (most crossings), remaining
// ties by identity order. The puzzle must have at least one unassigned
// variable.
func (s *Solver) SelectUnassignedVariable(a Assignment) Variable {
	var best Variable
	found := false
	for _, v := range s.cw.variables {
		if _, assigned := a[v]; assigned {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		dv, db := s.domains[v].Count(), s.domains[best].Count()
		if dv < db || (dv == db && len(s.cw.Neighbors(v)) > len(s.cw.Neighbors(best))) {
			best = v
		}
	}
	if !found {
		panic("SelectUnassignedVariable called with complete assignment")
	}
	return best
}

// OrderDomainValues returns v's domain ordered by the least-constraining
// value heuristic: ascending by the number of words the candidate would rule
// out across v's unassigned neighbors (letter mismatch at the crossing
// cell). Within equal rule-out counts, words stay in alphabetical order.
// This reorders only; it never removes candidates.
func (s *Solver) OrderDomainValues(v Variable, a Assignment) []string {
	words := s.domains[v].Words()

	ruledOut := make(map[string]int, len(words))
	for _, n := range s.cw.Neighbors(v) {
		if _, assigned := a[n]; assigned {
			continue
		}
		vi, ni, _ := s.cw.Overlap(v, n)
		for _, w := range words {
			for _, nw := range s.domains[n].words {
				if w[vi] != nw[ni] {
					ruledOut[w]++
				}
			}
		}
	}

	sort.SliceStable(words, func(i, j int) bool {
		return ruledOut[words[i]] < ruledOut[words[j]]
	})
	return words
}

// Solve runs the full pipeline: node consistency, AC-3, then heuristic
// backtracking. It returns the complete assignment, or (nil, nil) when the
// puzzle has no solution. The only errors are ctx.Err() when the context is
// cancelled and ErrSearchLimitReached when a node limit set via
// WithNodeLimit is exhausted.
func (s *Solver) Solve(ctx context.Context, opts ...SolveOption) (Assignment, error) {
	for _, opt := range opts {
		opt(s)
	}
	start := time.Now()
	defer func() { s.stats.SearchTime = time.Since(start) }()

	s.EnforceNodeConsistency()
	if !s.AC3(nil) {
		return nil, nil
	}
	return s.backtrack(ctx, Assignment{})
}

// backtrack is the recursive search driver. It returns (nil, nil) when the
// current branch is exhausted without a solution.
func (s *Solver) backtrack(ctx context.Context, a Assignment) (Assignment, error) {
	if s.AssignmentComplete(a) {
		return a, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.nodeLimit > 0 && s.stats.NodesExplored >= s.nodeLimit {
		return nil, ErrSearchLimitReached
	}

	v := s.SelectUnassignedVariable(a)
	for _, w := range s.OrderDomainValues(v, a) {
		s.stats.NodesExplored++
		a[v] = w
		if s.Consistent(a) {
			result, err := s.backtrack(ctx, a)
			if err != nil {
				delete(a, v)
				return nil, err
			}
			if result != nil {
				return result, nil
			}
		}
		delete(a, v)
		s.stats.Backtracks++
	}
	return nil, nil
}
