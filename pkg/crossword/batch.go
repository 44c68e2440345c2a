package crossword

import (
	"context"
	"sync"

	"github.com/gitrdm/crossfill/internal/parallel"
)

// SolveAll fills several independent puzzles concurrently on a bounded
// worker pool. Each puzzle gets its own Solver, so every individual solve
// remains single-threaded. results[i] is the assignment for puzzles[i], or
// nil when that puzzle has no solution.
//
// The first error from any solve (context cancellation) is returned together
// with whatever results completed; a nil error means every puzzle was either
// solved or proven unsatisfiable. workers <= 0 defaults to the CPU count.
func SolveAll(ctx context.Context, puzzles []*Crossword, workers int) ([]Assignment, error) {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Shutdown()

	results := make([]Assignment, len(puzzles))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for i, cw := range puzzles {
		i, cw := i, cw // per-iteration copies; module targets pre-1.22 loop semantics
		wg.Add(1)
		task := func() {
			defer wg.Done()
			a, err := NewSolver(cw).Solve(ctx)
			if err != nil {
				setErr(err)
				return
			}
			results[i] = a
		}
		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			setErr(err)
			break
		}
	}
	wg.Wait()

	return results, firstErr
}
