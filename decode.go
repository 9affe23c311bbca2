package sudoku

import "fmt"

// Decode installs a feasible result into g: for every cell it finds the
// unique true decision variable and stores the corresponding alphabet
// value. On Infeasible, EngineError, or a malformed assignment the grid
// is left unmodified and a *SolveFailure is returned; callers distinguish
// the causes with errors.Is against ErrInfeasible and ErrEngine.
func Decode[T comparable](g *Grid[T], res Result) error {
	switch res.Status {
	case Feasible:
	case Infeasible:
		return &SolveFailure{Err: ErrInfeasible}
	case EngineError:
		if res.Err != nil {
			return &SolveFailure{Err: fmt.Errorf("%w: %w", ErrEngine, res.Err)}
		}
		return &SolveFailure{Err: ErrEngine}
	default:
		return &SolveFailure{Err: fmt.Errorf("%w: unknown status %d", ErrEngine, res.Status)}
	}

	n := g.n
	if len(res.Assignment) < n*n*n+1 {
		return &SolveFailure{Err: fmt.Errorf("%w: assignment holds %d variables, want %d", ErrEngine, len(res.Assignment), n*n*n+1)}
	}

	// Stage the whole decode before touching g, so an unsound assignment
	// cannot leave the grid half-written.
	staged := make([]T, 0, n*n)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			k, ok := uniqueValue(res.Assignment, n, i, j)
			if !ok {
				return &SolveFailure{Err: fmt.Errorf("%w: no unique value for cell (%d,%d)", ErrEngine, i, j)}
			}
			staged = append(staged, g.alphabet[k-1])
		}
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			g.cells[Cell{i, j}] = staged[(i-1)*n+j-1]
		}
	}
	return nil
}

// uniqueValue finds the single k with X[i,j,k] true, if exactly one
// exists.
func uniqueValue(assignment []bool, n, i, j int) (int, bool) {
	found := 0
	for k := 1; k <= n; k++ {
		if assignment[varID(n, i, j, k)] {
			if found != 0 {
				return 0, false
			}
			found = k
		}
	}
	return found, found != 0
}
