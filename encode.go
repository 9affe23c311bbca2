package sudoku

// ConstraintSet is the boolean model for one solve: exact-one groups over
// a fresh rank-3 decision tensor, plus unit constraints for the givens.
// Variable ids are 1-based; X[i,j,k], read as "cell (i,j) holds the k-th
// alphabet value", maps to id (i-1)·n² + (j-1)·n + k. The tensor is owned
// by a single solve invocation and discarded after decoding.
type ConstraintSet struct {
	n        int
	exactOne [][]int // each group: exactly one listed variable is true
	fixed    []int   // variables forced true
}

// NumVars returns the size of the decision tensor, n³.
func (cs *ConstraintSet) NumVars() int { return cs.n * cs.n * cs.n }

// NumConstraints returns the number of exact-one groups plus fixed-cell
// constraints.
func (cs *ConstraintSet) NumConstraints() int { return len(cs.exactOne) + len(cs.fixed) }

// varID flattens X[i,j,k] (all 1-based) to a decision variable id.
func varID(n, i, j, k int) int {
	return (i-1)*n*n + (j-1)*n + k
}

// Encode builds the full constraint set for g over a fresh decision
// tensor. It only reads the grid, and the emission order is fixed (cell,
// row, column and cage groups in row-major loop order, then givens in
// row-major cell order) so the model is reproducible call to call.
func Encode[T comparable](g *Grid[T]) *ConstraintSet {
	n := g.n
	cs := &ConstraintSet{n: n}

	// Each cell holds exactly one alphabet value.
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			grp := make([]int, 0, n)
			for k := 1; k <= n; k++ {
				grp = append(grp, varID(n, i, j, k))
			}
			cs.exactOne = append(cs.exactOne, grp)
		}
	}

	// Each value appears exactly once per row.
	for i := 1; i <= n; i++ {
		for k := 1; k <= n; k++ {
			grp := make([]int, 0, n)
			for j := 1; j <= n; j++ {
				grp = append(grp, varID(n, i, j, k))
			}
			cs.exactOne = append(cs.exactOne, grp)
		}
	}

	// Each value appears exactly once per column.
	for j := 1; j <= n; j++ {
		for k := 1; k <= n; k++ {
			grp := make([]int, 0, n)
			for i := 1; i <= n; i++ {
				grp = append(grp, varID(n, i, j, k))
			}
			cs.exactOne = append(cs.exactOne, grp)
		}
	}

	// Each value appears exactly once per cage. Cage (a,b) covers rows
	// (a-1)·Rows+1..a·Rows and columns (b-1)·Cols+1..b·Cols.
	for a := 1; a <= n/g.cage.Rows; a++ {
		for b := 1; b <= n/g.cage.Cols; b++ {
			for k := 1; k <= n; k++ {
				grp := make([]int, 0, n)
				for dr := 1; dr <= g.cage.Rows; dr++ {
					for dc := 1; dc <= g.cage.Cols; dc++ {
						grp = append(grp, varID(n, (a-1)*g.cage.Rows+dr, (b-1)*g.cage.Cols+dc, k))
					}
				}
				cs.exactOne = append(cs.exactOne, grp)
			}
		}
	}

	// Givens force their variable. Iterated row-major rather than in map
	// order, so the emitted model is deterministic.
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if v, ok := g.cells[Cell{i, j}]; ok {
				cs.fixed = append(cs.fixed, varID(n, i, j, g.index[v]+1))
			}
		}
	}

	return cs
}
