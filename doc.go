// Package sudoku encodes generalized Latin-square puzzles as boolean
// feasibility problems and decodes the solver's answer back into the grid.
//
// A Grid is an n×n board over an ordered alphabet of n distinct values,
// partitioned into rectangular cages (classic Sudoku: 9×9 board, 3×3
// cages, values 1..9). Encode lowers a grid into exact-one constraints
// over a rank-3 decision tensor X[i,j,k], read as "cell (i,j) holds the
// k-th alphabet value". An Engine, by default go-sat, searches for a
// satisfying assignment, and Decode installs it back into the grid.
//
// Typical use:
//
//	g, err := sudoku.New(9)
//	if err != nil { ... }
//	_ = g.Set(1, 1, 5)
//	if err := sudoku.Solve(g); err != nil { ... }
//	v, _ := g.Get(9, 9)
//
// Errors are typed so callers can branch on cause: ConfigurationError at
// construction, DomainError on rejected writes, and SolveFailure wrapping
// either ErrInfeasible or ErrEngine when no assignment was installed.
//
// A Grid has a single logical owner per solve. Neither grids nor
// in-flight solves may be shared across goroutines.
package sudoku
