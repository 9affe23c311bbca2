package sudoku

// Solve fills every empty cell of g using the default SAT engine. On
// success g holds a complete assignment honoring its givens; on failure
// it is left unmodified and a *SolveFailure is returned.
func Solve[T comparable](g *Grid[T]) error {
	return SolveWith(g, SATEngine{})
}

// SolveWith runs the encode, solve and decode pipeline against a caller
// supplied engine. The call blocks until the engine reaches a terminal
// status; the decision tensor lives only for the duration of the call.
func SolveWith[T comparable](g *Grid[T], e Engine) error {
	return Decode(g, e.Solve(Encode(g)))
}
