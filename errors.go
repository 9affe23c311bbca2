package sudoku

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by SolveFailure.
var (
	// ErrInfeasible means the engine proved the constraint set admits no
	// assignment.
	ErrInfeasible = errors.New("sudoku: no feasible assignment")
	// ErrEngine means the engine failed to produce a usable answer.
	ErrEngine = errors.New("sudoku: solver error")
)

// ConfigurationError reports an invalid grid configuration rejected at
// construction time.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "sudoku: invalid configuration: " + e.Reason
}

// DomainError reports a Set call rejected before mutating the grid.
type DomainError struct {
	Row, Col int
	Value    any
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("sudoku: cell (%d,%d): %s: %v", e.Row, e.Col, e.Reason, e.Value)
}

// SolveFailure reports that solving finished without installing an
// assignment. Err is ErrInfeasible or ErrEngine, the latter possibly
// wrapping the engine's own error.
type SolveFailure struct {
	Err error
}

func (e *SolveFailure) Error() string { return "sudoku: solve failed: " + e.Err.Error() }

func (e *SolveFailure) Unwrap() error { return e.Err }
