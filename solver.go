package sudoku

import (
	"github.com/mitchellh/go-sat"
	"github.com/mitchellh/go-sat/cnf"
	"gonum.org/v1/gonum/stat/combin"
)

// Status is the terminal answer of an Engine.
type Status int

const (
	// Feasible means an assignment satisfying every constraint was found.
	Feasible Status = iota
	// Infeasible means the engine proved no assignment exists.
	Infeasible
	// EngineError means the engine failed to answer either way.
	EngineError
)

func (s Status) String() string {
	switch s {
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	case EngineError:
		return "engine error"
	default:
		return "unknown"
	}
}

// Result is an Engine's answer. Assignment is indexed by variable id
// (index 0 is unused) and is populated only when Status is Feasible. Err
// optionally carries the engine's own failure when Status is EngineError.
type Result struct {
	Status     Status
	Assignment []bool
	Err        error
}

// Engine is the boundary to the external combinatorial solver. An engine
// must be sound: a Feasible assignment satisfies every submitted
// constraint exactly. Solve blocks until a terminal status is reached.
type Engine interface {
	Solve(cs *ConstraintSet) Result
}

// SATEngine answers constraint sets with the go-sat solver. Each
// exact-one group is lowered to CNF as one at-least-one clause plus
// pairwise at-most-one clauses; fixed variables become unit clauses.
type SATEngine struct{}

// Solve implements Engine. go-sat always terminates with a definite
// answer, so the result status is Feasible or Infeasible.
func (SATEngine) Solve(cs *ConstraintSet) Result {
	var clauses [][]int
	for _, grp := range cs.exactOne {
		clauses = append(clauses, grp)
		if len(grp) < 2 {
			continue
		}
		for _, c := range combin.Combinations(len(grp), 2) {
			clauses = append(clauses, []int{-grp[c[0]], -grp[c[1]]})
		}
	}
	for _, v := range cs.fixed {
		clauses = append(clauses, []int{v})
	}

	s := sat.New()
	s.AddFormula(cnf.NewFormulaFromInts(clauses))
	if !s.Solve() {
		return Result{Status: Infeasible}
	}

	assignment := make([]bool, cs.NumVars()+1)
	for v, val := range s.Assignments() {
		if v >= 1 && v < len(assignment) {
			assignment[v] = val
		}
	}
	return Result{Status: Feasible, Assignment: assignment}
}
