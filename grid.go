package sudoku

import (
	"fmt"
	"math"
)

// CageShape is the size of the rectangular blocks that partition the
// grid. The zero value selects the classic √n×√n shape.
type CageShape struct {
	Rows, Cols int
}

// Cell identifies a grid coordinate. Coordinates are 1-indexed.
type Cell struct {
	Row, Col int
}

// Grid is an n×n puzzle board over an ordered alphabet of n distinct
// values. Cells are sparse: a cell reads back as empty until a value is
// stored or a solve installs the full assignment. A grid has a single
// logical owner; concurrent mutation is not supported.
type Grid[T comparable] struct {
	n        int
	cage     CageShape
	alphabet []T
	index    map[T]int // value -> 0-based position in alphabet
	cells    map[Cell]T
}

// New returns a classic n×n grid with √n×√n cages and the alphabet 1..n.
func New(n int) (*Grid[int], error) {
	if n < 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("grid size %d, want at least 1", n)}
	}
	alphabet := make([]int, n)
	for i := range alphabet {
		alphabet[i] = i + 1
	}
	return NewGrid(n, CageShape{}, alphabet)
}

// NewGrid returns an n×n grid with the given cage shape and alphabet.
// A zero cage selects the classic √n×√n shape, which requires n to be a
// perfect square. Otherwise the cage dimensions must each divide n and
// the cage must hold exactly n cells, so that every cage can contain the
// full alphabet once. The alphabet must hold exactly n distinct values.
func NewGrid[T comparable](n int, cage CageShape, alphabet []T) (*Grid[T], error) {
	if n < 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("grid size %d, want at least 1", n)}
	}
	if cage == (CageShape{}) {
		sq := int(math.Sqrt(float64(n)))
		if sq*sq != n {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("size %d is not a perfect square; an explicit cage shape is required", n)}
		}
		cage = CageShape{Rows: sq, Cols: sq}
	}
	if cage.Rows < 1 || cage.Cols < 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("cage shape %dx%d, want positive dimensions", cage.Rows, cage.Cols)}
	}
	if n%cage.Rows != 0 || n%cage.Cols != 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("cage shape %dx%d does not tile a %dx%d grid", cage.Rows, cage.Cols, n, n)}
	}
	if cage.Rows*cage.Cols != n {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("cage shape %dx%d holds %d cells, want %d", cage.Rows, cage.Cols, cage.Rows*cage.Cols, n)}
	}
	if len(alphabet) != n {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("alphabet has %d values, want %d", len(alphabet), n)}
	}
	index := make(map[T]int, n)
	for i, v := range alphabet {
		if _, dup := index[v]; dup {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("alphabet contains %v more than once", v)}
		}
		index[v] = i
	}
	return &Grid[T]{
		n:        n,
		cage:     cage,
		alphabet: append([]T(nil), alphabet...),
		index:    index,
		cells:    make(map[Cell]T),
	}, nil
}

// Size returns the side length n.
func (g *Grid[T]) Size() int { return g.n }

// Cage returns the cage shape.
func (g *Grid[T]) Cage() CageShape { return g.cage }

// Alphabet returns a copy of the ordered value alphabet.
func (g *Grid[T]) Alphabet() []T { return append([]T(nil), g.alphabet...) }

// Get reads the value at (row, col). The second return is false when the
// cell is empty or the coordinates are out of range; in-range reads never
// fail.
func (g *Grid[T]) Get(row, col int) (T, bool) {
	v, ok := g.cells[Cell{row, col}]
	return v, ok
}

// Set stores v at (row, col), overwriting any previous value there. It
// returns a DomainError, leaving the grid unchanged, when the coordinates
// fall outside [1..n] or v is not an alphabet member.
func (g *Grid[T]) Set(row, col int, v T) error {
	if row < 1 || row > g.n || col < 1 || col > g.n {
		return &DomainError{Row: row, Col: col, Value: v, Reason: "coordinates out of range"}
	}
	if _, ok := g.index[v]; !ok {
		return &DomainError{Row: row, Col: col, Value: v, Reason: "value not in alphabet"}
	}
	g.cells[Cell{row, col}] = v
	return nil
}

// Validate reports row, column and cage conflicts among the currently
// filled cells, without solving. It returns the coordinates of every cell
// that repeats an earlier value within one of its groups, and whether the
// grid is conflict-free. A cell conflicting in several groups is reported
// once per group.
func (g *Grid[T]) Validate() ([]Cell, bool) {
	var conf []Cell
	seen := make(map[T]bool, g.n)
	mark := func(row, col int) {
		v, ok := g.cells[Cell{row, col}]
		if !ok {
			return
		}
		if seen[v] {
			conf = append(conf, Cell{row, col})
			return
		}
		seen[v] = true
	}
	for r := 1; r <= g.n; r++ {
		clear(seen)
		for c := 1; c <= g.n; c++ {
			mark(r, c)
		}
	}
	for c := 1; c <= g.n; c++ {
		clear(seen)
		for r := 1; r <= g.n; r++ {
			mark(r, c)
		}
	}
	for a := 0; a < g.n/g.cage.Rows; a++ {
		for b := 0; b < g.n/g.cage.Cols; b++ {
			clear(seen)
			for dr := 1; dr <= g.cage.Rows; dr++ {
				for dc := 1; dc <= g.cage.Cols; dc++ {
					mark(a*g.cage.Rows+dr, b*g.cage.Cols+dc)
				}
			}
		}
	}
	return conf, len(conf) == 0
}
