package machine

import (
	"sort"
	"strings"

	"github.com/aretw0/palintape/pkg/domain"
)

// Tape is a sparse, bidirectionally unbounded symbol store. Any position
// not present in the map reads as blank; writing blank removes the entry,
// which is observably identical to storing it.
type Tape struct {
	cells map[int]domain.Symbol

	// Extremes of every position that has ever held a non-blank symbol.
	// Display-only; (0, 0) while nothing has been written.
	min, max int
	touched  bool
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{cells: make(map[int]domain.Symbol)}
}

// NewTapeFromInput creates a tape with symbol i of input at position i.
func NewTapeFromInput(input []domain.Symbol) *Tape {
	t := NewTape()
	for i, sym := range input {
		t.Set(i, sym)
	}
	return t
}

// Get returns the symbol at pos, blank if unset. Never fails.
func (t *Tape) Get(pos int) domain.Symbol {
	return t.cells[pos]
}

// Set stores sym at pos with overwrite semantics. Never fails.
func (t *Tape) Set(pos int, sym domain.Symbol) {
	if sym == domain.Blank {
		delete(t.cells, pos)
		return
	}
	t.cells[pos] = sym
	if !t.touched {
		t.min, t.max = pos, pos
		t.touched = true
		return
	}
	if pos < t.min {
		t.min = pos
	}
	if pos > t.max {
		t.max = pos
	}
}

// Bounds returns the smallest and largest positions that have ever held a
// non-blank symbol, (0, 0) when none has.
func (t *Tape) Bounds() (min, max int) {
	return t.min, t.max
}

// Content returns every non-blank cell in ascending position order.
func (t *Tape) Content() []domain.Cell {
	cells := make([]domain.Cell, 0, len(t.cells))
	for pos, sym := range t.cells {
		cells = append(cells, domain.Cell{Pos: pos, Sym: sym})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Pos < cells[j].Pos })
	return cells
}

// String concatenates the non-blank symbols in position order. This is the
// decoded tape content callers derive the verdict from.
func (t *Tape) String() string {
	var b strings.Builder
	for _, c := range t.Content() {
		b.WriteRune(c.Sym.Rune())
	}
	return b.String()
}

// Window returns the cells in [from, to], blanks included, for display.
func (t *Tape) Window(from, to int) []domain.Cell {
	if to < from {
		return nil
	}
	cells := make([]domain.Cell, 0, to-from+1)
	for pos := from; pos <= to; pos++ {
		cells = append(cells, domain.Cell{Pos: pos, Sym: t.Get(pos)})
	}
	return cells
}
