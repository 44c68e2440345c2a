// Package crossword provides a constraint-satisfaction engine for filling
// crossword grids. A puzzle is modeled as a CSP: each slot in the grid is a
// variable, its domain is the set of candidate words of the right length, and
// a binary constraint arises wherever two slots cross. The package offers the
// puzzle model (Crossword), per-variable word domains, node- and
// arc-consistency enforcement (AC-3), and heuristic backtracking search.
package crossword

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyStructure is returned when a structure description contains no
// open cells.
var ErrEmptyStructure = errors.New("structure has no open cells")

// Crossword is the puzzle model: the grid geometry, the candidate word list,
// the slots (variables) detected in the grid, and the precomputed overlap
// relation between every pair of crossing slots.
//
// A Crossword is immutable after construction and safe for concurrent reads;
// all mutation during solving happens in Solver-owned state.
type Crossword struct {
	Height int
	Width  int

	open      [][]bool // true where a letter cell exists
	words     []string // sorted, deduplicated, upper-cased
	variables []Variable
	overlaps  map[[2]Variable][2]int
	neighbors map[Variable][]Variable
}

// New builds a Crossword from a textual structure description and a word
// list. In the structure, underscore marks an open cell and any other
// character marks a blocked cell; rows may have differing lengths and are
// padded with blocked cells on the right. Slots are maximal horizontal or
// vertical runs of open cells of length two or more.
//
// Words are normalized to upper case and deduplicated. An empty word list is
// allowed; solving such a puzzle simply fails.
func New(structure string, words []string) (*Crossword, error) {
	lines := strings.Split(strings.TrimRight(structure, "\n"), "\n")

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	open := make([][]bool, len(lines))
	anyOpen := false
	for i, line := range lines {
		open[i] = make([]bool, width)
		for j := 0; j < len(line); j++ {
			if line[j] == '_' {
				open[i][j] = true
				anyOpen = true
			}
		}
	}
	if !anyOpen {
		return nil, ErrEmptyStructure
	}

	c := &Crossword{
		Height: len(lines),
		Width:  width,
		open:   open,
		words:  normalizeWords(words),
	}
	c.findVariables()
	c.computeOverlaps()
	return c, nil
}

func normalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// findVariables scans the grid for maximal runs of open cells. A run of
// length one is a cell shared by nothing and is not a slot.
func (c *Crossword) findVariables() {
	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			if !c.open[i][j] {
				continue
			}
			// Across run starting here.
			if j == 0 || !c.open[i][j-1] {
				length := 1
				for k := j + 1; k < c.Width && c.open[i][k]; k++ {
					length++
				}
				if length > 1 {
					c.variables = append(c.variables, Variable{Row: i, Col: j, Length: length, Direction: Across})
				}
			}
			// Down run starting here.
			if i == 0 || !c.open[i-1][j] {
				length := 1
				for k := i + 1; k < c.Height && c.open[k][j]; k++ {
					length++
				}
				if length > 1 {
					c.variables = append(c.variables, Variable{Row: i, Col: j, Length: length, Direction: Down})
				}
			}
		}
	}
	sort.Slice(c.variables, func(a, b int) bool { return c.variables[a].less(c.variables[b]) })
}

// computeOverlaps records, for every ordered pair of distinct crossing slots,
// the character index within each slot of the shared cell. An across and a
// down slot cross in at most one cell, so a single index pair suffices.
func (c *Crossword) computeOverlaps() {
	c.overlaps = make(map[[2]Variable][2]int)
	c.neighbors = make(map[Variable][]Variable)

	for _, x := range c.variables {
		xIndex := make(map[[2]int]int, x.Length)
		for k, cell := range x.Cells() {
			xIndex[cell] = k
		}
		for _, y := range c.variables {
			if x == y {
				continue
			}
			for yk, cell := range y.Cells() {
				if xk, ok := xIndex[cell]; ok {
					c.overlaps[[2]Variable{x, y}] = [2]int{xk, yk}
					c.neighbors[x] = append(c.neighbors[x], y)
					break
				}
			}
		}
	}
}

// Variables returns all slots in identity order (row, then column, then
// direction). The returned slice is a copy.
func (c *Crossword) Variables() []Variable {
	out := make([]Variable, len(c.variables))
	copy(out, c.variables)
	return out
}

// Words returns the normalized candidate word list. The returned slice is a
// copy.
func (c *Crossword) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Overlap reports where x and y cross: the index into x's word and the index
// into y's word of the shared cell. ok is false when the slots do not cross.
// Overlap(x, y) and Overlap(y, x) describe the same cell with the index roles
// swapped.
func (c *Crossword) Overlap(x, y Variable) (xi, yi int, ok bool) {
	p, ok := c.overlaps[[2]Variable{x, y}]
	if !ok {
		return 0, 0, false
	}
	return p[0], p[1], true
}

// Neighbors returns every slot crossing v, in identity order. The returned
// slice must not be modified.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return c.neighbors[v]
}
