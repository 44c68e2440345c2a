package crossword

import "fmt"

// Direction is the orientation of a slot in the grid.
type Direction int

const (
	// Across slots run left to right within a row.
	Across Direction = iota
	// Down slots run top to bottom within a column.
	Down
)

// String returns "across" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Variable identifies a single slot: its starting cell, its length, and its
// orientation. Variables are immutable and comparable, so they can be used
// directly as map keys. Identity is (Row, Col, Direction); two distinct slots
// in the same grid never share all three.
type Variable struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

// String returns a short description like "(2,0 across len=5)".
func (v Variable) String() string {
	return fmt.Sprintf("(%d,%d %s len=%d)", v.Row, v.Col, v.Direction, v.Length)
}

// Cells returns the (row, col) coordinates occupied by the slot, in word order.
func (v Variable) Cells() [][2]int {
	cells := make([][2]int, v.Length)
	for k := 0; k < v.Length; k++ {
		if v.Direction == Down {
			cells[k] = [2]int{v.Row + k, v.Col}
		} else {
			cells[k] = [2]int{v.Row, v.Col + k}
		}
	}
	return cells
}

// less orders variables by (Row, Col, Direction). This is the identity order
// used for deterministic iteration and heuristic tie-breaking.
func (v Variable) less(o Variable) bool {
	if v.Row != o.Row {
		return v.Row < o.Row
	}
	if v.Col != o.Col {
		return v.Col < o.Col
	}
	return v.Direction < o.Direction
}
