package bingo

// Size is the side length of a board.
const Size = 5

// Grid maps row/column positions onto a flat row-major sequence of
// Size*Size cells.
type Grid struct{}

// Len is the number of cells in the grid.
func (Grid) Len() int { return Size * Size }

// Index returns the flat index of (row, col).
func (Grid) Index(row, col int) int { return row*Size + col }

// Pos is the inverse of Index.
func (Grid) Pos(i int) (row, col int) { return i / Size, i % Size }

// Row returns the flat indexes of row r, left to right.
func (g Grid) Row(r int) [Size]int {
	var out [Size]int
	for c := range out {
		out[c] = g.Index(r, c)
	}
	return out
}

// Col returns the flat indexes of column c, top to bottom.
func (g Grid) Col(c int) [Size]int {
	var out [Size]int
	for r := range out {
		out[r] = g.Index(r, c)
	}
	return out
}
