package bingo

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is one number on a board and whether it has been drawn.
type Cell struct {
	Number int
	Marked bool
}

// Board is a 5x5 bingo card. The zero value is not usable; build one with
// NewBoard.
type Board struct {
	grid  Grid
	cells [Size * Size]Cell
	index map[int]int // number -> flat index
	won   bool
}

// NewBoard builds a board from 25 numbers in row-major order. Numbers must
// be unique within the board.
func NewBoard(numbers []int) (*Board, error) {
	b := &Board{index: make(map[int]int, Size*Size)}
	if len(numbers) != b.grid.Len() {
		return nil, fmt.Errorf("board needs %d numbers, got %d", b.grid.Len(), len(numbers))
	}
	for i, n := range numbers {
		if _, dup := b.index[n]; dup {
			r, c := b.grid.Pos(i)
			return nil, fmt.Errorf("duplicate number %d at row %d col %d", n, r+1, c+1)
		}
		b.cells[i] = Cell{Number: n}
		b.index[n] = i
	}
	return b, nil
}

// Cells returns a copy of the board's cells in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells[:])
	return out
}

// At returns the cell at (row, col).
func (b *Board) At(row, col int) Cell { return b.cells[b.grid.Index(row, col)] }

// Mark marks n if it is on the board and reports whether it was found.
// A win is latched as soon as a full row or column is marked.
func (b *Board) Mark(n int) bool {
	i, ok := b.index[n]
	if !ok {
		return false
	}
	b.cells[i].Marked = true
	if !b.won {
		r, c := b.grid.Pos(i)
		b.won = b.complete(b.grid.Row(r)) || b.complete(b.grid.Col(c))
	}
	return true
}

// Won reports whether any row or column is fully marked.
func (b *Board) Won() bool { return b.won }

func (b *Board) complete(line [Size]int) bool {
	for _, i := range line {
		if !b.cells[i].Marked {
			return false
		}
	}
	return true
}

// UnmarkedSum adds up every number not yet drawn.
func (b *Board) UnmarkedSum() int {
	sum := 0
	for _, c := range b.cells {
		if !c.Marked {
			sum += c.Number
		}
	}
	return sum
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := b.At(r, c)
			s := strconv.Itoa(cell.Number)
			if cell.Marked {
				s = "*" + s
			}
			fmt.Fprintf(&sb, "%4s", s)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
