// Package bingo plays draw numbers against a set of 5x5 boards.
package bingo

import (
	"fmt"
	"strconv"
	"strings"

	"svw.info/advent/internal/domain"
)

// Game is the ordered draws plus the boards they are played on. Boards
// are referred to by their index in Boards.
type Game struct {
	Draws  []int
	Boards []*Board
}

// Win records a board's transition to won.
type Win struct {
	Board int // index into Game.Boards
	Draw  int
	Score int
}

// Parse reads the draw line followed by groups of five non-blank rows of
// five numbers, one group per board.
func Parse(text string) (*Game, error) {
	lines := domain.Lines(text)
	if len(lines) == 0 {
		return nil, domain.ErrEmptyInput
	}
	g := &Game{}
	for _, tok := range strings.Split(strings.TrimSpace(lines[0]), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, domain.NewParseError(1, tok, "integer draw", err)
		}
		g.Draws = append(g.Draws, n)
	}

	numbers := make([]int, 0, Size*Size)
	start := 0
	for i, line := range lines[1:] {
		lineNo := i + 2
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(numbers) == 0 {
			start = lineNo
		}
		if len(fields) != Size {
			return nil, domain.NewParseError(lineNo, line, fmt.Sprintf("%d numbers per row", Size), nil)
		}
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, domain.NewParseError(lineNo, f, "integer cell", err)
			}
			numbers = append(numbers, n)
		}
		if len(numbers) == Size*Size {
			b, err := NewBoard(numbers)
			if err != nil {
				return nil, domain.NewParseError(start, lines[start-1], "valid board", err)
			}
			g.Boards = append(g.Boards, b)
			numbers = numbers[:0]
		}
	}
	if len(numbers) != 0 {
		return nil, domain.NewParseError(start, lines[start-1], fmt.Sprintf("%d rows per board", Size), nil)
	}
	if len(g.Boards) == 0 {
		return nil, fmt.Errorf("no boards: %w", domain.ErrEmptyInput)
	}
	return g, nil
}

// FirstWinner draws numbers in order and stops at the first board to win.
func (g *Game) FirstWinner() (Win, error) {
	for _, n := range g.Draws {
		for i, b := range g.Boards {
			if b.Mark(n) && b.Won() {
				return g.win(i, n), nil
			}
		}
	}
	return Win{}, domain.ErrNoWinner
}

// LastWinner keeps drawing until every board has won and reports the
// final board to do so. Boards that already won are not marked again.
func (g *Game) LastWinner() (Win, error) {
	last := Win{Board: -1}
	for _, n := range g.Draws {
		remaining := 0
		for i, b := range g.Boards {
			if b.Won() {
				continue
			}
			if b.Mark(n) && b.Won() {
				last = g.win(i, n)
				continue
			}
			remaining++
		}
		if remaining == 0 {
			break
		}
	}
	if last.Board < 0 {
		return Win{}, domain.ErrNoWinner
	}
	return last, nil
}

func (g *Game) win(board, draw int) Win {
	return Win{Board: board, Draw: draw, Score: g.Boards[board].UnmarkedSum() * draw}
}
