package vents

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"svw.info/advent/internal/domain"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// ParsePoint parses "<int>,<int>".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok || strings.Contains(ys, ",") {
		return Point{}, &domain.ParseError{Token: s, Want: "<int>,<int>"}
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, &domain.ParseError{Token: xs, Want: "integer x", Err: err}
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, &domain.ParseError{Token: ys, Want: "integer y", Err: err}
	}
	return Point{X: x, Y: y}, nil
}

// Toward returns the point one step from p toward b, moving at most one
// unit along each axis.
func (p Point) Toward(b Point) Point {
	return Point{X: p.X + step(p.X, b.X), Y: p.Y + step(p.Y, b.Y)}
}

// step is -1, 0 or +1 depending on whether from is above, at or below to.
func step[T constraints.Signed](from, to T) T {
	switch {
	case from > to:
		return -1
	case from < to:
		return 1
	default:
		return 0
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
