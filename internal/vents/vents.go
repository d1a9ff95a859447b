// Package vents counts grid points where hydrothermal vent lines overlap.
package vents

import (
	"errors"
	"strings"

	"svw.info/advent/internal/domain"
)

// Segment is a line between two points. It is horizontal, vertical or a
// 45 degree diagonal.
type Segment struct {
	P1, P2 Point
}

// ParseSegment parses "<point> -> <point>".
func ParseSegment(s string) (Segment, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 || fields[1] != "->" {
		return Segment{}, &domain.ParseError{Token: s, Want: "<x>,<y> -> <x>,<y>"}
	}
	p1, err := ParsePoint(fields[0])
	if err != nil {
		return Segment{}, err
	}
	p2, err := ParsePoint(fields[2])
	if err != nil {
		return Segment{}, err
	}
	seg := Segment{P1: p1, P2: p2}
	if !seg.Straight() && !seg.Diagonal() {
		return Segment{}, &domain.ParseError{Token: s, Want: "horizontal, vertical or 45 degree segment"}
	}
	return seg, nil
}

// Parse reads one segment per line.
func Parse(text string) ([]Segment, error) {
	lines := domain.Lines(text)
	if len(lines) == 0 {
		return nil, domain.ErrEmptyInput
	}
	segs := make([]Segment, 0, len(lines))
	for i, line := range lines {
		seg, err := ParseSegment(line)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// Straight reports whether the segment is horizontal or vertical. A
// single point counts as straight.
func (s Segment) Straight() bool { return s.P1.X == s.P2.X || s.P1.Y == s.P2.Y }

// Diagonal reports whether the segment runs at exactly 45 degrees.
func (s Segment) Diagonal() bool {
	dx, dy := abs(s.P2.X-s.P1.X), abs(s.P2.Y-s.P1.Y)
	return dx == dy && dx != 0
}

// Walk calls fn for every point from P1 to P2 inclusive, one unit step
// at a time.
func (s Segment) Walk(fn func(Point)) {
	p := s.P1
	for {
		fn(p)
		if p == s.P2 {
			return
		}
		p = p.Toward(s.P2)
	}
}

// Straight keeps only horizontal and vertical segments.
func Straight(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.Straight() {
			out = append(out, s)
		}
	}
	return out
}

// Occupancy counts how many segments cover each point.
type Occupancy map[Point]int

// Cover adds one to every point the segment walks over.
func (o Occupancy) Cover(s Segment) {
	s.Walk(func(p Point) { o[p]++ })
}

// Overlaps is the number of points covered more than once.
func (o Occupancy) Overlaps() int {
	n := 0
	for _, c := range o {
		if c > 1 {
			n++
		}
	}
	return n
}

// CountOverlaps covers every segment and counts the overlapping points.
func CountOverlaps(segs []Segment) int {
	o := make(Occupancy)
	for _, s := range segs {
		o.Cover(s)
	}
	return o.Overlaps()
}
