package solver

import (
	"context"
	"time"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

// DaySolver adapts one day's parse and reduce functions to ports.Solver.
type DaySolver struct {
	day   int
	title string
	solve func(input string) (p1, p2 int64, records int, err error)
}

func (s *DaySolver) Day() int      { return s.day }
func (s *DaySolver) Title() string { return s.title }

func (s *DaySolver) Solve(ctx context.Context, input string) (domain.Answer, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	p1, p2, n, err := s.solve(input)
	st := ports.Stats{Records: n, Duration: time.Since(start)}
	if err != nil {
		return domain.Answer{}, st, err
	}
	return domain.Answer{Day: s.day, Title: s.title, Part1: p1, Part2: p2}, st, nil
}

// All returns a solver for every implemented day, in day order.
func All() []ports.Solver {
	return []ports.Solver{
		NewSonarSweep(),
		NewDive(),
		NewBinaryDiagnostic(),
		NewGiantSquid(),
		NewHydrothermalVenture(),
		NewLanternfish(),
	}
}
