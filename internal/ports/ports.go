package ports

import (
	"context"
	"time"

	"svw.info/advent/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Records  int // parsed input records (lines, boards, fish...)
	Duration time.Duration
}

// Solver parses one day's input and answers both parts.
type Solver interface {
	Day() int
	Title() string
	Solve(ctx context.Context, input string) (domain.Answer, Stats, error)
}

// Storage reads puzzle inputs and persists answers as JSON.
type Storage interface {
	Input(ctx context.Context, day int) (string, error)
	Save(ctx context.Context, a *domain.Answer) error
	Load(ctx context.Context, day int) (*domain.Answer, error)
	List(ctx context.Context) ([]domain.Answer, error)
}
