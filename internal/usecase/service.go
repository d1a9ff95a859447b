package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"

	"svw.info/advent/internal/domain"
	"svw.info/advent/internal/ports"
)

type cacheKey struct {
	day int
	sum deephash.Sum
}

type Service struct {
	Storage ports.Storage
	Log     logrus.FieldLogger

	solvers map[int]ports.Solver

	mu    sync.Mutex
	cache map[cacheKey]domain.Answer
}

func NewService(st ports.Storage, log logrus.FieldLogger, solvers ...ports.Solver) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	u := &Service{
		Storage: st,
		Log:     log,
		solvers: make(map[int]ports.Solver, len(solvers)),
		cache:   make(map[cacheKey]domain.Answer),
	}
	for _, s := range solvers {
		u.solvers[s.Day()] = s
	}
	return u
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Days lists the registered days in order.
func (u *Service) Days() []domain.DayMeta {
	days := maps.Keys(u.solvers)
	slices.Sort(days)
	out := make([]domain.DayMeta, 0, len(days))
	for _, d := range days {
		out = append(out, domain.DayMeta{Day: d, Title: u.solvers[d].Title()})
	}
	return out
}

func (u *Service) solver(day int) (ports.Solver, error) {
	s, ok := u.solvers[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, domain.ErrUnknownDay)
	}
	return s, nil
}

// Solve answers both parts of day for the given input. Answers are cached
// by a digest of the input.
func (u *Service) Solve(ctx context.Context, day int, input string) (domain.Answer, ports.Stats, error) {
	s, err := u.solver(day)
	if err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	key := cacheKey{day: day, sum: deephash.Hash(&input)}
	log := u.Log.WithField("day", day)

	u.mu.Lock()
	a, hit := u.cache[key]
	u.mu.Unlock()
	if hit {
		log.Debug("answer served from cache")
		return a, ports.Stats{}, nil
	}

	a, st, err := s.Solve(ctx, input)
	if err != nil {
		log.WithError(err).Warn("solve failed")
		return domain.Answer{}, st, err
	}
	log.WithFields(logrus.Fields{
		"records": st.Records,
		"dur":     st.Duration,
	}).Debug("solved")

	u.mu.Lock()
	u.cache[key] = a
	u.mu.Unlock()
	return a, st, nil
}

// SolveStored reads day's input from storage, solves it and saves the
// answer.
func (u *Service) SolveStored(ctx context.Context, day int) (domain.Answer, ports.Stats, error) {
	if u.Storage == nil {
		return domain.Answer{}, ports.Stats{}, errNotConfigured
	}
	if _, err := u.solver(day); err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	input, err := u.Storage.Input(ctx, day)
	if err != nil {
		return domain.Answer{}, ports.Stats{}, err
	}
	a, st, err := u.Solve(ctx, day, input)
	if err != nil {
		return domain.Answer{}, st, err
	}
	if err := u.Storage.Save(ctx, &a); err != nil {
		return domain.Answer{}, st, err
	}
	return a, st, nil
}

// Persistence
func (u *Service) Answer(ctx context.Context, day int) (*domain.Answer, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, day)
}
func (u *Service) Answers(ctx context.Context) ([]domain.Answer, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
