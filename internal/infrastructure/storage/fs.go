package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"svw.info/advent/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

const answersDir = "answers"

func (s *FS) answerPath(day int) string {
	return filepath.Join(s.dir, answersDir, fmt.Sprintf("day_%02d.json", day))
}

// Input reads the puzzle input for day. It looks for data/day_NN.txt first
// and falls back to the flat data/N.input layout.
func (s *FS) Input(ctx context.Context, day int) (string, error) {
	if day <= 0 {
		return "", fmt.Errorf("input for day %d: %w", day, domain.ErrUnknownDay)
	}
	candidates := []string{
		filepath.Join(s.dir, fmt.Sprintf("day_%02d.txt", day)),
		filepath.Join(s.dir, fmt.Sprintf("%d.input", day)), // legacy flat layout
	}
	for _, p := range candidates {
		b, err := os.ReadFile(p)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("input for day %d: %w", day, os.ErrNotExist)
}

func (s *FS) Save(ctx context.Context, a *domain.Answer) error {
	if a == nil || a.Day <= 0 {
		return errors.New("invalid answer: missing day")
	}
	if a.SolvedAt == 0 {
		a.SolvedAt = time.Now().Unix()
	}
	// Ensure directory ./data/answers exists
	target := s.answerPath(a.Day)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

func (s *FS) Load(ctx context.Context, day int) (*domain.Answer, error) {
	data, err := os.ReadFile(s.answerPath(day))
	if err != nil {
		return nil, err
	}
	var out domain.Answer
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	// Older files may omit the day; infer it from the file name.
	if out.Day == 0 {
		out.Day = day
	}
	return &out, nil
}

// List returns every saved answer ordered by day. Unreadable files are
// skipped.
func (s *FS) List(ctx context.Context) ([]domain.Answer, error) {
	ents, err := os.ReadDir(filepath.Join(s.dir, answersDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.Answer
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, "day_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		var day int
		if _, err := fmt.Sscanf(name, "day_%02d.json", &day); err != nil {
			continue
		}
		a, err := s.Load(ctx, day)
		if err != nil {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}
