// Package sample holds the worked example from each day's puzzle text
// together with its expected answers.
package sample

import (
	"embed"
	"fmt"

	"svw.info/advent/internal/domain"
)

//go:embed inputs/*.txt
var inputs embed.FS

// Sample is an example input and the answers it should produce.
type Sample struct {
	Day   int
	Input string
	Want  domain.Answer
}

var wants = map[int][2]int64{
	1: {7, 5},
	2: {150, 900},
	3: {198, 230},
	4: {4512, 1924},
	5: {5, 12},
	6: {5934, 26984457539},
}

// For returns the sample for day, or domain.ErrUnknownDay.
func For(day int) (Sample, error) {
	w, ok := wants[day]
	if !ok {
		return Sample{}, fmt.Errorf("sample for day %d: %w", day, domain.ErrUnknownDay)
	}
	b, err := inputs.ReadFile(fmt.Sprintf("inputs/day%02d.txt", day))
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		Day:   day,
		Input: string(b),
		Want:  domain.Answer{Day: day, Part1: w[0], Part2: w[1]},
	}, nil
}

// Check reports whether got matches the expected answers for both parts.
func (s Sample) Check(got domain.Answer) error {
	for _, p := range []domain.Part{domain.PartOne, domain.PartTwo} {
		if got.Get(p) != s.Want.Get(p) {
			return fmt.Errorf("day %d sample part %s: got %d, want %d", s.Day, p, got.Get(p), s.Want.Get(p))
		}
	}
	return nil
}
