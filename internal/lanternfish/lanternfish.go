// Package lanternfish models the growth of a lanternfish shoal.
package lanternfish

import (
	"strconv"
	"strings"

	"svw.info/advent/internal/domain"
)

const (
	// ResetTimer is a parent's timer after it spawns.
	ResetTimer = 6
	// NewbornTimer is a newborn's starting timer.
	NewbornTimer = 8
)

// Parse reads the comma-separated timers of the initial shoal.
func Parse(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyInput
	}
	var timers []int
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &domain.ParseError{Line: 1, Token: tok, Want: "integer timer", Err: err}
		}
		if n < 0 || n > NewbornTimer {
			return nil, &domain.ParseError{Line: 1, Token: tok, Want: "timer in 0-8"}
		}
		timers = append(timers, n)
	}
	return timers, nil
}

// Shoal tracks the population as a count per timer value. Bucket i holds
// the fish with i days left before spawning.
type Shoal [NewbornTimer + 1]int64

// NewShoal buckets the initial timers.
func NewShoal(timers []int) *Shoal {
	var s Shoal
	for _, t := range timers {
		s[t]++
	}
	return &s
}

// Step advances the shoal one day: every bucket moves one closer to zero,
// the fish at zero restart at ResetTimer and spawn as many newborns.
func (s *Shoal) Step() {
	spawning := s[0]
	copy(s[:], s[1:])
	s[NewbornTimer] = spawning
	s[ResetTimer] += spawning
}

// Simulate steps the shoal the given number of days and returns its size.
func (s *Shoal) Simulate(days int) int64 {
	for d := 0; d < days; d++ {
		s.Step()
	}
	return s.Size()
}

// Size is the total number of fish.
func (s *Shoal) Size() int64 {
	var n int64
	for _, c := range s {
		n += c
	}
	return n
}

// NaiveShoal simulates every fish individually. It grows exponentially and
// is only practical for short runs; it exists to cross-check Shoal.
type NaiveShoal struct {
	Timers []int
}

// NewNaiveShoal copies the initial timers.
func NewNaiveShoal(timers []int) *NaiveShoal {
	return &NaiveShoal{Timers: append([]int(nil), timers...)}
}

// Simulate steps each fish the given number of days and returns the size.
func (s *NaiveShoal) Simulate(days int) int64 {
	for d := 0; d < days; d++ {
		n := len(s.Timers)
		for i := 0; i < n; i++ {
			if s.Timers[i] == 0 {
				s.Timers[i] = ResetTimer
				s.Timers = append(s.Timers, NewbornTimer)
			} else {
				s.Timers[i]--
			}
		}
	}
	return int64(len(s.Timers))
}
