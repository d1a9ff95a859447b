// Package sonar counts how often a sweep of depth measurements increases.
package sonar

import (
	"strconv"
	"strings"

	"svw.info/advent/internal/domain"
)

// Parse reads one depth per line.
func Parse(text string) ([]int, error) {
	lines := domain.Lines(text)
	if len(lines) == 0 {
		return nil, domain.ErrEmptyInput
	}
	depths := make([]int, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		d, err := strconv.Atoi(line)
		if err != nil {
			return nil, domain.NewParseError(i+1, line, "integer depth", err)
		}
		depths = append(depths, d)
	}
	return depths, nil
}

// CountIncreases returns how many measurements are larger than the previous one.
func CountIncreases(depths []int) int {
	n := 0
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			n++
		}
	}
	return n
}

// CountWindowIncreases compares sums of consecutive windows of the given
// width. Windows that would run past the end are not formed.
func CountWindowIncreases(depths []int, width int) int {
	if width <= 0 || len(depths) <= width {
		return 0
	}
	sum := 0
	for _, d := range depths[:width] {
		sum += d
	}
	n := 0
	for i := width; i < len(depths); i++ {
		next := sum + depths[i] - depths[i-width]
		if next > sum {
			n++
		}
		sum = next
	}
	return n
}
