// Package diagnostic decodes the submarine's binary diagnostic report.
package diagnostic

import (
	"strconv"
	"strings"

	"svw.info/advent/internal/domain"
)

// Report is a list of fixed-width binary readings.
type Report struct {
	Values []uint64
	Width  int
}

// Parse reads one binary string per line. Every line must have the width
// of the first one.
func Parse(text string) (*Report, error) {
	lines := domain.Lines(text)
	if len(lines) == 0 {
		return nil, domain.ErrEmptyInput
	}
	width := len(strings.TrimSpace(lines[0]))
	if width == 0 || width > 63 {
		return nil, domain.NewParseError(1, lines[0], "binary string of 1-63 digits", nil)
	}
	r := &Report{Values: make([]uint64, 0, len(lines)), Width: width}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != width {
			return nil, domain.NewParseError(i+1, line, strconv.Itoa(width)+" binary digits", nil)
		}
		v, err := strconv.ParseUint(line, 2, 64)
		if err != nil {
			return nil, domain.NewParseError(i+1, line, "binary digits", err)
		}
		r.Values = append(r.Values, v)
	}
	return r, nil
}

func bitAt(v uint64, pos int) bool { return v&(1<<pos) != 0 }

func countBits(vals []uint64, pos int) (zeros, ones int) {
	for _, v := range vals {
		if bitAt(v, pos) {
			ones++
		} else {
			zeros++
		}
	}
	return zeros, ones
}

// Gamma has each bit set where ones are the strict majority at that position.
func (r *Report) Gamma() uint64 {
	var rate uint64
	for pos := r.Width - 1; pos >= 0; pos-- {
		if zeros, ones := countBits(r.Values, pos); ones > zeros {
			rate |= 1 << pos
		}
	}
	return rate
}

// Epsilon has each bit set where ones are the strict minority at that position.
func (r *Report) Epsilon() uint64 {
	var rate uint64
	for pos := r.Width - 1; pos >= 0; pos-- {
		if zeros, ones := countBits(r.Values, pos); ones < zeros {
			rate |= 1 << pos
		}
	}
	return rate
}

// PowerConsumption is gamma times epsilon.
func (r *Report) PowerConsumption() uint64 { return r.Gamma() * r.Epsilon() }

// OxygenRating filters by the most common bit, ties keeping ones.
func (r *Report) OxygenRating() uint64 {
	return r.rating(func(zeros, ones int) bool { return ones >= zeros })
}

// CO2Rating filters by the least common bit, ties keeping zeros.
func (r *Report) CO2Rating() uint64 {
	return r.rating(func(zeros, ones int) bool { return ones < zeros })
}

// LifeSupport is the oxygen rating times the CO2 rating.
func (r *Report) LifeSupport() uint64 { return r.OxygenRating() * r.CO2Rating() }

// rating narrows the readings from the most significant bit down. keepOnes
// decides which group survives at each position; a position whose chosen
// group is empty leaves the candidates untouched.
func (r *Report) rating(keepOnes func(zeros, ones int) bool) uint64 {
	candidates := append([]uint64(nil), r.Values...)
	for pos := r.Width - 1; pos >= 0 && len(candidates) > 1; pos-- {
		zeros, ones := countBits(candidates, pos)
		want := keepOnes(zeros, ones)
		if (want && ones == 0) || (!want && zeros == 0) {
			continue
		}
		kept := candidates[:0]
		for _, v := range candidates {
			if bitAt(v, pos) == want {
				kept = append(kept, v)
			}
		}
		candidates = kept
	}
	if len(candidates) == 0 {
		return 0
	}
	return candidates[0]
}
