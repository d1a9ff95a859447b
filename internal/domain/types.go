package domain

// Answer holds both parts' results for one day.
type Answer struct {
	Day   int    `json:"day"`
	Title string `json:"title,omitempty"`
	Part1 int64  `json:"part1"`
	Part2 int64  `json:"part2"`
	// Set by the store when the answer is saved.
	SolvedAt int64 `json:"solvedAt,omitempty"`
}

// Get returns the result for one part.
func (a Answer) Get(p Part) int64 {
	if p == PartTwo {
		return a.Part2
	}
	return a.Part1
}

// DayMeta is a lightweight listing entry.
type DayMeta struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
}
