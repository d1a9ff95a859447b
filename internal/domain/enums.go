package domain

// Part selects one half of a day's puzzle.
type Part int

const (
	PartOne Part = iota + 1
	PartTwo
)

func (p Part) String() string {
	switch p {
	case PartOne:
		return "1"
	case PartTwo:
		return "2"
	default:
		return "?"
	}
}
