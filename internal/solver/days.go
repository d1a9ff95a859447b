package solver

import (
	"svw.info/advent/internal/bingo"
	"svw.info/advent/internal/diagnostic"
	"svw.info/advent/internal/dive"
	"svw.info/advent/internal/lanternfish"
	"svw.info/advent/internal/sonar"
	"svw.info/advent/internal/vents"
)

// SonarWindow is the sliding window width for day 1 part 2.
const SonarWindow = 3

// Lanternfish horizons for day 6.
const (
	ShortHorizon = 80
	LongHorizon  = 256
)

func NewSonarSweep() *DaySolver {
	return &DaySolver{day: 1, title: "Sonar Sweep", solve: func(in string) (int64, int64, int, error) {
		depths, err := sonar.Parse(in)
		if err != nil {
			return 0, 0, 0, err
		}
		p1 := sonar.CountIncreases(depths)
		p2 := sonar.CountWindowIncreases(depths, SonarWindow)
		return int64(p1), int64(p2), len(depths), nil
	}}
}

func NewDive() *DaySolver {
	return &DaySolver{day: 2, title: "Dive!", solve: func(in string) (int64, int64, int, error) {
		cmds, err := dive.ParseCommands(in)
		if err != nil {
			return 0, 0, 0, err
		}
		p1 := dive.Navigate(cmds).Product()
		p2 := dive.NavigateAim(cmds).Product()
		return int64(p1), int64(p2), len(cmds), nil
	}}
}

func NewBinaryDiagnostic() *DaySolver {
	return &DaySolver{day: 3, title: "Binary Diagnostic", solve: func(in string) (int64, int64, int, error) {
		r, err := diagnostic.Parse(in)
		if err != nil {
			return 0, 0, 0, err
		}
		return int64(r.PowerConsumption()), int64(r.LifeSupport()), len(r.Values), nil
	}}
}

// NewGiantSquid plays bingo twice on fresh copies of the game, since a
// run marks the boards.
func NewGiantSquid() *DaySolver {
	return &DaySolver{day: 4, title: "Giant Squid", solve: func(in string) (int64, int64, int, error) {
		g, err := bingo.Parse(in)
		if err != nil {
			return 0, 0, 0, err
		}
		first, err := g.FirstWinner()
		if err != nil {
			return 0, 0, 0, err
		}
		g, err = bingo.Parse(in)
		if err != nil {
			return 0, 0, 0, err
		}
		last, err := g.LastWinner()
		if err != nil {
			return 0, 0, 0, err
		}
		return int64(first.Score), int64(last.Score), len(g.Boards), nil
	}}
}

func NewHydrothermalVenture() *DaySolver {
	return &DaySolver{day: 5, title: "Hydrothermal Venture", solve: func(in string) (int64, int64, int, error) {
		segs, err := vents.Parse(in)
		if err != nil {
			return 0, 0, 0, err
		}
		p1 := vents.CountOverlaps(vents.Straight(segs))
		p2 := vents.CountOverlaps(segs)
		return int64(p1), int64(p2), len(segs), nil
	}}
}

func NewLanternfish() *DaySolver {
	return &DaySolver{day: 6, title: "Lanternfish", solve: func(in string) (int64, int64, int, error) {
		timers, err := lanternfish.Parse(in)
		if err != nil {
			return 0, 0, 0, err
		}
		p1 := lanternfish.NewShoal(timers).Simulate(ShortHorizon)
		p2 := lanternfish.NewShoal(timers).Simulate(LongHorizon)
		return p1, p2, len(timers), nil
	}}
}
