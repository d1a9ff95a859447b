// Package dive steers the submarine through a list of course commands.
package dive

import (
	"errors"
	"strconv"
	"strings"

	"svw.info/advent/internal/domain"
)

// Direction is the verb of a course command.
type Direction int

const (
	Forward Direction = iota
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// ParseDirection maps a command verb to its Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "forward":
		return Forward, true
	case "down":
		return Down, true
	case "up":
		return Up, true
	}
	return 0, false
}

// Command is a single "<direction> <units>" instruction.
type Command struct {
	Direction Direction
	Units     int
}

// ParseCommand parses one line of the course.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, &domain.ParseError{Token: line, Want: "<forward|down|up> <int>"}
	}
	dir, ok := ParseDirection(fields[0])
	if !ok {
		return Command{}, &domain.ParseError{Token: fields[0], Want: "forward, down or up"}
	}
	units, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, &domain.ParseError{Token: fields[1], Want: "integer units", Err: err}
	}
	return Command{Direction: dir, Units: units}, nil
}

// ParseCommands parses the whole course, one command per line.
func ParseCommands(text string) ([]Command, error) {
	lines := domain.Lines(text)
	if len(lines) == 0 {
		return nil, domain.ErrEmptyInput
	}
	cmds := make([]Command, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCommand(line)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// Position accumulates the submarine's location. Aim is only used by
// ApplyAim.
type Position struct {
	Horizontal int
	Depth      int
	Aim        int
}

// Apply moves the submarine treating up/down as direct depth changes.
func (p *Position) Apply(c Command) {
	switch c.Direction {
	case Forward:
		p.Horizontal += c.Units
	case Down:
		p.Depth += c.Units
	case Up:
		p.Depth -= c.Units
	}
}

// ApplyAim moves the submarine treating up/down as aim changes; forward
// dives by aim times units.
func (p *Position) ApplyAim(c Command) {
	switch c.Direction {
	case Forward:
		p.Horizontal += c.Units
		p.Depth += p.Aim * c.Units
	case Down:
		p.Aim += c.Units
	case Up:
		p.Aim -= c.Units
	}
}

// Product is the horizontal position times the depth.
func (p Position) Product() int { return p.Horizontal * p.Depth }

// Navigate runs the course with the plain model.
func Navigate(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		p.Apply(c)
	}
	return p
}

// NavigateAim runs the course with the aim model.
func NavigateAim(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		p.ApplyAim(c)
	}
	return p
}
