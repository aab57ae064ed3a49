package binding

import (
	"fmt"

	"propbind/internal/match"
)

//go:generate go tool stringer -type=Direction -output=direction_string.go

// Direction is the synchronization topology of a binding.
type Direction int

const (
	_ Direction = iota // zero value is not a valid direction

	OneTime
	OneWay
	OneWayToSource
	TwoWay
	Command
)

// Directions lists every valid direction in declaration order.
var Directions = []Direction{OneTime, OneWay, OneWayToSource, TwoWay, Command}

// IsValid returns true for declared directions.
func (d Direction) IsValid() bool {
	return d >= OneTime && d <= Command
}

// HasForward reports whether model changes flow to the control.
func (d Direction) HasForward() bool {
	return d == OneTime || d == OneWay || d == TwoWay
}

// HasReverse reports whether a control event triggers work on the model side.
// Every such direction needs a control event name.
func (d Direction) HasReverse() bool {
	return d == OneWayToSource || d == TwoWay || d == Command
}

// ParseDirection parses a direction name. Case, '_', '-' and spaces are
// ignored, so "TwoWay", "two_way" and "two-way" are equivalent.
func ParseDirection(s string) (Direction, error) {
	want := match.Normalize(s)
	for _, d := range Directions {
		if match.Normalize(d.String()) == want {
			return d, nil
		}
	}

	return 0, fmt.Errorf("unknown direction %q", s)
}
