package game

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate. It has no bounds of its own, a Board decides
// whether it is valid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Orientation selects the rotation applied to the vessel template.
type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

//ParseOrientation returns the orientation named by s. All valid names are up, down, left
//and right, case insensitive. If an invalid name is provided ErrUnknownOrientation is returned.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Up, ErrUnknownOrientation
	}
}

//ComputeOrientation returns the orientation of a vessel whose head is at head and whose
//first body cell is at second. Presentation layers use it for two-click placement. Any
//other relation between the two cells yields Up.
func ComputeOrientation(head, second Position) Orientation {
	dx := second.X - head.X
	dy := second.Y - head.Y
	for _, o := range []Orientation{Up, Down, Left, Right} {
		r := rotate(vesselTemplate[1], o)
		if r.X == dx && r.Y == dy {
			return o
		}
	}
	return Up
}
