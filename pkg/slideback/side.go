package slideback

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSide is returned by ParseSide for unknown names.
var ErrInvalidSide = errors.New("invalid side")

// Side is the screen edge the affordance is anchored to.
type Side int

const (
	LeftEdge Side = iota
	RightEdge
)

func (s Side) String() string {
	switch s {
	case LeftEdge:
		return "left"
	case RightEdge:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts "left" or "right", case-insensitively.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return LeftEdge, nil
	case "right":
		return RightEdge, nil
	}
	return LeftEdge, fmt.Errorf("%w: %q", ErrInvalidSide, name)
}

// x maps a distance measured inward from the anchoring edge to a panel
// x coordinate. The right edge is the mirror of the left about width/2.
func (s Side) x(inset, width float32) float32 {
	if s == RightEdge {
		return width - inset
	}
	return inset
}
