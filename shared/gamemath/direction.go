package gamemath

import (
	"fmt"
	"strings"
	"time"
)

// Direction is one of the four cardinal directions an entity can move in.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"north", "east", "south", "west"}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts the lower or upper case direction name, or its
// first letter.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("unknown direction %q", s)
}

// UnmarshalText lets directions appear by name in YAML config.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Vector returns the unit movement vector for d. Y grows downwards.
func (d Direction) Vector() (x, y float64) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Distance converts a speed in pixels per second to the distance covered in dt.
func Distance(speed float64, dt time.Duration) float64 {
	return speed * dt.Seconds()
}

// Displace moves (x, y) by distance along d.
func Displace(x, y, distance float64, d Direction) (float64, float64) {
	vx, vy := d.Vector()
	return x + vx*distance, y + vy*distance
}
