package actors

import "github.com/sjiamnocna/fancysokoban/internal/maps"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

type Player struct {
	Position maps.Position
	Strength int
	Moves    int
	Money    int
}
