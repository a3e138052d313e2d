package maps

import "errors"

type Tile int

const (
	Floor Tile = iota
	Wall
	Goal
)

func (t Tile) String() string {
	switch t {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

type EntityKind int

const (
	Crate EntityKind = iota
	MovePotion
	StrengthPotion
	FancyPotion
	Coin
)

func (k EntityKind) String() string {
	switch k {
	case Crate:
		return "crate"
	case MovePotion:
		return "move potion"
	case StrengthPotion:
		return "strength potion"
	case FancyPotion:
		return "fancy potion"
	case Coin:
		return "coin"
	default:
		return "unknown"
	}
}

// Entity is anything that occupies a cell on top of its tile.
// Strength is only meaningful for crates: the strength needed to push it.
type Entity struct {
	Kind     EntityKind
	Strength int
}

// Position is a zero-based (row, column) pair.
type Position struct {
	Row int
	Col int
}

// Entities maps board positions to the entity standing there.
type Entities map[Position]Entity

// Maze is the static board. Rows always have equal length.
type Maze [][]Tile

// PlayerStats are the starting values read from a maze file header.
type PlayerStats struct {
	Strength int
	Moves    int
	Money    int
}

// Level is everything a maze file describes.
type Level struct {
	Name     string
	Maze     Maze
	Entities Entities
	Player   Position
	Stats    PlayerStats
}

var (
	ErrEmptyMaze    = errors.New("maze has no grid data")
	ErrNoPlayer     = errors.New("maze has no player")
	ErrManyPlayers  = errors.New("maze has more than one player")
	ErrNoGoals      = errors.New("maze has no goals")
	ErrTooFewCrates = errors.New("maze has fewer crates than goals")
)
