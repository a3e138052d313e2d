package gameplay

import (
	"fmt"
	"io"
	"strings"

	"github.com/sjiamnocna/fancysokoban/internal/actors"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

var shopItems = []ShopItem{
	{ID: maps.StrengthPotion, Name: "Strength Potion", Cost: 5},
	{ID: maps.MovePotion, Name: "Move Potion", Cost: 5},
	{ID: maps.FancyPotion, Name: "Fancy Potion", Cost: 10},
}

func NewGame(level maps.Level) *Game {
	g := &Game{
		initial: level.Clone(),
		Name:    level.Name,
	}
	g.Reset()
	return g
}

func LoadGame(mazeFile string) (*Game, error) {
	level, err := maps.LoadMazeFile(mazeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load maze: %w", err)
	}
	return NewGame(level), nil
}

// Reset restores the level exactly as it was loaded.
func (g *Game) Reset() {
	level := g.initial.Clone()
	g.maze = level.Maze
	g.entities = level.Entities
	g.player = actors.NewPlayer(level.Player, level.Stats)
}

func (g *Game) Maze() maps.Maze {
	return g.maze.Clone()
}

func (g *Game) Entities() maps.Entities {
	return g.entities.Clone()
}

func (g *Game) PlayerPosition() maps.Position {
	return g.player.Position
}

func (g *Game) ShopItems() []ShopItem {
	return append([]ShopItem(nil), shopItems...)
}

func (g *Game) MovesRemaining() int {
	return g.player.Moves
}

func (g *Game) Strength() int {
	return g.player.Strength
}

func (g *Game) Money() int {
	return g.player.Money
}

// AttemptMove moves the player one cell, pushing a crate if one is in the
// way. It reports whether the move happened; a rejected move changes nothing.
func (g *Game) AttemptMove(d actors.Direction) bool {
	if g.player.Moves <= 0 {
		return false
	}

	target, ok := actors.Step(g.player.Position, d)
	if !ok || g.maze.IsWall(target) {
		return false
	}

	if ent, ok := g.entities[target]; ok && ent.Kind == maps.Crate {
		if !g.player.CanPush(ent) {
			return false
		}
		beyond, _ := actors.Step(target, d)
		if g.maze.IsWall(beyond) {
			return false
		}
		if _, blocked := g.entities[beyond]; blocked {
			return false
		}
		delete(g.entities, target)
		g.entities[beyond] = ent
	}

	if ent, ok := g.entities[target]; ok {
		g.player.Collect(ent.Kind)
		delete(g.entities, target)
	}

	g.player.Position = target
	g.player.Moves--
	return true
}

// AttemptPurchase buys the potion with the given id and drinks it at once.
func (g *Game) AttemptPurchase(id maps.EntityKind) bool {
	for _, item := range shopItems {
		if item.ID != id {
			continue
		}
		if g.player.Money < item.Cost {
			return false
		}
		g.player.Money -= item.Cost
		g.player.Collect(item.ID)
		return true
	}
	return false
}

// HasWon reports whether every goal has a crate on it.
func (g *Game) HasWon() bool {
	for r, row := range g.maze {
		for c, t := range row {
			if t != maps.Goal {
				continue
			}
			ent, ok := g.entities[maps.Position{Row: r, Col: c}]
			if !ok || ent.Kind != maps.Crate {
				return false
			}
		}
	}
	return true
}

func (g *Game) Render(w io.Writer) {
	var b strings.Builder
	for r, row := range g.maze {
		for c, t := range row {
			pos := maps.Position{Row: r, Col: c}
			if pos == g.player.Position {
				b.WriteByte('P')
				continue
			}
			if ent, ok := g.entities[pos]; ok {
				b.WriteRune(entityGlyph(ent))
				continue
			}
			switch t {
			case maps.Wall:
				b.WriteByte('W')
			case maps.Goal:
				b.WriteByte('G')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
	fmt.Fprintf(w, "\nMoves remaining: %d | Strength: %d | Money: $%d\n",
		g.player.Moves, g.player.Strength, g.player.Money)
	if g.HasWon() {
		fmt.Fprintln(w, "All goals filled!")
	}
}

func entityGlyph(e maps.Entity) rune {
	switch e.Kind {
	case maps.Crate:
		return rune('0' + e.Strength)
	case maps.StrengthPotion:
		return 'S'
	case maps.MovePotion:
		return 'M'
	case maps.FancyPotion:
		return 'F'
	case maps.Coin:
		return '$'
	default:
		return '?'
	}
}
