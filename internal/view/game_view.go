package view

import (
	"fmt"
	"strconv"

	"github.com/sjiamnocna/fancysokoban/internal/assets"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

// GameView draws the maze, its entities and the player.
type GameView struct {
	grid    Grid
	surface Surface
}

func NewGameView(grid Grid, surface Surface) *GameView {
	return &GameView{grid: grid, surface: surface}
}

func (v *GameView) Grid() Grid {
	return v.grid
}

// Render clears the surface and draws tiles, then entities, then the player,
// so the player always ends up on top of whatever shares its cell.
func (v *GameView) Render(maze maps.Maze, entities maps.Entities, player maps.Position) error {
	if maze.Rows() != v.grid.Rows() || maze.Cols() != v.grid.Cols() {
		return fmt.Errorf("maze is %dx%d, view is %dx%d",
			maze.Rows(), maze.Cols(), v.grid.Rows(), v.grid.Cols())
	}

	v.surface.Clear()
	cell := v.grid.CellSize()

	for r, row := range maze {
		for c, tile := range row {
			sprite, err := assets.TileSprite(tile)
			if err != nil {
				return err
			}
			if err := v.surface.DrawSprite(v.grid.Midpoint(maps.Position{Row: r, Col: c}), sprite, cell); err != nil {
				return err
			}
		}
	}

	for _, pos := range entities.Positions() {
		ent := entities[pos]
		sprite, err := assets.EntitySprite(ent.Kind)
		if err != nil {
			return err
		}
		mid := v.grid.Midpoint(pos)
		if err := v.surface.DrawSprite(mid, sprite, cell); err != nil {
			return err
		}
		if ent.Kind == maps.Crate {
			v.surface.DrawText(mid, strconv.Itoa(ent.Strength), TextNormal)
		}
	}

	return v.surface.DrawSprite(v.grid.Midpoint(player), assets.SpritePlayer, cell)
}
