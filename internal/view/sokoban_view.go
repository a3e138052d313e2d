package view

import (
	"github.com/sjiamnocna/fancysokoban/internal/assets"
	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

// Layout holds the pixel (or terminal cell) measurements of the composite
// view. The banner and stats span the maze and the shop beside it.
type Layout struct {
	Rows         int
	Cols         int
	MazeWidth    float32
	MazeHeight   float32
	ShopWidth    float32
	StatsHeight  float32
	BannerHeight float32
}

func (l Layout) MazeArea() Size {
	return Size{Width: l.MazeWidth, Height: l.MazeHeight}
}

func (l Layout) BannerSize() Size {
	return Size{Width: l.MazeWidth + l.ShopWidth, Height: l.BannerHeight}
}

func (l Layout) StatsSize() Size {
	return Size{Width: l.MazeWidth + l.ShopWidth, Height: l.StatsHeight}
}

type Surfaces struct {
	Banner Surface
	Game   Surface
	Stats  Surface
}

// Sokoban wraps the banner, game view, stats view and shop. The controller
// only talks to it through DisplayGame and DisplayStats.
type Sokoban struct {
	layout Layout
	game   *GameView
	stats  *StatsView
	shop   *Shop
}

func NewSokoban(layout Layout, surfaces Surfaces, items []gameplay.ShopItem, onBuy func(maps.EntityKind)) (*Sokoban, error) {
	grid, err := NewGrid(layout.Rows, layout.Cols, layout.MazeArea())
	if err != nil {
		return nil, err
	}
	stats, err := NewStatsView(layout.StatsSize(), surfaces.Stats)
	if err != nil {
		return nil, err
	}

	banner := layout.BannerSize()
	surfaces.Banner.Clear()
	if err := surfaces.Banner.DrawSprite(Point{X: banner.Width / 2, Y: banner.Height / 2}, assets.SpriteBanner, banner); err != nil {
		return nil, err
	}

	return &Sokoban{
		layout: layout,
		game:   NewGameView(grid, surfaces.Game),
		stats:  stats,
		shop:   NewShop(items, onBuy),
	}, nil
}

func (v *Sokoban) Layout() Layout {
	return v.layout
}

func (v *Sokoban) Shop() *Shop {
	return v.shop
}

func (v *Sokoban) DisplayGame(maze maps.Maze, entities maps.Entities, player maps.Position) error {
	return v.game.Render(maze, entities, player)
}

func (v *Sokoban) DisplayStats(moves, strength, money int) {
	v.stats.Render(moves, strength, money)
}
