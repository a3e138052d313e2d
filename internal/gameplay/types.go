package gameplay

import (
	"github.com/sjiamnocna/fancysokoban/internal/actors"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

type Game struct {
	initial  maps.Level
	Name     string
	maze     maps.Maze
	entities maps.Entities
	player   *actors.Player
}

// ShopItem is a potion that can be bought for money.
type ShopItem struct {
	ID   maps.EntityKind
	Name string
	Cost int
}
