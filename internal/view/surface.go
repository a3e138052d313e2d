package view

import "github.com/sjiamnocna/fancysokoban/internal/assets"

type TextStyle int

const (
	TextNormal TextStyle = iota
	TextTitle
)

// Surface is a drawing area owned by a frontend. Later draws cover earlier
// ones at the same point.
type Surface interface {
	Clear()
	// DrawSprite draws the sprite centred at p, scaled to size.
	DrawSprite(p Point, s assets.Sprite, size Size) error
	// DrawText draws text centred at p.
	DrawText(p Point, text string, style TextStyle)
}
