package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/sjiamnocna/fancysokoban/internal/assets"
)

const bannerText = "EXTRA FANCY SOKOBAN"

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[assets.Sprite]glyph{
	assets.SpriteFloor:          {' ', tcell.StyleDefault},
	assets.SpriteWall:           {'#', tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGray)},
	assets.SpriteGoal:           {'.', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)},
	assets.SpriteCrate:          {' ', tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorSaddleBrown).Bold(true)},
	assets.SpriteMovePotion:     {'M', tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)},
	assets.SpriteStrengthPotion: {'S', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	assets.SpriteFancyPotion:    {'F', tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)},
	assets.SpriteCoin:           {'$', tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)},
	assets.SpritePlayer:         {'@', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
	assets.SpriteBanner:         {' ', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold).Bold(true)},
}

func glyphFor(s assets.Sprite) (glyph, error) {
	g, ok := glyphs[s]
	if !ok {
		return glyph{}, fmt.Errorf("%w: sprite %d", assets.ErrUnknownKind, int(s))
	}
	return g, nil
}
