package assets

import (
	"errors"
	"fmt"

	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

// ErrUnknownKind is returned for tile or entity tags without a sprite.
var ErrUnknownKind = errors.New("no sprite for kind")

type Sprite int

const (
	SpriteFloor Sprite = iota
	SpriteWall
	SpriteGoal
	SpriteCrate
	SpriteMovePotion
	SpriteStrengthPotion
	SpriteFancyPotion
	SpriteCoin
	SpritePlayer
	SpriteBanner
)

var spriteFiles = map[Sprite]string{
	SpriteFloor:          "Floor.png",
	SpriteWall:           "W.png",
	SpriteGoal:           "G.png",
	SpriteCrate:          "C.png",
	SpriteMovePotion:     "M.png",
	SpriteStrengthPotion: "S.png",
	SpriteFancyPotion:    "F.png",
	SpriteCoin:           "$.png",
	SpritePlayer:         "P.png",
	SpriteBanner:         "banner.png",
}

// File returns the asset file name of the sprite, relative to the asset directory.
func (s Sprite) File() (string, error) {
	name, ok := spriteFiles[s]
	if !ok {
		return "", fmt.Errorf("%w: sprite %d", ErrUnknownKind, int(s))
	}
	return name, nil
}

func TileSprite(t maps.Tile) (Sprite, error) {
	switch t {
	case maps.Floor:
		return SpriteFloor, nil
	case maps.Wall:
		return SpriteWall, nil
	case maps.Goal:
		return SpriteGoal, nil
	default:
		return 0, fmt.Errorf("%w: tile %d", ErrUnknownKind, int(t))
	}
}

func EntitySprite(k maps.EntityKind) (Sprite, error) {
	switch k {
	case maps.Crate:
		return SpriteCrate, nil
	case maps.MovePotion:
		return SpriteMovePotion, nil
	case maps.StrengthPotion:
		return SpriteStrengthPotion, nil
	case maps.FancyPotion:
		return SpriteFancyPotion, nil
	case maps.Coin:
		return SpriteCoin, nil
	default:
		return 0, fmt.Errorf("%w: entity %d", ErrUnknownKind, int(k))
	}
}
