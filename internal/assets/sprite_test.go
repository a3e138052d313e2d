package assets

import (
	"errors"
	"testing"

	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

func TestTileSprite(t *testing.T) {
	tests := []struct {
		tile maps.Tile
		want Sprite
		file string
	}{
		{maps.Floor, SpriteFloor, "Floor.png"},
		{maps.Wall, SpriteWall, "W.png"},
		{maps.Goal, SpriteGoal, "G.png"},
	}
	for _, tt := range tests {
		t.Run(tt.tile.String(), func(t *testing.T) {
			got, err := TileSprite(tt.tile)
			if err != nil {
				t.Fatalf("TileSprite failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("TileSprite(%v) = %v, want %v", tt.tile, got, tt.want)
			}
			if file, _ := got.File(); file != tt.file {
				t.Errorf("File() = %q, want %q", file, tt.file)
			}
		})
	}

	if _, err := TileSprite(maps.Tile(99)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind for unknown tile, got %v", err)
	}
}

func TestEntitySprite(t *testing.T) {
	tests := []struct {
		kind maps.EntityKind
		want Sprite
		file string
	}{
		{maps.Crate, SpriteCrate, "C.png"},
		{maps.MovePotion, SpriteMovePotion, "M.png"},
		{maps.StrengthPotion, SpriteStrengthPotion, "S.png"},
		{maps.FancyPotion, SpriteFancyPotion, "F.png"},
		{maps.Coin, SpriteCoin, "$.png"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := EntitySprite(tt.kind)
			if err != nil {
				t.Fatalf("EntitySprite failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("EntitySprite(%v) = %v, want %v", tt.kind, got, tt.want)
			}
			if file, _ := got.File(); file != tt.file {
				t.Errorf("File() = %q, want %q", file, tt.file)
			}
		})
	}

	if _, err := EntitySprite(maps.EntityKind(-1)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind for unknown entity, got %v", err)
	}
}

func TestEverySpriteHasAFile(t *testing.T) {
	for s := SpriteFloor; s <= SpriteBanner; s++ {
		if _, err := s.File(); err != nil {
			t.Errorf("Sprite %d has no file: %v", s, err)
		}
	}
	if _, err := Sprite(100).File(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}
