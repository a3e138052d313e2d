package ui

import (
	"github.com/rs/zerolog"

	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/view"
)

// Options configures a desktop game window. Layout.Rows and Layout.Cols are
// taken from the game's maze.
type Options struct {
	Game     *gameplay.Game
	Title    string
	AssetDir string
	Layout   view.Layout
	// Reloads, if set, delivers replacement games for the same maze file.
	Reloads <-chan *gameplay.Game
	Log     zerolog.Logger
}
