//go:build !nogui
// +build !nogui

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/sjiamnocna/fancysokoban/internal/assets"
	"github.com/sjiamnocna/fancysokoban/internal/control"
	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/view"
)

type GUIGame struct {
	app        fyne.App
	window     fyne.Window
	game       *gameplay.Game
	ctrl       *control.Controller
	cache      *assets.Cache
	layout     view.Layout
	banner     *surface
	board      *surface
	stats      *surface
	keyCatcher *keyCatcher
	reloads    <-chan *gameplay.Game
	log        zerolog.Logger
	err        error // first fatal error, returned once the window closes
}

// surface is a fixed-size drawing area made of absolutely positioned canvas
// objects.
type surface struct {
	cache *assets.Cache
	size  view.Size
	box   *fyne.Container
}

type keyCatcher struct {
	widget.BaseWidget
	onKey func(*fyne.KeyEvent)
}
