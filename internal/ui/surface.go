//go:build !nogui
// +build !nogui

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/sjiamnocna/fancysokoban/internal/assets"
	"github.com/sjiamnocna/fancysokoban/internal/view"
)

func newSurface(cache *assets.Cache, size view.Size) *surface {
	return &surface{
		cache: cache,
		size:  size,
		box:   container.NewWithoutLayout(),
	}
}

// Object returns the surface for placing in a layout. Containers without a
// layout have no min size, so it is wrapped in a fixed grid cell.
func (s *surface) Object() fyne.CanvasObject {
	return container.NewGridWrap(fyneSize(s.size), s.box)
}

func (s *surface) Clear() {
	s.box.Objects = nil
	s.box.Refresh()
}

func (s *surface) DrawSprite(p view.Point, sprite assets.Sprite, size view.Size) error {
	img, err := s.cache.Sprite(sprite, int(size.Width), int(size.Height))
	if err != nil {
		return err
	}
	obj := canvas.NewImageFromImage(img)
	obj.FillMode = canvas.ImageFillStretch
	obj.Resize(fyneSize(size))
	obj.Move(topLeft(p, fyneSize(size)))
	s.box.Add(obj)
	return nil
}

func (s *surface) DrawText(p view.Point, text string, style view.TextStyle) {
	t := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	t.Alignment = fyne.TextAlignCenter
	switch style {
	case view.TextTitle:
		t.TextStyle = fyne.TextStyle{Bold: true}
		t.TextSize = titleTextSize
	default:
		t.TextSize = crateTextSize
	}
	size := t.MinSize()
	t.Resize(size)
	t.Move(topLeft(p, size))
	s.box.Add(t)
}
