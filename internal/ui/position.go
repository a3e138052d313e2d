//go:build !nogui
// +build !nogui

package ui

import (
	"fyne.io/fyne/v2"

	"github.com/sjiamnocna/fancysokoban/internal/view"
)

// topLeft returns where a box of the given size must be moved so that its
// centre lands on mid.
func topLeft(mid view.Point, size fyne.Size) fyne.Position {
	return fyne.NewPos(mid.X-size.Width/2, mid.Y-size.Height/2)
}

func fyneSize(s view.Size) fyne.Size {
	return fyne.NewSize(s.Width, s.Height)
}
