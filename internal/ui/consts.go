//go:build !nogui
// +build !nogui

package ui

const (
	titleTextSize    = 16
	crateTextSize    = 14
	buyButtonText    = "Buy"
	errorDialogTitle = "Extra Fancy Sokoban"
)
