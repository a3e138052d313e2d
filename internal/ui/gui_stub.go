//go:build nogui
// +build nogui

package ui

import "fmt"

func RunGUIGame(opts Options) error {
	return fmt.Errorf("GUI mode not available in this build; use --frontend tui or rebuild without -tags nogui")
}
