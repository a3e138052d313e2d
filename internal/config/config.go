package config

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"

	DefaultTitle    = "Extra Fancy Sokoban"
	DefaultMazeFile = "maze_files/maze2.txt"
	DefaultAssetDir = "images"
)

// Config holds the runtime settings of the game.
type Config struct {
	MazeFile string
	AssetDir string
	Frontend string
	Title    string

	MazeSize     int
	ShopWidth    int
	StatsHeight  int
	BannerHeight int

	Watch    bool
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		MazeFile:     DefaultMazeFile,
		AssetDir:     DefaultAssetDir,
		Frontend:     FrontendGUI,
		Title:        DefaultTitle,
		MazeSize:     450,
		ShopWidth:    200,
		StatsHeight:  90,
		BannerHeight: 75,
		LogLevel:     "info",
	}
}

// Validate checks the configuration for errors and normalises case.
func (c *Config) Validate() error {
	if c.MazeFile == "" {
		return fmt.Errorf("maze file is required")
	}
	if c.AssetDir == "" {
		c.AssetDir = DefaultAssetDir
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}

	c.Frontend = strings.ToLower(c.Frontend)
	if c.Frontend != FrontendGUI && c.Frontend != FrontendTUI {
		return fmt.Errorf("unknown frontend %q (want %s or %s)", c.Frontend, FrontendGUI, FrontendTUI)
	}

	if c.MazeSize <= 0 || c.ShopWidth <= 0 || c.StatsHeight <= 0 || c.BannerHeight <= 0 {
		return fmt.Errorf("layout sizes must be positive")
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// configSetter applies values only where the matching flag was not set on
// the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString is setInt for environment variables.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
