package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML form of Config.
type FileConfig struct {
	MazeFile     string `toml:"maze_file"`
	AssetDir     string `toml:"asset_dir"`
	Frontend     string `toml:"frontend"`
	Title        string `toml:"title"`
	MazeSize     int    `toml:"maze_size"`
	ShopWidth    int    `toml:"shop_width"`
	StatsHeight  int    `toml:"stats_height"`
	BannerHeight int    `toml:"banner_height"`
	Watch        *bool  `toml:"watch"`
	LogLevel     string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.fancysokoban/config.toml, or "" without a
// home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".fancysokoban", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("maze", fc.MazeFile, &cfg.MazeFile)
	s.setString("assets", fc.AssetDir, &cfg.AssetDir)
	s.setString("frontend", fc.Frontend, &cfg.Frontend)
	s.setString("title", fc.Title, &cfg.Title)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("maze-size", fc.MazeSize, &cfg.MazeSize)
	s.setInt("shop-width", fc.ShopWidth, &cfg.ShopWidth)
	s.setInt("stats-height", fc.StatsHeight, &cfg.StatsHeight)
	s.setInt("banner-height", fc.BannerHeight, &cfg.BannerHeight)

	s.setBool("watch", fc.Watch, &cfg.Watch)
}

func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
