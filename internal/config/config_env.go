package config

import "os"

// ApplyEnvConfig applies FANCYSOKOBAN_* environment variables, skipping
// flags in changed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("maze", os.Getenv("FANCYSOKOBAN_MAZE_FILE"), &cfg.MazeFile)
	s.setString("assets", os.Getenv("FANCYSOKOBAN_ASSET_DIR"), &cfg.AssetDir)
	s.setString("frontend", os.Getenv("FANCYSOKOBAN_FRONTEND"), &cfg.Frontend)
	s.setString("title", os.Getenv("FANCYSOKOBAN_TITLE"), &cfg.Title)
	s.setString("log-level", os.Getenv("FANCYSOKOBAN_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("maze-size", os.Getenv("FANCYSOKOBAN_MAZE_SIZE"), &cfg.MazeSize); err != nil {
		return err
	}
	if err := s.setIntFromString("shop-width", os.Getenv("FANCYSOKOBAN_SHOP_WIDTH"), &cfg.ShopWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("stats-height", os.Getenv("FANCYSOKOBAN_STATS_HEIGHT"), &cfg.StatsHeight); err != nil {
		return err
	}
	if err := s.setIntFromString("banner-height", os.Getenv("FANCYSOKOBAN_BANNER_HEIGHT"), &cfg.BannerHeight); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("FANCYSOKOBAN_WATCH"), &cfg.Watch)
	return nil
}
