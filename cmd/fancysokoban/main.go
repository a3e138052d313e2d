package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/sjiamnocna/fancysokoban/internal/config"
	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/mazewatch"
	"github.com/sjiamnocna/fancysokoban/internal/tui"
	"github.com/sjiamnocna/fancysokoban/internal/ui"
	"github.com/sjiamnocna/fancysokoban/internal/view"
)

const mazeDir = "maze_files"

var longHelp = strings.TrimSpace(`
Push every crate onto a goal before you run out of moves.

Crates are numbered with the strength needed to push them. Pick up potions
and coins on the way, or buy potions in the shop.

Controls: w/a/s/d or the arrow keys. In the terminal, 1-9 buys from the shop
and q quits.
`)

var exampleUsage = strings.TrimSpace(`
  fancysokoban
  fancysokoban maze_files/maze1.txt --frontend tui
  fancysokoban maze1.txt --watch --log-level debug
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// resolveMazeFile lets a bare file name refer to a maze in the maze directory.
func resolveMazeFile(mazeFile string) string {
	if _, err := os.Stat(mazeFile); os.IsNotExist(err) && !filepath.IsAbs(mazeFile) && filepath.Dir(mazeFile) == "." {
		candidate := filepath.Join(mazeDir, mazeFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return mazeFile
}

func main() {
	log := config.Logger("info")

	if err := newRootCommand(run).Execute(); err != nil {
		log.Error().Err(err).Msg("fancysokoban")
		os.Exit(1)
	}
}

// newRootCommand builds the command line. Errors are returned to the caller
// for logging instead of being printed by cobra.
func newRootCommand(runGame func(config.Config) error) *cobra.Command {
	cfg := config.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "fancysokoban [maze-file]",
		Short:   "Extra Fancy Sokoban, a crate pushing puzzle with potions and a shop",
		Long:    longHelp,
		Example: exampleUsage,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = config.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				cfg.MazeFile = args[0]
				changed["maze"] = true
			}

			if cfgFile != "" && config.FileExists(cfgFile) {
				fc, err := config.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				config.ApplyFileConfig(&cfg, fc, changed)
			}
			if err := config.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			cfg.MazeFile = resolveMazeFile(cfg.MazeFile)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runGame(cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.fancysokoban/config.toml)")
	root.Flags().StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "directory holding the sprite images")
	root.Flags().StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "user interface: gui or tui")
	root.Flags().StringVar(&cfg.Title, "title", cfg.Title, "window title")
	root.Flags().IntVar(&cfg.MazeSize, "maze-size", cfg.MazeSize, "width and height of the maze area in pixels")
	root.Flags().IntVar(&cfg.ShopWidth, "shop-width", cfg.ShopWidth, "width of the shop panel in pixels")
	root.Flags().IntVar(&cfg.StatsHeight, "stats-height", cfg.StatsHeight, "height of the stats panel in pixels")
	root.Flags().IntVar(&cfg.BannerHeight, "banner-height", cfg.BannerHeight, "height of the banner in pixels")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the maze when its file changes")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	return root
}

func run(cfg config.Config) error {
	// The terminal frontend owns the screen, so its logs are held back
	// until it exits.
	var held *lockedBuffer
	var log zerolog.Logger
	if cfg.Frontend == config.FrontendTUI {
		held = &lockedBuffer{}
		log, _ = config.NewLogger(held, cfg.LogLevel)
		defer held.flushTo(os.Stderr)
	} else {
		log = config.Logger(cfg.LogLevel)
	}

	game, err := gameplay.LoadGame(cfg.MazeFile)
	if err != nil {
		return err
	}
	log.Info().Str("maze", cfg.MazeFile).Str("frontend", cfg.Frontend).Msg("starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads chan *gameplay.Game
	if cfg.Watch {
		reloads = make(chan *gameplay.Game, 1)
		w := mazewatch.New(cfg.MazeFile, log)
		go func() {
			err := w.Run(ctx, func(g *gameplay.Game) {
				select {
				case reloads <- g:
				case <-ctx.Done():
				}
			})
			if err != nil {
				log.Warn().Err(err).Msg("maze watcher stopped")
			}
		}()
	}

	switch cfg.Frontend {
	case config.FrontendTUI:
		return tui.RunTUIGame(tui.Options{
			Game:    game,
			Reloads: reloads,
			Log:     log,
		})
	default:
		return ui.RunGUIGame(ui.Options{
			Game:     game,
			Title:    cfg.Title,
			AssetDir: cfg.AssetDir,
			Layout: view.Layout{
				MazeWidth:    float32(cfg.MazeSize),
				MazeHeight:   float32(cfg.MazeSize),
				ShopWidth:    float32(cfg.ShopWidth),
				StatsHeight:  float32(cfg.StatsHeight),
				BannerHeight: float32(cfg.BannerHeight),
			},
			Reloads: reloads,
			Log:     log,
		})
	}
}

// lockedBuffer is a log sink shared by the game loop and the maze watcher.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) flushTo(w io.Writer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.WriteTo(w)
}
