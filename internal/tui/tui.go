// Package tui plays the game in a terminal, drawing the same views as the
// desktop frontend into regions of a tcell screen.
package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/sjiamnocna/fancysokoban/internal/control"
	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
	"github.com/sjiamnocna/fancysokoban/internal/view"
)

const (
	cellWidth     = 3
	shopWidth     = 26
	minStatsWidth = 54
	statsHeight   = 3
	bannerHeight  = 1
	helpText      = "wasd/arrows move | 1-9 buy | q quit"
)

type Options struct {
	Game    *gameplay.Game
	Reloads <-chan *gameplay.Game
	Log     zerolog.Logger
	// Screen is opened if nil.
	Screen tcell.Screen
}

type TUIGame struct {
	screen  tcell.Screen
	game    *gameplay.Game
	ctrl    *control.Controller
	shop    *view.Shop
	layout  view.Layout
	body    int // rows between the banner and the stats
	reloads <-chan *gameplay.Game
	log     zerolog.Logger

	prompt   string
	onChoice func(bool)
	notice   string
	quit     bool
	err      error
}

// RunTUIGame takes over the terminal until the player quits.
func RunTUIGame(opts Options) error {
	if opts.Game == nil {
		return errors.New("no game to run")
	}
	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := newTUIGame(screen, opts)
	if err != nil {
		return err
	}
	return g.run()
}

func newTUIGame(screen tcell.Screen, opts Options) (*TUIGame, error) {
	g := &TUIGame{
		screen:  screen,
		game:    opts.Game,
		reloads: opts.Reloads,
		log:     opts.Log,
	}

	maze := opts.Game.Maze()
	items := opts.Game.ShopItems()
	g.body = max(maze.Rows(), len(items)+1)
	g.layout = view.Layout{
		Rows:         maze.Rows(),
		Cols:         maze.Cols(),
		MazeWidth:    float32(maze.Cols() * cellWidth),
		MazeHeight:   float32(maze.Rows()),
		ShopWidth:    float32(max(shopWidth, minStatsWidth-maze.Cols()*cellWidth)),
		StatsHeight:  statsHeight,
		BannerHeight: bannerHeight,
	}

	full := int(g.layout.MazeWidth + g.layout.ShopWidth)
	surfaces := view.Surfaces{
		Banner: &region{screen: screen, x: 0, y: 0, w: full, h: bannerHeight},
		Game:   &region{screen: screen, x: 0, y: bannerHeight, w: int(g.layout.MazeWidth), h: maze.Rows()},
		Stats:  &region{screen: screen, x: 0, y: g.statsTop(), w: full, h: statsHeight},
	}

	var ctrl *control.Controller
	sokoban, err := view.NewSokoban(g.layout, surfaces, items, func(id maps.EntityKind) {
		if err := ctrl.BuyItem(id); err != nil {
			g.fail(err)
		}
	})
	if err != nil {
		return nil, err
	}
	ctrl = control.New(opts.Game, sokoban, g, g.log)
	g.ctrl = ctrl
	g.shop = sokoban.Shop()

	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *TUIGame) statsTop() int {
	return bannerHeight + g.body + 1
}

func (g *TUIGame) statusTop() int {
	return g.statsTop() + statsHeight + 1
}

func (g *TUIGame) run() error {
	if g.reloads != nil {
		go g.forwardReloads()
	}

	for !g.quit {
		g.drawShop()
		g.drawStatus()
		g.screen.Show()

		ev := g.screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventInterrupt:
			if game, ok := ev.Data().(*gameplay.Game); ok {
				g.applyReload(game)
			}
		case *tcell.EventKey:
			g.handleKey(ev)
		}
	}
	return g.err
}

// forwardReloads hands reloaded games to the event loop goroutine.
func (g *TUIGame) forwardReloads() {
	for game := range g.reloads {
		if err := g.screen.PostEvent(tcell.NewEventInterrupt(game)); err != nil {
			g.log.Warn().Err(err).Msg("dropped maze reload")
		}
	}
}

func (g *TUIGame) applyReload(game *gameplay.Game) {
	err := g.ctrl.Load(game)
	switch {
	case errors.Is(err, control.ErrDimensionMismatch):
		g.log.Warn().Err(err).Msg("reload ignored")
		g.notice = "maze changed size; restart to play it"
	case err != nil:
		g.fail(err)
	default:
		g.game = game
		g.prompt, g.onChoice = "", nil
		g.notice = "maze reloaded"
	}
}

func (g *TUIGame) handleKey(ev *tcell.EventKey) {
	g.notice = ""

	if g.onChoice != nil {
		switch {
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
			g.answer(true)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'),
			ev.Key() == tcell.KeyEscape:
			g.answer(false)
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.Quit()
	case tcell.KeyUp:
		g.press("up")
	case tcell.KeyDown:
		g.press("down")
	case tcell.KeyLeft:
		g.press("left")
	case tcell.KeyRight:
		g.press("right")
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q' || r == 'Q':
			g.Quit()
		case r >= '1' && r <= '9':
			entries := g.shop.Entries()
			if i := int(r - '1'); i < len(entries) {
				entries[i].Buy()
			}
		default:
			g.press(string(r))
		}
	}
}

func (g *TUIGame) press(key string) {
	if err := g.ctrl.HandleKey(key); err != nil {
		g.fail(err)
	}
}

func (g *TUIGame) answer(yes bool) {
	onChoice := g.onChoice
	g.prompt, g.onChoice = "", nil
	onChoice(yes)
}

// Confirm shows message on the status line; the next y or n answers it.
func (g *TUIGame) Confirm(title, message string, onChoice func(bool)) {
	g.prompt = message + " (y/n)"
	g.onChoice = onChoice
}

func (g *TUIGame) Quit() {
	g.quit = true
}

func (g *TUIGame) fail(err error) {
	g.log.Error().Err(err).Msg("game stopped")
	if g.err == nil {
		g.err = err
	}
	g.quit = true
}

func (g *TUIGame) drawShop() {
	x := int(g.layout.MazeWidth) + 2
	w := int(g.layout.ShopWidth) - 2
	fill(g.screen, x, bannerHeight, w, g.body, ' ', tcell.StyleDefault)

	putText(g.screen, x, bannerHeight, g.shop.Title(), tcell.StyleDefault.Bold(true))
	for i, entry := range g.shop.Entries() {
		if i >= 9 {
			break
		}
		putText(g.screen, x, bannerHeight+1+i, fmt.Sprintf("[%d] %s", i+1, entry.Label()), tcell.StyleDefault)
	}
}

func (g *TUIGame) drawStatus() {
	y := g.statusTop()
	w, _ := g.screen.Size()
	fill(g.screen, 0, y, w, 1, ' ', tcell.StyleDefault)

	switch {
	case g.prompt != "":
		putText(g.screen, 0, y, g.prompt, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	case g.notice != "":
		putText(g.screen, 0, y, g.notice, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	default:
		putText(g.screen, 0, y, helpText, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}
