//go:build !nogui
// +build !nogui

package ui

import (
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sjiamnocna/fancysokoban/internal/assets"
	"github.com/sjiamnocna/fancysokoban/internal/control"
	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
	"github.com/sjiamnocna/fancysokoban/internal/view"
)

func newKeyCatcher(onKey func(*fyne.KeyEvent)) *keyCatcher {
	k := &keyCatcher{onKey: onKey}
	k.ExtendBaseWidget(k)
	return k
}

func (k *keyCatcher) FocusGained() {}

func (k *keyCatcher) FocusLost() {}

func (k *keyCatcher) TypedKey(ev *fyne.KeyEvent) {
	if k.onKey != nil {
		k.onKey(ev)
	}
}

func (k *keyCatcher) TypedRune(r rune) {}

func (k *keyCatcher) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent)
	return widget.NewSimpleRenderer(bg)
}

// RunGUIGame opens the game window and blocks until it is closed. It returns
// the error that ended the session, if any.
func RunGUIGame(opts Options) error {
	if opts.Game == nil {
		return errors.New("no game to run")
	}

	g := &GUIGame{
		app:     app.New(),
		game:    opts.Game,
		cache:   assets.NewCache(opts.AssetDir),
		layout:  opts.Layout,
		reloads: opts.Reloads,
		log:     opts.Log,
	}

	title := opts.Title
	if opts.Game.Name != "" {
		title = fmt.Sprintf("%s - %s", title, opts.Game.Name)
	}
	g.window = g.app.NewWindow(title)
	g.window.SetMaster()
	g.window.SetFixedSize(true)

	if err := g.setupGameUI(); err != nil {
		g.window.Resize(fyne.NewSize(480, 240))
		g.fail(err)
	} else if g.reloads != nil {
		go g.watchReloads()
	}

	g.window.ShowAndRun()
	return g.err
}

func (g *GUIGame) setupGameUI() error {
	maze := g.game.Maze()
	g.layout.Rows = maze.Rows()
	g.layout.Cols = maze.Cols()

	g.banner = newSurface(g.cache, g.layout.BannerSize())
	g.board = newSurface(g.cache, g.layout.MazeArea())
	g.stats = newSurface(g.cache, g.layout.StatsSize())

	// The shop is built before the controller exists; purchases only happen
	// once the window is running.
	var ctrl *control.Controller
	sokoban, err := view.NewSokoban(g.layout,
		view.Surfaces{Banner: g.banner, Game: g.board, Stats: g.stats},
		g.game.ShopItems(),
		func(id maps.EntityKind) {
			if err := ctrl.BuyItem(id); err != nil {
				g.fail(err)
				return
			}
			g.focus()
		})
	if err != nil {
		return err
	}
	ctrl = control.New(g.game, sokoban, g, g.log)
	g.ctrl = ctrl

	g.initControls()
	gameArea := container.NewStack(g.board.Object(), g.keyCatcher)
	middle := container.NewHBox(gameArea, g.shopPanel(sokoban.Shop()))
	g.window.SetContent(container.NewVBox(g.banner.Object(), middle, g.stats.Object()))
	g.window.Canvas().SetOnTypedKey(g.handleKeyPress)
	g.focus()

	return ctrl.Start()
}

func (g *GUIGame) shopPanel(shop *view.Shop) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(shop.Title(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	rows := container.NewVBox(title)
	for _, entry := range shop.Entries() {
		rows.Add(container.NewBorder(nil, nil, nil,
			widget.NewButton(buyButtonText, entry.Buy),
			widget.NewLabel(entry.Label())))
	}
	return container.NewGridWrap(fyne.NewSize(g.layout.ShopWidth, g.layout.MazeHeight), rows)
}

func (g *GUIGame) initControls() {
	if g.keyCatcher == nil {
		g.keyCatcher = newKeyCatcher(g.handleKeyPress)
	}
}

// focus puts keyboard focus back on the board, e.g. after a Buy button
// took it.
func (g *GUIGame) focus() {
	if g.keyCatcher != nil {
		g.window.Canvas().Focus(g.keyCatcher)
	}
}

func (g *GUIGame) handleKeyPress(ev *fyne.KeyEvent) {
	if g.ctrl == nil {
		return
	}
	if err := g.ctrl.HandleKey(string(ev.Name)); err != nil {
		g.fail(err)
	}
}

// Confirm shows a yes/no dialog. It returns at once; onChoice runs when the
// player answers.
func (g *GUIGame) Confirm(title, message string, onChoice func(bool)) {
	d := dialog.NewConfirm(title, message, func(yes bool) {
		onChoice(yes)
		g.focus()
	}, g.window)
	d.SetConfirmText("Yes")
	d.SetDismissText("No")
	d.Show()
}

func (g *GUIGame) Quit() {
	g.app.Quit()
}

func (g *GUIGame) watchReloads() {
	for game := range g.reloads {
		fyne.Do(func() {
			g.applyReload(game)
		})
	}
}

func (g *GUIGame) applyReload(game *gameplay.Game) {
	if g.ctrl == nil || g.err != nil {
		return
	}
	err := g.ctrl.Load(game)
	switch {
	case errors.Is(err, control.ErrDimensionMismatch):
		g.log.Warn().Err(err).Msg("reload ignored; restart to play a maze of a different size")
	case err != nil:
		g.fail(err)
	default:
		g.game = game
	}
}

// fail records err as the session's fatal error and closes the window once
// the player has seen it.
func (g *GUIGame) fail(err error) {
	g.log.Error().Err(err).Msg("game stopped")
	if g.err != nil {
		return
	}
	g.err = err
	g.ctrl = nil
	g.showErrorAndClose(err)
}

func (g *GUIGame) showErrorAndClose(err error) {
	msg := widget.NewLabel(err.Error())
	msg.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(msg)

	var d dialog.Dialog
	key := newKeyCatcher(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape || ev.Name == fyne.KeyReturn || ev.Name == fyne.KeyEnter {
			if d != nil {
				d.Hide()
			}
			g.window.Close()
		}
	})
	stack := container.NewStack(content, key)

	d = dialog.NewCustom(errorDialogTitle, "Exit", stack, g.window)
	d.SetOnClosed(func() {
		g.window.Close()
	})
	d.Show()
	g.window.Canvas().Focus(key)
}
