package tui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/sjiamnocna/fancysokoban/internal/assets"
	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
	"github.com/sjiamnocna/fancysokoban/internal/view"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	s.SetSize(80, 25)
	t.Cleanup(s.Fini)
	return s
}

func newGame(t *testing.T, lines ...string) *gameplay.Game {
	t.Helper()
	level, err := maps.ParseLevel(lines)
	if err != nil {
		t.Fatalf("Failed to parse level: %v", err)
	}
	return gameplay.NewGame(level)
}

var winInOne = []string{
	"1 5 10",
	"WWWWWW",
	"WP1GSW",
	"WWWWWW",
}

func cellAt(s tcell.Screen, pos maps.Position) rune {
	r, _, _, _ := s.GetContent(pos.Col*cellWidth+1, bannerHeight+pos.Row)
	return r
}

func rowText(s tcell.Screen, y, from, n int) string {
	out := make([]rune, 0, n)
	for x := from; x < from+n; x++ {
		r, _, _, _ := s.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestInitialDraw(t *testing.T) {
	screen := newSimScreen(t)
	g, err := newTUIGame(screen, Options{Game: newGame(t, winInOne...), Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("newTUIGame failed: %v", err)
	}

	tests := []struct {
		pos  maps.Position
		want rune
	}{
		{maps.Position{Row: 0, Col: 0}, glyphs[assets.SpriteWall].r},
		{maps.Position{Row: 1, Col: 1}, '@'},
		{maps.Position{Row: 1, Col: 2}, '1'},
		{maps.Position{Row: 1, Col: 3}, glyphs[assets.SpriteGoal].r},
		{maps.Position{Row: 1, Col: 4}, 'S'},
	}
	for _, tt := range tests {
		if got := cellAt(screen, tt.pos); got != tt.want {
			t.Errorf("Cell %+v = %q, want %q", tt.pos, got, tt.want)
		}
	}

	g.drawShop()
	x := int(g.layout.MazeWidth) + 2
	if got := rowText(screen, bannerHeight+3, x, len("[3] Fancy Potion: $10")); got != "[3] Fancy Potion: $10" {
		t.Errorf("Shop row = %q", got)
	}
}

func TestLayoutKeepsStatsReadable(t *testing.T) {
	screen := newSimScreen(t)
	g, err := newTUIGame(screen, Options{Game: newGame(t, winInOne...), Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("newTUIGame failed: %v", err)
	}
	if w := g.layout.MazeWidth + g.layout.ShopWidth; w < minStatsWidth {
		t.Errorf("Stats width %v is narrower than %d", w, minStatsWidth)
	}
	// 3 maze rows, but 4 shop rows.
	if g.body != 4 {
		t.Errorf("body = %d, want 4", g.body)
	}
}

func TestMoveAndQuit(t *testing.T) {
	screen := newSimScreen(t)
	game := newGame(t,
		"1 5",
		"WWWWWW",
		"WP 1GW",
		"WWWWWW",
	)
	g, err := newTUIGame(screen, Options{Game: game, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("newTUIGame failed: %v", err)
	}

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := g.run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if game.PlayerPosition() != (maps.Position{Row: 1, Col: 2}) {
		t.Errorf("Player at %+v, want (1,2)", game.PlayerPosition())
	}
	if got := cellAt(screen, maps.Position{Row: 1, Col: 2}); got != '@' {
		t.Errorf("Player not redrawn, cell shows %q", got)
	}
}

func TestWinPromptAndPlayAgain(t *testing.T) {
	screen := newSimScreen(t)
	game := newGame(t, winInOne...)
	g, err := newTUIGame(screen, Options{Game: game, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("newTUIGame failed: %v", err)
	}

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	// Ignored while the prompt is open.
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := g.run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if game.PlayerPosition() != (maps.Position{Row: 1, Col: 1}) || game.HasWon() {
		t.Error("Expected the level to be reset after answering yes")
	}
}

func TestLossPromptDeclined(t *testing.T) {
	screen := newSimScreen(t)
	g, err := newTUIGame(screen, Options{Game: newGame(t,
		"1 1",
		"WWWWWWW",
		"WP  1GW",
		"WWWWWWW",
	), Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("newTUIGame failed: %v", err)
	}

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	if err := g.run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !g.quit {
		t.Error("Expected declining to quit")
	}
}

func TestShopKeys(t *testing.T) {
	screen := newSimScreen(t)
	game := newGame(t, winInOne...)
	g, err := newTUIGame(screen, Options{Game: game, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("newTUIGame failed: %v", err)
	}

	screen.InjectKey(tcell.KeyRune, '3', tcell.ModNone) // fancy potion, $10
	screen.InjectKey(tcell.KeyRune, '1', tcell.ModNone) // no money left
	screen.InjectKey(tcell.KeyRune, '9', tcell.ModNone) // no such item
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := g.run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if game.Strength() != 3 || game.MovesRemaining() != 7 || game.Money() != 0 {
		t.Errorf("After purchase: strength %d moves %d money %d, want 3 7 0",
			game.Strength(), game.MovesRemaining(), game.Money())
	}
}

func TestReloadThroughInterrupt(t *testing.T) {
	screen := newSimScreen(t)
	g, err := newTUIGame(screen, Options{Game: newGame(t, winInOne...), Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("newTUIGame failed: %v", err)
	}

	next := newGame(t,
		"4 40",
		"WWWWWW",
		"W 1GPW",
		"WWWWWW",
	)
	bigger := newGame(t,
		"WWWWWWW",
		"WP1G  W",
		"WWWWWWW",
	)
	if err := screen.PostEvent(tcell.NewEventInterrupt(next)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	if err := screen.PostEvent(tcell.NewEventInterrupt(bigger)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := g.run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if g.game != next {
		t.Error("Expected the same-sized maze to be loaded")
	}
	if got := cellAt(screen, maps.Position{Row: 1, Col: 4}); got != '@' {
		t.Errorf("Reloaded player not drawn, cell shows %q", got)
	}
}

func TestRegionDrawTextKeepsBackground(t *testing.T) {
	screen := newSimScreen(t)
	r := &region{screen: screen, x: 0, y: 0, w: 9, h: 1}
	if err := r.DrawSprite(view.Point{X: 1.5, Y: 0.5}, assets.SpriteCrate, view.Size{Width: 3, Height: 1}); err != nil {
		t.Fatalf("DrawSprite failed: %v", err)
	}
	r.DrawText(view.Point{X: 1.5, Y: 0.5}, "7", view.TextNormal)

	ch, _, style, _ := screen.GetContent(1, 0)
	if ch != '7' {
		t.Fatalf("Expected '7' at (1,0), got %q", ch)
	}
	_, bg, _ := style.Decompose()
	_, crateBg, _ := glyphs[assets.SpriteCrate].style.Decompose()
	if bg != crateBg {
		t.Errorf("Label background = %v, want crate background %v", bg, crateBg)
	}
}

func TestGlyphForUnknownSprite(t *testing.T) {
	if _, err := glyphFor(assets.Sprite(99)); !errors.Is(err, assets.ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}
