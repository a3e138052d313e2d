package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/sjiamnocna/fancysokoban/internal/assets"
	"github.com/sjiamnocna/fancysokoban/internal/view"
)

// region is a rectangle of terminal cells that implements view.Surface.
type region struct {
	screen tcell.Screen
	x, y   int
	w, h   int
}

func (r *region) Clear() {
	fill(r.screen, r.x, r.y, r.w, r.h, ' ', tcell.StyleDefault)
}

// DrawSprite fills the sprite's cell box with its background and puts the
// glyph in the middle. The banner sprite carries the game title instead.
func (r *region) DrawSprite(p view.Point, s assets.Sprite, size view.Size) error {
	g, err := glyphFor(s)
	if err != nil {
		return err
	}
	x0 := r.x + int(p.X-size.Width/2)
	y0 := r.y + int(p.Y-size.Height/2)
	w, h := int(size.Width), int(size.Height)
	fill(r.screen, x0, y0, w, h, ' ', g.style)

	if s == assets.SpriteBanner {
		putCentred(r.screen, r.x+int(p.X), r.y+int(p.Y), bannerText, g.style)
		return nil
	}
	if g.r != ' ' {
		gx := x0 + (w-runewidth.RuneWidth(g.r))/2
		r.screen.SetContent(gx, r.y+int(p.Y), g.r, nil, g.style)
	}
	return nil
}

// DrawText centres text on p, keeping the background already drawn there.
func (r *region) DrawText(p view.Point, text string, style view.TextStyle) {
	x, y := r.x+int(p.X), r.y+int(p.Y)
	_, _, under, _ := r.screen.GetContent(x, y)
	_, bg, _ := under.Decompose()
	st := tcell.StyleDefault.Background(bg)
	if style == view.TextTitle {
		st = st.Bold(true).Underline(true)
	}
	putCentred(r.screen, x, y, text, st)
}

func fill(s tcell.Screen, x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ch, nil, style)
		}
	}
}

// putText writes s starting at (x, y), advancing by each rune's display width.
func putText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func putCentred(s tcell.Screen, x, y int, text string, style tcell.Style) {
	putText(s, x-runewidth.StringWidth(text)/2, y, text, style)
}
