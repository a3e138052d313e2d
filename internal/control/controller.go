// Package control routes key presses and shop purchases to the game model and
// keeps the view in step with it.
package control

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/sjiamnocna/fancysokoban/internal/actors"
	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

const (
	WinMessage  = "You won! Play again?"
	LossMessage = "You lost! Play again?"
)

// ErrDimensionMismatch is returned by Load for a model whose maze does not
// fit the existing view.
var ErrDimensionMismatch = errors.New("maze dimensions differ from the current view")

// Model is the game state the controller drives. *gameplay.Game implements it.
type Model interface {
	Maze() maps.Maze
	Entities() maps.Entities
	PlayerPosition() maps.Position
	ShopItems() []gameplay.ShopItem
	MovesRemaining() int
	Strength() int
	Money() int
	AttemptMove(d actors.Direction) bool
	AttemptPurchase(id maps.EntityKind) bool
	HasWon() bool
	Reset()
}

// Display is the part of the composite view the controller redraws.
type Display interface {
	DisplayGame(maze maps.Maze, entities maps.Entities, player maps.Position) error
	DisplayStats(moves, strength, money int)
}

// Host is what the frontend lends the controller: a yes/no dialog and a way
// to end the event loop. Confirm may return before onChoice runs.
type Host interface {
	Confirm(title, message string, onChoice func(yes bool))
	Quit()
}

type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

var keyBindings = map[string]actors.Direction{
	"w":     actors.Up,
	"up":    actors.Up,
	"s":     actors.Down,
	"down":  actors.Down,
	"a":     actors.Left,
	"left":  actors.Left,
	"d":     actors.Right,
	"right": actors.Right,
}

// DirectionForKey maps a key name to a direction. Matching ignores case.
func DirectionForKey(key string) (actors.Direction, bool) {
	d, ok := keyBindings[strings.ToLower(key)]
	return d, ok
}

type Controller struct {
	model   Model
	display Display
	host    Host
	base    zerolog.Logger
	log     zerolog.Logger

	state   State
	session ulid.ULID
}

func New(model Model, display Display, host Host, log zerolog.Logger) *Controller {
	c := &Controller{
		model:   model,
		display: display,
		host:    host,
		base:    log,
		state:   StatePlaying,
	}
	c.newSession()
	return c
}

func (c *Controller) newSession() {
	c.session = ulid.MustNew(ulid.Now(), rand.Reader)
	c.log = c.base.With().Str("session", c.session.String()).Logger()
}

func (c *Controller) State() State {
	return c.state
}

// Session identifies the current play-through. It changes on every reset.
func (c *Controller) Session() ulid.ULID {
	return c.session
}

// Start draws the initial board and stats.
func (c *Controller) Start() error {
	c.log.Info().Int("moves", c.model.MovesRemaining()).Int("strength", c.model.Strength()).
		Int("money", c.model.Money()).Msg("game started")
	return c.Redraw()
}

// Redraw re-renders the whole game from the model.
func (c *Controller) Redraw() error {
	if err := c.display.DisplayGame(c.model.Maze(), c.model.Entities(), c.model.PlayerPosition()); err != nil {
		return fmt.Errorf("draw game: %w", err)
	}
	c.display.DisplayStats(c.model.MovesRemaining(), c.model.Strength(), c.model.Money())
	return nil
}

// HandleKey applies a key press. Unbound keys, and every key once the game
// is over, are ignored.
func (c *Controller) HandleKey(key string) error {
	if c.state != StatePlaying {
		return nil
	}
	d, ok := DirectionForKey(key)
	if !ok {
		c.log.Debug().Str("key", key).Msg("ignored key")
		return nil
	}
	if !c.model.AttemptMove(d) {
		c.log.Debug().Stringer("direction", d).Msg("move rejected")
		return nil
	}
	c.log.Debug().Stringer("direction", d).Int("moves", c.model.MovesRemaining()).Msg("moved")

	if err := c.Redraw(); err != nil {
		return err
	}

	switch {
	case c.model.HasWon():
		c.log.Info().Int("moves", c.model.MovesRemaining()).Msg("game won")
		c.gameOver(WinMessage)
	case c.model.MovesRemaining() <= 0:
		c.log.Info().Msg("game lost")
		c.gameOver(LossMessage)
	}
	return nil
}

// gameOver blocks further moves before asking, so keys that arrive while an
// asynchronous dialog is open do nothing.
func (c *Controller) gameOver(message string) {
	c.state = StateGameOver
	c.host.Confirm("Game over", message, func(yes bool) {
		if !yes {
			c.log.Info().Msg("quit")
			c.host.Quit()
			return
		}
		if err := c.Reset(); err != nil {
			c.log.Error().Err(err).Msg("reset failed")
			c.host.Quit()
		}
	})
}

// BuyItem attempts a shop purchase and redraws once if it went through.
func (c *Controller) BuyItem(id maps.EntityKind) error {
	if c.state != StatePlaying {
		return nil
	}
	if !c.model.AttemptPurchase(id) {
		c.log.Debug().Stringer("item", id).Int("money", c.model.Money()).Msg("purchase rejected")
		return nil
	}
	c.log.Info().Stringer("item", id).Int("money", c.model.Money()).Msg("purchased")
	return c.Redraw()
}

// Reset restarts the level under a new session id.
func (c *Controller) Reset() error {
	c.model.Reset()
	c.state = StatePlaying
	c.newSession()
	c.log.Info().Msg("game reset")
	return c.Redraw()
}

// Load replaces the model, for instance after the maze file changed on disk.
// The new maze must have the same dimensions as the current one.
func (c *Controller) Load(model Model) error {
	old, next := c.model.Maze(), model.Maze()
	if old.Rows() != next.Rows() || old.Cols() != next.Cols() {
		return fmt.Errorf("%w: have %dx%d, got %dx%d", ErrDimensionMismatch,
			old.Rows(), old.Cols(), next.Rows(), next.Cols())
	}
	c.model = model
	c.state = StatePlaying
	c.newSession()
	c.log.Info().Msg("maze reloaded")
	return c.Redraw()
}
