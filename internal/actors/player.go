package actors

import "github.com/sjiamnocna/fancysokoban/internal/maps"

const (
	StrengthPotionBoost = 2
	MovePotionBoost     = 5
	FancyPotionBoost    = 2
	CoinValue           = 5
)

func NewPlayer(pos maps.Position, stats maps.PlayerStats) *Player {
	return &Player{
		Position: pos,
		Strength: stats.Strength,
		Moves:    stats.Moves,
		Money:    stats.Money,
	}
}

// Step returns the position one cell away from p in direction d. It
// reports false, leaving p unchanged, for an unknown direction.
func Step(p maps.Position, d Direction) (maps.Position, bool) {
	dr, dc, ok := directionDelta(d)
	if !ok {
		return p, false
	}
	return maps.Position{Row: p.Row + dr, Col: p.Col + dc}, true
}

// Collect applies the effect of picking up (or buying) an item.
// It reports false for kinds that cannot be collected.
func (p *Player) Collect(kind maps.EntityKind) bool {
	switch kind {
	case maps.StrengthPotion:
		p.Strength += StrengthPotionBoost
	case maps.MovePotion:
		p.Moves += MovePotionBoost
	case maps.FancyPotion:
		p.Strength += FancyPotionBoost
		p.Moves += FancyPotionBoost
	case maps.Coin:
		p.Money += CoinValue
	default:
		return false
	}
	return true
}

func (p *Player) CanPush(crate maps.Entity) bool {
	return crate.Kind == maps.Crate && p.Strength >= crate.Strength
}

func directionDelta(d Direction) (int, int, bool) {
	switch d {
	case Up:
		return -1, 0, true
	case Down:
		return 1, 0, true
	case Left:
		return 0, -1, true
	case Right:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}
