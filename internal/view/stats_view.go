package view

import (
	"fmt"
	"strconv"

	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

var statTitles = [3]string{"Moves remaining:", "Strength:", "Money:"}

// StatsView is a 3x3 text grid: a title row, a row of stat names and a row
// of values.
type StatsView struct {
	grid    Grid
	surface Surface
}

func NewStatsView(size Size, surface Surface) (*StatsView, error) {
	grid, err := NewGrid(3, 3, size)
	if err != nil {
		return nil, err
	}
	v := &StatsView{grid: grid, surface: surface}
	v.Render(0, 0, 0)
	return v, nil
}

func (v *StatsView) Render(moves, strength, money int) {
	v.surface.Clear()
	v.surface.DrawText(v.grid.Midpoint(maps.Position{Row: 0, Col: 1}), "Player Stats", TextTitle)

	values := [3]string{strconv.Itoa(moves), strconv.Itoa(strength), fmt.Sprintf("$%d", money)}
	for i := range statTitles {
		v.surface.DrawText(v.grid.Midpoint(maps.Position{Row: 1, Col: i}), statTitles[i], TextNormal)
		v.surface.DrawText(v.grid.Midpoint(maps.Position{Row: 2, Col: i}), values[i], TextNormal)
	}
}
