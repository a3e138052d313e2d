package view

import (
	"fmt"

	"github.com/sjiamnocna/fancysokoban/internal/gameplay"
	"github.com/sjiamnocna/fancysokoban/internal/maps"
)

const ShopTitle = "Shop"

// ShopEntry is one buyable item. Its buy action is bound to the item id when
// the shop is built.
type ShopEntry struct {
	ID   maps.EntityKind
	Name string
	Cost int
	buy  func()
}

func (e ShopEntry) Label() string {
	return fmt.Sprintf("%s: $%d", e.Name, e.Cost)
}

func (e ShopEntry) Buy() {
	if e.buy != nil {
		e.buy()
	}
}

// Shop is the static list of items on sale. Frontends turn each entry into
// a label and a buy control.
type Shop struct {
	entries []ShopEntry
}

func NewShop(items []gameplay.ShopItem, onBuy func(maps.EntityKind)) *Shop {
	s := &Shop{entries: make([]ShopEntry, 0, len(items))}
	for _, item := range items {
		id := item.ID
		s.entries = append(s.entries, ShopEntry{
			ID:   id,
			Name: item.Name,
			Cost: item.Cost,
			buy:  func() { onBuy(id) },
		})
	}
	return s
}

func (s *Shop) Title() string {
	return ShopTitle
}

func (s *Shop) Entries() []ShopEntry {
	return append([]ShopEntry(nil), s.entries...)
}
