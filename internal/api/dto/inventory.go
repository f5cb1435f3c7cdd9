package dto

import (
	"sort"

	"tradehall/internal/domain"
)

type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Attack   int    `json:"attack"`
	Defense  int    `json:"defense"`
	Hp       int    `json:"hp"`
	Price    uint   `json:"price"`
	Equipped bool   `json:"equipped"`
}

type InventorySlot struct {
	Slot int   `json:"slot"`
	Item *Item `json:"item"`
}

type Inventory struct {
	Capacity int             `json:"capacity"`
	Items    []InventorySlot `json:"items"`
}

type Effects struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Hp      int `json:"hp"`
}

type AddItemRequest struct {
	ItemID string `json:"itemId" validate:"required,uuid"`
	Slot   *int   `json:"slot" validate:"omitempty,min=0"`
}

func ItemFromDomain(item *domain.Item) *Item {
	if item == nil {
		return nil
	}
	return &Item{
		ID:       item.ID.String(),
		Name:     item.Name,
		Type:     string(item.Type),
		Attack:   item.Attack,
		Defense:  item.Defense,
		Hp:       item.Hp,
		Price:    item.Price.Amount(),
		Equipped: item.IsEquipped(),
	}
}

func InventoryFromDomain(inv domain.Inventory) *Inventory {
	items := inv.Items()
	out := &Inventory{
		Capacity: inv.Capacity(),
		Items:    make([]InventorySlot, 0, len(items)),
	}
	for slot, item := range items {
		out.Items = append(out.Items, InventorySlot{Slot: slot, Item: ItemFromDomain(item)})
	}
	sort.Slice(out.Items, func(i, j int) bool {
		return out.Items[i].Slot < out.Items[j].Slot
	})
	return out
}

func EffectsFromDomain(effects map[domain.EffectType]int) *Effects {
	return &Effects{
		Attack:  effects[domain.EffectAttack],
		Defense: effects[domain.EffectDefense],
		Hp:      effects[domain.EffectHp],
	}
}
