package domain

import "github.com/google/uuid"

const InventorySlots = 24

// Inventory is a character's bag. It is immutable: every change returns a
// new Inventory and leaves the receiver as it was.
type Inventory struct {
	slots Slots[*Item]
}

func NewInventory(items map[int]*Item) (Inventory, error) {
	slots, err := NewSlots(InventorySlots, items)
	if err != nil {
		return Inventory{}, err
	}
	return Inventory{slots: slots}, nil
}

func EmptyInventory() Inventory {
	return Inventory{slots: Slots[*Item]{capacity: InventorySlots, items: map[int]*Item{}}}
}

func (inv Inventory) WithAddedItem(slot int, item *Item) (Inventory, error) {
	slots, err := inv.slots.With(slot, item)
	if err != nil {
		return inv, err
	}
	item.SetInventorySlot(slot)
	return Inventory{slots: slots}, nil
}

func (inv Inventory) WithAddedItemToFreeSlot(item *Item) (Inventory, error) {
	slot, err := inv.FindFreeSlot()
	if err != nil {
		return inv, err
	}
	return inv.WithAddedItem(slot, item)
}

// WithoutItem returns the inventory without the item and a copy of the
// removed item with its slot cleared. Items held by the receiver are not
// modified.
func (inv Inventory) WithoutItem(itemID uuid.UUID) (Inventory, *Item, error) {
	slots, _, item, err := inv.slots.WithoutMatching(func(i *Item) bool {
		return i.ID == itemID
	})
	if err != nil {
		return inv, nil, err
	}
	removed := *item
	removed.ClearInventorySlot()
	return Inventory{slots: slots}, &removed, nil
}

func (inv Inventory) FindFreeSlot() (int, error) {
	return inv.slots.FindFreeSlot()
}

func (inv Inventory) FindEquippedItemOfType(t ItemType) (*Item, bool) {
	_, item, ok := inv.slots.First(func(i *Item) bool {
		return i.IsOfType(t) && i.IsEquipped()
	})
	return item, ok
}

func (inv Inventory) FindItem(itemID uuid.UUID) (*Item, bool) {
	_, item, ok := inv.slots.First(func(i *Item) bool {
		return i.ID == itemID
	})
	return item, ok
}

func (inv Inventory) HasItem(item *Item) bool {
	if item == nil {
		return false
	}
	_, ok := inv.FindItem(item.ID)
	return ok
}

func (inv Inventory) EquippedItems() []*Item {
	return inv.slots.Filter((*Item).IsEquipped)
}

func (inv Inventory) EquippedItemsEffect(effect EffectType) int {
	total := 0
	for _, item := range inv.EquippedItems() {
		total += item.ItemEffect(effect)
	}
	return total
}

func (inv Inventory) ItemForSlot(slot int) (*Item, bool) {
	return inv.slots.Get(slot)
}

func (inv Inventory) Items() map[int]*Item {
	return inv.slots.All()
}

func (inv Inventory) Capacity() int {
	return inv.slots.Capacity()
}

func (inv Inventory) Len() int {
	return inv.slots.Len()
}
