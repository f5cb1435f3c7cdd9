package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const StoreSlots = 24

type StoreType string

const (
	StoreTypeSellOnly   StoreType = "sell_only"
	StoreTypeBuyAndSell StoreType = "buy_and_sell"
)

func ParseStoreType(s string) (StoreType, error) {
	switch t := StoreType(s); t {
	case StoreTypeSellOnly, StoreTypeBuyAndSell:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStoreType, s)
	}
}

func (t StoreType) IsSellOnly() bool {
	return t == StoreTypeSellOnly
}

// StoreItem is an item listed in a store together with its asking price.
type StoreItem struct {
	Item  *Item `json:"item"`
	Price Money `json:"price"`
}

func NewStoreItem(item *Item, price Money) *StoreItem {
	return &StoreItem{Item: item, Price: price}
}

func (si *StoreItem) ID() uuid.UUID {
	return si.Item.ID
}

func (si *StoreItem) IsOfType(t ItemType) bool {
	return si.Item.IsOfType(t)
}

func (si *StoreItem) ToBaseItem() *Item {
	return si.Item
}

// Store is a character's trade stall. Unlike Inventory it is mutated in
// place; the slot map belongs to the Store alone and is never shared.
type Store struct {
	id          uuid.UUID
	characterID uuid.UUID
	storeType   StoreType
	money       Money
	slots       Slots[*StoreItem]
}

func NewStore(id, characterID uuid.UUID, storeType StoreType, items map[int]*StoreItem, money Money) (*Store, error) {
	slots, err := NewSlots(StoreSlots, items)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", id, err)
	}
	return &Store{
		id:          id,
		characterID: characterID,
		storeType:   storeType,
		money:       money,
		slots:       slots,
	}, nil
}

func (s *Store) ID() uuid.UUID {
	return s.id
}

func (s *Store) CharacterID() uuid.UUID {
	return s.characterID
}

func (s *Store) Type() StoreType {
	return s.storeType
}

func (s *Store) Money() Money {
	return s.money
}

func (s *Store) Items() map[int]*StoreItem {
	return s.slots.All()
}

func (s *Store) Capacity() int {
	return s.slots.Capacity()
}

func (s *Store) Len() int {
	return s.slots.Len()
}

func (s *Store) AddItemToSlot(slot int, item *StoreItem) error {
	return s.slots.PutAt(slot, item)
}

// Add lists the item at its own price in the lowest free slot.
func (s *Store) Add(item *Item) error {
	slot, err := s.findFreeSlot()
	if err != nil {
		return err
	}
	return s.slots.PutAt(slot, NewStoreItem(item, item.Price))
}

func (s *Store) findFreeSlot() (int, error) {
	return s.slots.FindFreeSlot()
}

func (s *Store) FindItem(itemID uuid.UUID) (*StoreItem, bool) {
	_, item, ok := s.slots.First(func(si *StoreItem) bool {
		return si.ID() == itemID
	})
	return item, ok
}

func (s *Store) FindItemsOfType(t ItemType) []*StoreItem {
	return s.slots.Filter(func(si *StoreItem) bool {
		return si.IsOfType(t)
	})
}

// TakeOut removes the listing and returns the item without its price.
func (s *Store) TakeOut(itemID uuid.UUID) (*Item, error) {
	_, item, err := s.slots.RemoveMatching(func(si *StoreItem) bool {
		return si.ID() == itemID
	})
	if err != nil {
		return nil, fmt.Errorf("%w: item %s", ErrItemNotInContainer, itemID)
	}
	return item.ToBaseItem(), nil
}

func (s *Store) PutMoneyIn(money Money) {
	s.money = s.money.Combine(money)
}

func (s *Store) TakeMoneyOut(money Money) (Money, error) {
	if s.storeType.IsSellOnly() {
		return Money{}, ErrStoreDoesNotBuyItems
	}

	left, err := s.money.Remove(money)
	if err != nil {
		return Money{}, fmt.Errorf("store %s: %w", s.id, err)
	}
	s.money = left

	return money, nil
}

// StoreState is the flat form of a Store handed to persistence and caches.
type StoreState struct {
	ID          uuid.UUID          `json:"id"`
	CharacterID uuid.UUID          `json:"character_id"`
	Type        StoreType          `json:"type"`
	Money       Money              `json:"money"`
	Items       map[int]*StoreItem `json:"items"`
}

func (s *Store) State() StoreState {
	return StoreState{
		ID:          s.id,
		CharacterID: s.characterID,
		Type:        s.storeType,
		Money:       s.money,
		Items:       s.Items(),
	}
}

func RestoreStore(state StoreState) (*Store, error) {
	return NewStore(state.ID, state.CharacterID, state.Type, state.Items, state.Money)
}
