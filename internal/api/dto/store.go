package dto

import (
	"sort"

	"tradehall/internal/domain"
)

type Listing struct {
	Item  *Item `json:"item"`
	Price uint  `json:"price"`
}

type StoreItem struct {
	Slot int `json:"slot"`
	Listing
}

type Store struct {
	ID          string      `json:"id"`
	CharacterID string      `json:"characterId"`
	Type        string      `json:"type"`
	Money       uint        `json:"money"`
	Capacity    int         `json:"capacity"`
	Items       []StoreItem `json:"items"`
}

type OpenStoreRequest struct {
	Type string `json:"type" validate:"required,oneof=sell_only buy_and_sell"`
}

type StoreItemRequest struct {
	ItemID string `json:"itemId" validate:"required,uuid"`
}

func StoreFromDomain(store *domain.Store) *Store {
	if store == nil {
		return nil
	}

	items := store.Items()
	out := &Store{
		ID:          store.ID().String(),
		CharacterID: store.CharacterID().String(),
		Type:        string(store.Type()),
		Money:       store.Money().Amount(),
		Capacity:    store.Capacity(),
		Items:       make([]StoreItem, 0, len(items)),
	}
	for slot, listing := range items {
		out.Items = append(out.Items, StoreItem{Slot: slot, Listing: ListingFromDomain(listing)})
	}
	sort.Slice(out.Items, func(i, j int) bool {
		return out.Items[i].Slot < out.Items[j].Slot
	})
	return out
}

func ListingFromDomain(listing *domain.StoreItem) Listing {
	return Listing{
		Item:  ItemFromDomain(listing.Item),
		Price: listing.Price.Amount(),
	}
}

func ListingsFromDomain(listings []*domain.StoreItem) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, listing := range listings {
		out = append(out, ListingFromDomain(listing))
	}
	return out
}
