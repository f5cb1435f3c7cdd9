package domain

import "errors"

// Container and trade errors. Callers match with errors.Is; the returned
// errors are wrapped with the offending slot or id.
var (
	ErrSlotOutOfRange       = errors.New("slot is out of range")
	ErrSlotTaken            = errors.New("slot is already taken")
	ErrContainerFull        = errors.New("container is full")
	ErrNotEnoughSpace       = errors.New("not enough space in container")
	ErrItemNotFound         = errors.New("item not found in container")
	ErrItemNotInContainer   = errors.New("item not in container")
	ErrStoreDoesNotBuyItems = errors.New("store does not buy items")
	ErrNotEnoughMoney       = errors.New("not enough money")
	ErrInvalidItemType      = errors.New("invalid item type")
	ErrInvalidStoreType     = errors.New("invalid store type")
)
