package domain

import "fmt"

type ItemType string

const (
	ItemTypeWeapon ItemType = "weapon"
	ItemTypeShield ItemType = "shield"
	ItemTypeHead   ItemType = "head"
	ItemTypeChest  ItemType = "chest"
	ItemTypeBelt   ItemType = "belt"
	ItemTypeLegs   ItemType = "legs"
	ItemTypeFeet   ItemType = "feet"
	ItemTypeArms   ItemType = "arms"
	ItemTypeHands  ItemType = "hands"
	ItemTypeNeck   ItemType = "neck"
	ItemTypeRing   ItemType = "ring"
)

var itemTypes = map[ItemType]struct{}{
	ItemTypeWeapon: {},
	ItemTypeShield: {},
	ItemTypeHead:   {},
	ItemTypeChest:  {},
	ItemTypeBelt:   {},
	ItemTypeLegs:   {},
	ItemTypeFeet:   {},
	ItemTypeArms:   {},
	ItemTypeHands:  {},
	ItemTypeNeck:   {},
	ItemTypeRing:   {},
}

func ParseItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if _, ok := itemTypes[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidItemType, s)
	}
	return t, nil
}

type EffectType string

const (
	EffectAttack  EffectType = "attack"
	EffectDefense EffectType = "defense"
	EffectHp      EffectType = "hp"
)

var EffectTypes = []EffectType{EffectAttack, EffectDefense, EffectHp}

type Item struct {
	Model
	Name     string   `json:"name" db:"name"`
	Type     ItemType `json:"type" db:"type"`
	Attack   int      `json:"attack" db:"attack"`
	Defense  int      `json:"defense" db:"defense"`
	Hp       int      `json:"hp" db:"hp"`
	Price    Money    `json:"price" db:"-"`
	Equipped bool     `json:"equipped" db:"-"`
	// InventorySlot follows the slot the item was last placed in; nil while
	// the item is not in an inventory.
	InventorySlot *int `json:"inventory_slot,omitempty" db:"-"`
}

func (i *Item) IsEquipped() bool {
	return i.Equipped
}

func (i *Item) IsOfType(t ItemType) bool {
	return i.Type == t
}

// ItemEffect returns the item's bonus for the given effect, 0 for unknown effects.
func (i *Item) ItemEffect(effect EffectType) int {
	switch effect {
	case EffectAttack:
		return i.Attack
	case EffectDefense:
		return i.Defense
	case EffectHp:
		return i.Hp
	default:
		return 0
	}
}

func (i *Item) SetInventorySlot(slot int) {
	i.InventorySlot = &slot
}

func (i *Item) ClearInventorySlot() {
	i.InventorySlot = nil
}
