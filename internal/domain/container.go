package domain

import (
	"fmt"
	"sort"
)

// Slots is a fixed-capacity container addressed by slot index.
//
// Invariants: every occupied index is in [0, capacity) and the number of
// occupied slots stays below capacity, so a container of capacity N holds at
// most N-1 occupants. Slots is a value type: the With/Without methods return
// a new container and leave the receiver untouched, while PutAt and RemoveAt
// mutate in place. Both validate before touching the map.
type Slots[T any] struct {
	capacity int
	items    map[int]T
}

// NewSlots builds a container from a previously persisted slot mapping. The
// mapping is copied, so the caller may keep using its own map.
func NewSlots[T any](capacity int, items map[int]T) (Slots[T], error) {
	if len(items) >= capacity {
		return Slots[T]{}, fmt.Errorf("%w: cannot hold %d items in %d slots", ErrNotEnoughSpace, len(items), capacity)
	}

	copied := make(map[int]T, len(items))
	for slot, item := range items {
		if slot < 0 || slot >= capacity {
			return Slots[T]{}, fmt.Errorf("%w: slot %d", ErrSlotOutOfRange, slot)
		}
		copied[slot] = item
	}

	return Slots[T]{capacity: capacity, items: copied}, nil
}

func (s Slots[T]) Capacity() int {
	return s.capacity
}

func (s Slots[T]) Len() int {
	return len(s.items)
}

// FindFreeSlot returns the lowest unoccupied slot index.
func (s Slots[T]) FindFreeSlot() (int, error) {
	for slot := 0; slot < s.capacity; slot++ {
		if _, taken := s.items[slot]; !taken {
			return slot, nil
		}
	}
	return 0, ErrContainerFull
}

func (s Slots[T]) checkPut(slot int) error {
	if slot < 0 || slot >= s.capacity {
		return fmt.Errorf("%w: slot %d", ErrSlotOutOfRange, slot)
	}
	if _, taken := s.items[slot]; taken {
		return fmt.Errorf("%w: slot %d", ErrSlotTaken, slot)
	}
	if len(s.items)+1 >= s.capacity {
		return fmt.Errorf("%w: cannot hold %d items in %d slots", ErrNotEnoughSpace, len(s.items)+1, s.capacity)
	}
	return nil
}

// PutAt places v at slot in place.
func (s *Slots[T]) PutAt(slot int, v T) error {
	if err := s.checkPut(slot); err != nil {
		return err
	}
	if s.items == nil {
		s.items = make(map[int]T)
	}
	s.items[slot] = v
	return nil
}

// With returns a copy of the container with v placed at slot.
func (s Slots[T]) With(slot int, v T) (Slots[T], error) {
	if err := s.checkPut(slot); err != nil {
		return Slots[T]{}, err
	}
	next := s.Clone()
	next.items[slot] = v
	return next, nil
}

// RemoveAt frees slot in place and returns its previous occupant.
func (s *Slots[T]) RemoveAt(slot int) (T, error) {
	item, ok := s.items[slot]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: slot %d is empty", ErrItemNotFound, slot)
	}
	delete(s.items, slot)
	return item, nil
}

// RemoveMatching frees the lowest slot whose occupant satisfies match.
func (s *Slots[T]) RemoveMatching(match func(T) bool) (int, T, error) {
	slot, item, ok := s.First(match)
	if !ok {
		var zero T
		return 0, zero, ErrItemNotFound
	}
	delete(s.items, slot)
	return slot, item, nil
}

// WithoutMatching is the copy-producing form of RemoveMatching.
func (s Slots[T]) WithoutMatching(match func(T) bool) (Slots[T], int, T, error) {
	slot, item, ok := s.First(match)
	if !ok {
		var zero T
		return Slots[T]{}, 0, zero, ErrItemNotFound
	}
	next := s.Clone()
	delete(next.items, slot)
	return next, slot, item, nil
}

// Get returns the occupant of slot. Empty and out-of-range slots report false.
func (s Slots[T]) Get(slot int) (T, bool) {
	item, ok := s.items[slot]
	return item, ok
}

// First returns the occupant with the lowest slot index satisfying match.
func (s Slots[T]) First(match func(T) bool) (int, T, bool) {
	for _, slot := range s.occupied() {
		if item := s.items[slot]; match(item) {
			return slot, item, true
		}
	}
	var zero T
	return 0, zero, false
}

// Filter returns the occupants satisfying match in ascending slot order.
func (s Slots[T]) Filter(match func(T) bool) []T {
	out := make([]T, 0)
	for _, slot := range s.occupied() {
		if item := s.items[slot]; match(item) {
			out = append(out, item)
		}
	}
	return out
}

// All returns a copy of the slot mapping.
func (s Slots[T]) All() map[int]T {
	out := make(map[int]T, len(s.items))
	for slot, item := range s.items {
		out[slot] = item
	}
	return out
}

func (s Slots[T]) Clone() Slots[T] {
	return Slots[T]{capacity: s.capacity, items: s.All()}
}

func (s Slots[T]) occupied() []int {
	slots := make([]int, 0, len(s.items))
	for slot := range s.items {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}
