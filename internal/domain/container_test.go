package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(n int) map[int]string {
	items := make(map[int]string, n)
	for i := 0; i < n; i++ {
		items[i] = "x"
	}
	return items
}

func TestNewSlots(t *testing.T) {
	tests := []struct {
		name    string
		items   map[int]string
		wantErr error
	}{
		{name: "empty", items: nil},
		{name: "one below capacity", items: fill(3)},
		{name: "at capacity", items: fill(4), wantErr: ErrNotEnoughSpace},
		{name: "over capacity", items: fill(5), wantErr: ErrNotEnoughSpace},
		{name: "slot out of range", items: map[int]string{7: "x"}, wantErr: ErrSlotOutOfRange},
		{name: "negative slot", items: map[int]string{-1: "x"}, wantErr: ErrSlotOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSlots(4, tt.items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.items), s.Len())
			assert.Less(t, s.Len(), s.Capacity())
		})
	}
}

func TestNewSlots_CopiesInput(t *testing.T) {
	items := map[int]string{0: "a"}
	s, err := NewSlots(4, items)
	require.NoError(t, err)

	items[1] = "b"
	_, ok := s.Get(1)
	assert.False(t, ok)
}

func TestSlots_FindFreeSlot(t *testing.T) {
	s, err := NewSlots(6, map[int]string{0: "a", 1: "b", 3: "c"})
	require.NoError(t, err)

	slot, err := s.FindFreeSlot()
	require.NoError(t, err)
	assert.Equal(t, 2, slot)

	require.NoError(t, s.PutAt(2, "d"))
	slot, err = s.FindFreeSlot()
	require.NoError(t, err)
	assert.Equal(t, 4, slot)
}

func TestSlots_FindFreeSlot_Full(t *testing.T) {
	s := Slots[string]{capacity: 2, items: map[int]string{0: "a", 1: "b"}}

	_, err := s.FindFreeSlot()
	assert.ErrorIs(t, err, ErrContainerFull)
}

func TestSlots_PutAt(t *testing.T) {
	s, err := NewSlots(4, map[int]string{1: "a"})
	require.NoError(t, err)

	t.Run("out of range", func(t *testing.T) {
		assert.ErrorIs(t, s.PutAt(4, "x"), ErrSlotOutOfRange)
		assert.ErrorIs(t, s.PutAt(-1, "x"), ErrSlotOutOfRange)
	})

	t.Run("taken", func(t *testing.T) {
		assert.ErrorIs(t, s.PutAt(1, "x"), ErrSlotTaken)
		got, _ := s.Get(1)
		assert.Equal(t, "a", got)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, s.PutAt(0, "b"))
		got, ok := s.Get(0)
		require.True(t, ok)
		assert.Equal(t, "b", got)
		got, _ = s.Get(1)
		assert.Equal(t, "a", got)
	})

	t.Run("last slot would fill container", func(t *testing.T) {
		require.NoError(t, s.PutAt(2, "c"))
		err := s.PutAt(3, "d")
		assert.ErrorIs(t, err, ErrNotEnoughSpace)
		assert.Equal(t, 3, s.Len())
	})
}

func TestSlots_ZeroValuePut(t *testing.T) {
	var s Slots[string]
	assert.ErrorIs(t, s.PutAt(0, "x"), ErrSlotOutOfRange)
}

func TestSlots_With(t *testing.T) {
	s, err := NewSlots[string](4, nil)
	require.NoError(t, err)

	next, err := s.With(0, "a")
	require.NoError(t, err)

	_, ok := s.Get(0)
	assert.False(t, ok)
	got, ok := next.Get(0)
	require.True(t, ok)
	assert.Equal(t, "a", got)

	_, err = next.With(0, "b")
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestSlots_Remove(t *testing.T) {
	s, err := NewSlots(4, map[int]string{0: "a", 2: "b"})
	require.NoError(t, err)

	item, err := s.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, "b", item)

	_, err = s.RemoveAt(2)
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, s.PutAt(2, "c"))
	got, _ := s.Get(2)
	assert.Equal(t, "c", got)

	slot, item, err := s.RemoveMatching(func(v string) bool { return v == "a" })
	require.NoError(t, err)
	assert.Equal(t, 0, slot)
	assert.Equal(t, "a", item)

	_, _, err = s.RemoveMatching(func(v string) bool { return v == "a" })
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSlots_WithoutMatching(t *testing.T) {
	s, err := NewSlots(4, map[int]string{1: "a"})
	require.NoError(t, err)

	next, slot, item, err := s.WithoutMatching(func(v string) bool { return v == "a" })
	require.NoError(t, err)
	assert.Equal(t, 1, slot)
	assert.Equal(t, "a", item)
	assert.Equal(t, 0, next.Len())
	assert.Equal(t, 1, s.Len())
}

func TestSlots_FilterAscending(t *testing.T) {
	s, err := NewSlots(10, map[int]string{7: "g", 2: "b", 5: "e", 0: "a"})
	require.NoError(t, err)

	all := s.Filter(func(string) bool { return true })
	assert.Equal(t, []string{"a", "b", "e", "g"}, all)

	none := s.Filter(func(string) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	slot, item, ok := s.First(func(v string) bool { return v > "b" })
	require.True(t, ok)
	assert.Equal(t, 5, slot)
	assert.Equal(t, "e", item)
}
