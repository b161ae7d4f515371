package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberlang/ember/internal/value"
)

func TestMapSetGet(t *testing.T) {
	m := value.NewMap()
	m.Set(value.Str("k_X"), value.Int(1))
	m.Set(value.Int(7), value.Str("v?"))

	v, ok := m.Get(value.Str("k_X"))
	require.True(t, ok)
	require.Equal(t, value.KindInt, v.Kind)
	require.EqualValues(t, 1, v.I)

	v, ok = m.Get(value.Int(7))
	require.True(t, ok)
	require.Equal(t, value.KindString, v.Kind)
	require.Equal(t, "v?", v.S)

	_, ok = m.Get(value.Str("missing"))
	require.False(t, ok)
}

func TestMapUpdateExisting(t *testing.T) {
	m := value.NewMap()
	m.Set(value.Str("a"), value.Int(1))
	m.Set(value.Str("a"), value.Int(2))
	require.Equal(t, 1, m.Count())
	v, ok := m.Get(value.Str("a"))
	require.True(t, ok)
	require.EqualValues(t, 2, v.I)
}

func TestMapChainLinksValid(t *testing.T) {
	m := value.NewMap()
	for i := 0; i < 20; i++ {
		m.Set(value.Int(int64(i)), value.Int(int64(i*i)))
	}
	require.Equal(t, 20, m.Count())
	slots := m.Slots()
	for _, n := range slots {
		if n.Key.IsNil() {
			continue
		}
		require.True(t, n.Next == -1 || (n.Next >= 0 && n.Next < len(slots)))
	}
	for i := 0; i < 20; i++ {
		v, ok := m.Get(value.Int(int64(i)))
		require.True(t, ok)
		require.EqualValues(t, i*i, v.I)
	}
}

func TestMapCompactDropsTrailingEmptySlots(t *testing.T) {
	m := value.NewMap()
	m.Set(value.Str("only"), value.BoolOf(true))
	before := len(m.Slots())
	m.Compact()
	after := len(m.Slots())
	require.LessOrEqual(t, after, before)
	require.Equal(t, m.Count(), countOccupied(m))
}

func countOccupied(m *value.Map) int {
	n := 0
	for _, s := range m.Slots() {
		if !s.Key.IsNil() {
			n++
		}
	}
	return n
}
