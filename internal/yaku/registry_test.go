package yaku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong-yaku/internal/hand"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	assert.Same(t, r, Default(), "built once")
	assert.Equal(t, int(Chiihou)+1, r.Len())

	for id := Riichi; id <= Chiihou; id++ {
		y, ok := r.Lookup(id)
		require.True(t, ok, "id %d", id)
		assert.Equal(t, id, y.ID)
		assert.NotEmpty(t, y.Kanji)
		assert.NotEmpty(t, y.Romaji)
		assert.NotEmpty(t, y.English)
	}

	all := r.All()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID, "registry keeps table order")
	}
	all[0].Val = Han(99)
	assert.Equal(t, Han(1), r.All()[0].Val, "All returns copies")

	y, _ := r.Lookup(Riichi)
	y.OpenVal = Full
	y.InHand = nil
	y, _ = r.Lookup(Riichi)
	assert.Equal(t, Invalid, y.OpenVal, "Lookup returns a copy")
	assert.NotNil(t, y.InHand)
}

func TestKokushiEntries(t *testing.T) {
	k, ok := Default().Lookup(Kokushi)
	require.True(t, ok)
	assert.Equal(t, Yakuman(), k.Val)
	assert.Equal(t, Invalid, k.OpenVal)

	k13, ok := Default().Lookup(Kokushi13)
	require.True(t, ok)
	assert.Equal(t, DoubleYakuman(), k13.Val)
	assert.Equal(t, Invalid, k13.OpenVal)
}

func TestNewRegistry_Rules(t *testing.T) {
	t.Run("closed tanyao", func(t *testing.T) {
		r, err := NewRegistry(Rules{OpenTanyao: false, DoubleYakuman: true, Renhou: RenhouMangan})
		require.NoError(t, err)
		y, _ := r.Lookup(Tanyao)
		assert.Equal(t, Invalid, y.OpenVal)

		def, _ := Default().Lookup(Tanyao)
		assert.Equal(t, Full, def.OpenVal, "default registry is untouched")
	})

	t.Run("single yakuman only", func(t *testing.T) {
		r, err := NewRegistry(Rules{OpenTanyao: true, DoubleYakuman: false, Renhou: RenhouMangan})
		require.NoError(t, err)
		for _, y := range r.All() {
			assert.NotEqual(t, TierDoubleYakuman, y.Val.Tier, y.Romaji)
		}
		y, _ := r.Lookup(Daisuushii)
		assert.Equal(t, Yakuman(), y.Val)
	})

	t.Run("renhou yakuman", func(t *testing.T) {
		r, err := NewRegistry(Rules{Renhou: RenhouYakuman})
		require.NoError(t, err)
		y, ok := r.Lookup(Renhou)
		require.True(t, ok)
		assert.Equal(t, Yakuman(), y.Val)
	})

	t.Run("no renhou", func(t *testing.T) {
		r, err := NewRegistry(Rules{Renhou: RenhouNone})
		require.NoError(t, err)
		_, ok := r.Lookup(Renhou)
		assert.False(t, ok)
		assert.Equal(t, Default().Len()-1, r.Len())
	})

	t.Run("unknown renhou", func(t *testing.T) {
		_, err := NewRegistry(Rules{Renhou: "baiman"})
		assert.Error(t, err)
	})
}

func TestNewCustomRegistry(t *testing.T) {
	always := func(hand.CompleteHand, hand.WinContext) bool { return true }

	r, err := NewCustomRegistry(
		Yaku{ID: 2, Romaji: "b", Val: Han(1), InHand: always},
		Yaku{ID: 1, Romaji: "a", Val: Han(2), InHand: always},
	)
	require.NoError(t, err)
	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, ID(2), all[0].ID, "insertion order is evaluation order")

	_, err = NewCustomRegistry(
		Yaku{ID: 1, Romaji: "a", InHand: always},
		Yaku{ID: 1, Romaji: "b", InHand: always},
	)
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewCustomRegistry(Yaku{ID: 1, Romaji: "a"})
	assert.ErrorContains(t, err, "no decision")
}

func TestOpenValApply(t *testing.T) {
	tests := []struct {
		name   string
		open   OpenVal
		val    Val
		isOpen bool
		want   Val
		ok     bool
	}{
		{"closed reduced", Reduced, Han(2), false, Han(2), true},
		{"closed invalid", Invalid, Han(1), false, Han(1), true},
		{"open full", Full, Han(1), true, Han(1), true},
		{"open reduced", Reduced, Han(6), true, Han(5), true},
		{"open reduced to nothing", Reduced, Han(1), true, Val{}, false},
		{"open invalid", Invalid, Han(3), true, Val{}, false},
		{"open invalid yakuman", Invalid, Yakuman(), true, Val{}, false},
		{"open reduced yakuman", Reduced, Yakuman(), true, Yakuman(), true},
		{"open full mangan", Full, Mangan(), true, Mangan(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.open.Apply(tt.val, tt.isOpen)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVal(t *testing.T) {
	assert.Equal(t, "3 han", Han(3).String())
	assert.Equal(t, "mangan", Mangan().String())
	assert.Equal(t, "double yakuman", DoubleYakuman().String())

	assert.False(t, Mangan().IsYakuman())
	assert.True(t, Yakuman().IsYakuman())
	assert.Equal(t, 0, Han(13).YakumanCount())
	assert.Equal(t, 1, Yakuman().YakumanCount())
	assert.Equal(t, 2, DoubleYakuman().YakumanCount())

	v := Yakuman()
	v.Tier = TierHan
	assert.Equal(t, TierYakuman, Yakuman().Tier, "each call returns a fresh value")
}
