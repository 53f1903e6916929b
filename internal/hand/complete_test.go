package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong-yaku/internal/tile"
)

func one(s string) tile.Tile {
	return tile.MustParse(s)[0]
}

func kokushi(s string) Kokushi {
	var k Kokushi
	copy(k[:], tile.MustParse(s))
	return k
}

func sevenPairs(s string) SevenPairs {
	var p SevenPairs
	ts := tile.MustParse(s)
	for i := range p {
		p[i] = [2]tile.Tile{ts[2*i], ts[2*i+1]}
	}
	return p
}

func standard(pair string, groups ...Group) Standard {
	var h Standard
	copy(h.Groups[:], groups)
	copy(h.Pair[:], tile.MustParse(pair))
	return h
}

func ronContext(agari string) WinContext {
	return WinContext{Agari: one(agari), Source: Discard(Left), Round: tile.East, Seat: tile.South}
}

func TestMatch(t *testing.T) {
	hands := []CompleteHand{
		kokushi("19m19s19p ESWN wgrr"),
		sevenPairs("1122m 3344p 5566s EE"),
		standard("99s", group("123m"), group("456m"), group("789m"), group("EEE", WithAgari())),
	}
	want := []string{"kokushi", "seven pairs", "standard"}
	for i, h := range hands {
		assert.Equal(t, want[i], ShapeName(h))
	}
	assert.Panics(t, func() { ShapeName(nil) })
}

func TestTilesAndIsOpen(t *testing.T) {
	k := kokushi("19m19s19p ESWN wgrr")
	assert.Len(t, k.Tiles(), 14)
	assert.False(t, k.IsOpen())

	p := sevenPairs("1122m 3344p 5566s EE")
	assert.Equal(t, tile.MustParse("1122m3344p5566sEE"), p.Tiles())
	assert.False(t, p.IsOpen())

	closed := standard("99s", group("123m"), group("456m"), group("1111p"), group("EEE", WithAgari()))
	assert.Len(t, closed.Tiles(), 15)
	assert.False(t, closed.IsOpen(), "a concealed kan keeps the hand closed")

	open := standard("99s", group("123m", CalledFrom(Left)), group("456m"), group("789m"), group("EEE", WithAgari()))
	assert.True(t, open.IsOpen())
}

func TestStandardWait(t *testing.T) {
	h := standard("99s", group("123m"), group("456m"), group("789m"), group("EEE", WithAgari()))
	i, ok := h.AgariGroup()
	require.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, Shanpon, h.Wait())

	tanki := standard("99s", group("123m"), group("456m"), group("789m"), group("EEE"))
	_, ok = tanki.AgariGroup()
	assert.False(t, ok)
	assert.Equal(t, Tanki, tanki.Wait())
}

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		hand  CompleteHand
		agari string
	}{
		{"kokushi", kokushi("19m19s19p ESWN wgrr"), "r"},
		{"seven pairs", sevenPairs("1122m 3344p 5566s EE"), "E"},
		{"standard", standard("99s", group("123m"), group("5555p", CalledFrom(Right), Added()), group("789m"), group("E E E", WithAgari())), "E"},
		{"tanki", standard("99s", group("123m"), group("456m"), group("789m"), group("EEE")), "9s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Validate(tt.hand, ronContext(tt.agari)))
		})
	}
}

func TestValidate_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		hand  CompleteHand
		agari string
	}{
		{"nil", nil, "1m"},
		{"kokushi simple", kokushi("19m19s15p ESWN wgrr"), "r"},
		{"kokushi missing kind", kokushi("19m19s19p ESWW wgrr"), "r"},
		{"kokushi agari absent", kokushi("19m19s19p ESWN wgrr"), "5m"},
		{"seven pairs split", sevenPairs("1122m 3344p 5566s Er"), "E"},
		{"seven pairs repeated", sevenPairs("1111m 3344p 5566s EE"), "E"},
		{"pair mismatch", standard("19s", group("123m"), group("456m"), group("789m"), group("EEE", WithAgari())), "E"},
		{"two agari groups", standard("99s", group("123m", WithAgari()), group("456m"), group("789m"), group("EEE", WithAgari())), "E"},
		{"agari not last", standard("99s", group("123m", WithAgari()), group("456m"), group("789m"), group("EEE")), "2m"},
		{"tanki on wrong pair", standard("99s", group("123m"), group("456m"), group("789m"), group("EEE")), "E"},
		{"not a run", standard("99s", group("124m"), group("456m"), group("789m"), group("EEE", WithAgari())), "E"},
		{"honour run", standard("99s", group("ESW"), group("456m"), group("789m"), group("EEE", WithAgari())), "E"},
		{"mixed triplet", standard("99s", group("112m"), group("456m"), group("789m"), group("EEE", WithAgari())), "E"},
		{"added closed kan", standard("99s", group("1111m", Added()), group("456m"), group("789m"), group("EEE", WithAgari())), "E"},
		{"five copies", standard("11m", group("111m"), group("123m"), group("456m"), group("EEE", WithAgari())), "E"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.hand, ronContext(tt.agari))
			assert.ErrorIs(t, err, ErrMalformedHand)
		})
	}
}

func TestLocation(t *testing.T) {
	assert.True(t, LiveWall().IsDrawn())
	assert.True(t, DeadWall().IsDrawn())
	assert.False(t, Discard(Left).IsDrawn())
	assert.False(t, Kan(Right).IsDrawn())

	_, ok := LiveWall().Opponent()
	assert.False(t, ok)
	o, ok := Discard(Across).Opponent()
	require.True(t, ok)
	assert.Equal(t, Across, o)
	o, ok = Kan(Right).Opponent()
	require.True(t, ok)
	assert.Equal(t, Right, o)

	assert.Equal(t, KindKan, Kan(Right).Kind())
	assert.Equal(t, Discard(Left), Discard(Left))
	assert.NotEqual(t, Discard(Left), Kan(Left))
}

func TestWinContext(t *testing.T) {
	c := WinContext{Source: DeadWall(), Seat: tile.East}
	assert.True(t, c.IsDealer())
	assert.True(t, c.IsTsumo())

	c = ronContext("1m")
	assert.False(t, c.IsDealer())
	assert.False(t, c.IsTsumo())
}
