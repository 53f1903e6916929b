package handfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong-yaku/internal/hand"
	"mahjong-yaku/internal/tile"
)

func TestLoad(t *testing.T) {
	entries, err := Load("testdata/hands.yaml")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	for _, e := range entries {
		assert.NoError(t, hand.Validate(e.Hand, e.Context), e.Name)
	}

	k := entries[0]
	assert.Equal(t, "thirteen-sided kokushi", k.Name)
	assert.IsType(t, hand.Kokushi{}, k.Hand)
	assert.Equal(t, hand.Discard(hand.Left), k.Context.Source)
	assert.Equal(t, tile.South, k.Context.Seat)
	assert.Equal(t, 0, k.Dora())

	p := entries[1]
	require.IsType(t, hand.SevenPairs{}, p.Hand)
	assert.Equal(t, tile.MustParse("EESSWWNNwwggrr"), p.Hand.Tiles())
	assert.Equal(t, hand.LiveWall(), p.Context.Source)
	assert.Equal(t, tile.East, p.Context.Round, "round defaults to East")
	assert.Equal(t, 2, p.Dora())

	s := entries[2]
	require.IsType(t, hand.Standard{}, s.Hand)
	assert.Equal(t, hand.Ryanmen, s.Hand.(hand.Standard).Wait())
	assert.True(t, s.Context.Riichi)
	assert.True(t, s.Context.FirstTurn)
	assert.Equal(t, uint(2), s.Context.Honba)
	assert.Equal(t, 4, s.Dora())

	o := entries[3]
	require.IsType(t, hand.Standard{}, o.Hand)
	std := o.Hand.(hand.Standard)
	assert.True(t, std.IsOpen())
	assert.True(t, std.Groups[0].IsAdded())
	from, ok := std.Groups[0].CalledFrom()
	require.True(t, ok)
	assert.Equal(t, hand.Across, from)
	assert.Equal(t, hand.Kan(hand.Left), o.Context.Source)
	assert.Equal(t, tile.South, o.Context.Round)
	assert.True(t, o.Context.IsDealer())
}

func TestDecode_Empty(t *testing.T) {
	entries, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecode_DefaultName(t *testing.T) {
	entries, err := Decode(strings.NewReader(`
hands:
  - shape: seven_pairs
    tiles: 1122m 3344p 5566s EE
    context: {agari: E}
`))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hand 1", entries[0].Name)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown shape", "hands:\n  - shape: triangle\n    context: {agari: 1m}\n"},
		{"short kokushi", "hands:\n  - shape: kokushi\n    tiles: 19m\n    context: {agari: 1m}\n"},
		{"bad pair", "hands:\n  - shape: seven_pairs\n    pairs: [EE, S]\n    context: {agari: E}\n"},
		{"three groups", "hands:\n  - groups: [{tiles: 123m}, {tiles: 456m}, {tiles: 789m}]\n    pair: EE\n    context: {agari: E}\n"},
		{"bad tiles", "hands:\n  - shape: kokushi\n    tiles: 19x\n    context: {agari: 1m}\n"},
		{"missing agari", "hands:\n  - shape: seven_pairs\n    tiles: 1122m 3344p 5566s EE\n"},
		{"bad source", "hands:\n  - shape: seven_pairs\n    tiles: 1122m 3344p 5566s EE\n    context: {agari: E, source: river}\n"},
		{"bad opponent", "hands:\n  - shape: seven_pairs\n    tiles: 1122m 3344p 5566s EE\n    context: {agari: E, source: 'discard:behind'}\n"},
		{"bad seat", "hands:\n  - shape: seven_pairs\n    tiles: 1122m 3344p 5566s EE\n    context: {agari: E, seat: up}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("hands:\n  - shape: kokushi\n    colour: red\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidEntry)
}

func TestParseLocation(t *testing.T) {
	tests := map[string]hand.Location{
		"":              hand.LiveWall(),
		"live":          hand.LiveWall(),
		"dead":          hand.DeadWall(),
		"discard:right": hand.Discard(hand.Right),
		"Kan:Across":    hand.Kan(hand.Across),
	}
	for in, want := range tests {
		got, err := parseLocation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
