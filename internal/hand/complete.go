package hand

import (
	"fmt"

	"mahjong-yaku/internal/tile"
)

// CompleteHand is a finished hand arranged into one of the three winning shapes: Kokushi,
// SevenPairs or Standard. The set is closed; consume it with Match so that every shape is
// handled.
type CompleteHand interface {
	// Tiles returns every tile of the hand.
	Tiles() []tile.Tile
	// IsOpen reports whether the hand contains a called group.
	IsOpen() bool

	completeHand()
}

// Kokushi is the thirteen orphans shape: one of each terminal and honour plus a duplicate.
type Kokushi [14]tile.Tile

// SevenPairs is the chiitoitsu shape: seven distinct pairs.
type SevenPairs [7][2]tile.Tile

// Standard is four groups and a pair. At most one group holds the winning tile; when none
// does, the pair was completed by it.
type Standard struct {
	Groups [4]Group
	Pair   [2]tile.Tile
}

func (Kokushi) completeHand()    {}
func (SevenPairs) completeHand() {}
func (Standard) completeHand()   {}

func (h Kokushi) Tiles() []tile.Tile {
	return h[:]
}

// Kokushi and seven pairs can never contain a call.
func (Kokushi) IsOpen() bool { return false }

func (h SevenPairs) Tiles() []tile.Tile {
	out := make([]tile.Tile, 0, 14)
	for _, p := range h {
		out = append(out, p[0], p[1])
	}
	return out
}

func (SevenPairs) IsOpen() bool { return false }

func (h Standard) Tiles() []tile.Tile {
	out := make([]tile.Tile, 0, 18)
	for _, g := range h.Groups {
		out = append(out, g.tiles...)
	}
	return append(out, h.Pair[0], h.Pair[1])
}

func (h Standard) IsOpen() bool {
	for _, g := range h.Groups {
		if g.IsOpen() {
			return true
		}
	}
	return false
}

// AgariGroup returns the index of the group holding the winning tile. It returns false when
// the pair was completed by the winning tile.
func (h Standard) AgariGroup() (int, bool) {
	for i, g := range h.Groups {
		if g.agari {
			return i, true
		}
	}
	return 0, false
}

// Wait returns the wait of the hand: the agari group's wait, or Tanki when the pair won.
func (h Standard) Wait() Wait {
	if i, ok := h.AgariGroup(); ok {
		w, _ := h.Groups[i].Wait()
		return w
	}
	return Tanki
}

// Match dispatches on the shape of h. Every caller supplies all three arms, so adding a shape
// is a compile error at each call site rather than a silently ignored case.
func Match[R any](h CompleteHand, kokushi func(Kokushi) R, sevenPairs func(SevenPairs) R, standard func(Standard) R) R {
	switch h := h.(type) {
	case Kokushi:
		return kokushi(h)
	case SevenPairs:
		return sevenPairs(h)
	case Standard:
		return standard(h)
	}
	panic(fmt.Sprintf("unknown hand shape %T", h))
}

// ShapeName returns a short name for the shape of h.
func ShapeName(h CompleteHand) string {
	return Match(h,
		func(Kokushi) string { return "kokushi" },
		func(SevenPairs) string { return "seven pairs" },
		func(Standard) string { return "standard" },
	)
}
