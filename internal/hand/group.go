package hand

import (
	"fmt"
	"slices"

	"mahjong-yaku/internal/tile"
)

// GroupType is the kind of meld a group forms.
type GroupType uint8

const (
	Sequence GroupType = iota // Chi / shuntsu
	Triplet                   // Pon / koutsu
	Quad                      // Kan
)

func (t GroupType) String() string {
	switch t {
	case Sequence:
		return "sequence"
	case Triplet:
		return "triplet"
	case Quad:
		return "quad"
	}
	return fmt.Sprintf("GroupType(%d)", uint8(t))
}

// Wait is the shape of the hand just before the winning tile completed it.
type Wait uint8

const (
	Ryanmen Wait = iota // Open two-sided run
	Kanchan             // Closed run
	Penchan             // Edge run
	Shanpon             // One of two pairs
	Tanki               // Single tile waiting on the pair
)

func (w Wait) String() string {
	switch w {
	case Ryanmen:
		return "ryanmen"
	case Kanchan:
		return "kanchan"
	case Penchan:
		return "penchan"
	case Shanpon:
		return "shanpon"
	case Tanki:
		return "tanki"
	}
	return fmt.Sprintf("Wait(%d)", uint8(w))
}

// Group is one meld of a hand, either called or completed from concealed tiles.
//
// Tile order carries meaning: a called tile is last among the originally claimed tiles, a tile
// added to make a kan is last, and the winning tile is always last.
type Group struct {
	tiles []tile.Tile
	// Set when a tile was called from another player.
	from   Opponent
	called bool
	// Set when the group is a kan formed by adding to a called triplet.
	added bool
	agari bool
}

// GroupOption sets the provenance of a group.
type GroupOption func(*Group)

// CalledFrom marks a tile of the group as called from o.
func CalledFrom(o Opponent) GroupOption {
	return func(g *Group) {
		g.from = o
		g.called = true
	}
}

// Added marks the group as a kan formed by adding the last tile to a called triplet.
func Added() GroupOption {
	return func(g *Group) { g.added = true }
}

// WithAgari marks the group as holding the winning tile, which must be its last tile.
func WithAgari() GroupOption {
	return func(g *Group) { g.agari = true }
}

// NewGroup builds a group from 3 or 4 tiles in meld order. The tiles are copied. Any other
// length is a programming error and panics.
func NewGroup(tiles []tile.Tile, opts ...GroupOption) Group {
	if len(tiles) != 3 && len(tiles) != 4 {
		panic(fmt.Sprintf("a group has 3 or 4 tiles, got %d", len(tiles)))
	}
	g := Group{tiles: slices.Clone(tiles)}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Tiles returns a copy of the group's tiles in meld order.
func (g Group) Tiles() []tile.Tile {
	return slices.Clone(g.tiles)
}

// Len returns the number of tiles in the group.
func (g Group) Len() int {
	return len(g.tiles)
}

// IsOpen reports whether any tile of the group was called from another player. A tile won by
// ron is recorded in the WinContext, not here.
func (g Group) IsOpen() bool {
	return g.called
}

// CalledFrom returns the player a tile was called from.
func (g Group) CalledFrom() (Opponent, bool) {
	return g.from, g.called
}

// IsAdded reports whether the group is a kan formed by adding to a called triplet.
func (g Group) IsAdded() bool {
	return g.added
}

// HasAgari reports whether the group holds the winning tile.
func (g Group) HasAgari() bool {
	return g.agari
}

// Ty derives the group type from its tiles.
func (g Group) Ty() GroupType {
	switch {
	case len(g.tiles) == 4:
		return Quad
	case g.tiles[0] == g.tiles[1]:
		return Triplet
	default:
		return Sequence
	}
}

// FirstTile returns the repeated tile of a triplet or quad, or the lowest tile of a sequence.
// It identifies the meld when matching yaku.
func (g Group) FirstTile() tile.Tile {
	if g.Ty() == Sequence {
		return slices.Min(g.tiles)
	}
	return g.tiles[0]
}

// Contains reports whether t is one of the group's tiles.
func (g Group) Contains(t tile.Tile) bool {
	return slices.Contains(g.tiles, t)
}

// Wait returns the wait completed by the winning tile, if the group holds it.
//
// Triplets and quads always report Shanpon. For a sequence the winning tile is the last tile;
// its index pos among the sorted tiles and its value v give:
//
//	pos == 2                                  Kanchan
//	pos == 1 && v == 7 || pos == 3 && v == 3  Penchan
//	otherwise                                 Ryanmen
//
// Scoring rules depend on this exact table.
func (g Group) Wait() (Wait, bool) {
	if !g.agari {
		return 0, false
	}
	if g.Ty() != Sequence {
		return Shanpon, true
	}
	agari := g.tiles[len(g.tiles)-1]
	v, _ := agari.Val()
	val := v.Int()
	sorted := slices.Sorted(slices.Values(g.tiles))
	pos := slices.Index(sorted, agari)
	switch {
	case pos == 2:
		return Kanchan, true
	case (pos == 1 && val == 7) || (pos == 3 && val == 3):
		return Penchan, true
	default:
		return Ryanmen, true
	}
}

func (g Group) String() string {
	s := tile.Format(g.tiles)
	if g.called {
		s += "<" + g.from.String()
	}
	if g.added {
		s += "+"
	}
	if g.agari {
		s += "*"
	}
	return s
}
