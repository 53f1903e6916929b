// Package hand models finished riichi hands: the melds they are built from, the circumstances
// of the win, and the three winning shapes.
package hand

import (
	"fmt"

	"mahjong-yaku/internal/tile"
)

// Opponent is the seat of another player relative to the winner.
type Opponent uint8

const (
	Right Opponent = iota
	Across
	Left
)

func (o Opponent) String() string {
	switch o {
	case Right:
		return "right"
	case Across:
		return "across"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Opponent(%d)", uint8(o))
}

// LocationKind discriminates the places a tile can come from.
type LocationKind uint8

const (
	// KindLiveWall is a normal draw for the player's turn.
	KindLiveWall LocationKind = iota
	// KindDeadWall is a replacement draw after a kan.
	KindDeadWall
	// KindDiscard is another player's discard.
	KindDiscard
	// KindKan is a tile another player used for a kan.
	KindKan
)

// Location is where a tile used in a call or a win came from. Build one with LiveWall,
// DeadWall, Discard or Kan.
type Location struct {
	kind LocationKind
	from Opponent
}

// LiveWall is a tile drawn from the live wall.
func LiveWall() Location { return Location{kind: KindLiveWall} }

// DeadWall is a replacement tile drawn from the dead wall after a kan.
func DeadWall() Location { return Location{kind: KindDeadWall} }

// Discard is a tile claimed from o's discard.
func Discard(o Opponent) Location {
	return Location{kind: KindDiscard, from: o}
}

// Kan is a tile robbed from a kan declared by o.
func Kan(o Opponent) Location {
	return Location{kind: KindKan, from: o}
}

// Kind returns where the tile came from.
func (l Location) Kind() LocationKind {
	return l.kind
}

// IsDrawn reports whether the winner drew the tile themselves.
func (l Location) IsDrawn() bool {
	return l.kind == KindLiveWall || l.kind == KindDeadWall
}

// Opponent returns the player the tile came from, if it was claimed.
func (l Location) Opponent() (Opponent, bool) {
	if l.IsDrawn() {
		return 0, false
	}
	return l.from, true
}

func (l Location) String() string {
	switch l.kind {
	case KindLiveWall:
		return "live wall"
	case KindDeadWall:
		return "dead wall"
	case KindDiscard:
		return "discard from " + l.from.String()
	default:
		return "kan from " + l.from.String()
	}
}

// WinContext is everything needed to judge and score a win other than the hand itself. It is
// built once per evaluation and never modified.
type WinContext struct {
	// Agari is the winning tile.
	Agari tile.Tile
	// Source is where the winning tile came from.
	Source Location
	// Riichi reports whether the winner had declared riichi.
	Riichi bool
	// FirstTurn reports whether the win came on the winner's first turn since the start of the
	// hand or since their riichi, with no call made by anyone in between. The two meanings never
	// overlap: declaring riichi means the player has already had a turn.
	FirstTurn bool
	// WallEmpty reports whether the live wall is exhausted. For a drawn tile, the wall was empty
	// after the draw.
	WallEmpty bool
	Round     tile.Direction
	// Seat is the winner's seat wind; East is the dealer.
	Seat  tile.Direction
	Honba uint
}

// IsDealer reports whether the winner is the dealer.
func (c WinContext) IsDealer() bool {
	return c.Seat == tile.East
}

// IsTsumo reports whether the winning tile was self-drawn.
func (c WinContext) IsTsumo() bool {
	return c.Source.IsDrawn()
}
