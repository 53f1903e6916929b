// Package tile implements the riichi mahjong tile algebra: the 34 tile kinds, their canonical
// ordering, dora succession and the structural predicates used by yaku.
package tile

import (
	"fmt"
	"iter"
	"slices"
)

// Suit is one of the three suits of numbered tiles.
type Suit uint8

const (
	Manzu Suit = iota
	Souzu
	Pinzu
)

func (s Suit) String() string {
	switch s {
	case Manzu:
		return "Manzu"
	case Souzu:
		return "Souzu"
	case Pinzu:
		return "Pinzu"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Direction is one of the four winds, used both for seating and for wind tiles.
type Direction uint8

const (
	East Direction = iota
	South
	West
	North
)

// Next returns the following direction around the table, wrapping North to East. Winds use the
// traditional order even though play runs counterclockwise.
func (d Direction) Next() Direction {
	return (d + 1) % 4
}

func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case North:
		return "North"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Dragon is one of the three dragon colours.
type Dragon uint8

const (
	White Dragon = iota
	Green
	Red
)

// Next returns the following dragon, wrapping Red to White. Only dora indication uses this.
func (d Dragon) Next() Dragon {
	return (d + 1) % 3
}

func (d Dragon) String() string {
	switch d {
	case White:
		return "White"
	case Green:
		return "Green"
	case Red:
		return "Red"
	}
	return fmt.Sprintf("Dragon(%d)", uint8(d))
}

// Val is the value of a suited tile. It is always between 1 and 9.
type Val uint8

// NewVal constructs a value. It panics if n is outside 1..9: an out of range value is a
// programming error, never a recoverable condition.
func NewVal(n int) Val {
	if n < 1 || n > 9 {
		panic(fmt.Sprintf("tile value must be between 1 and 9 inclusive, got %d", n))
	}
	return Val(n)
}

// Int returns the numeric value.
func (v Val) Int() int {
	return int(v)
}

// Kind discriminates the three tile variants.
type Kind uint8

const (
	KindSuited Kind = iota
	KindWind
	KindDragon
)

// Tile is a single tile kind. Two tiles of the same kind are indistinguishable; red fives and
// other physical properties are not modelled. The zero value is the 1 of Manzu.
//
// Tiles compare with the ordinary operators and sort in the canonical order: Manzu 1-9,
// Souzu 1-9, Pinzu 1-9, East, South, West, North, White, Green, Red.
type Tile uint8

const (
	windBase   = 27
	dragonBase = 31
	// NumKinds is the number of distinct tile kinds.
	NumKinds = 34
)

// NewSuited returns the suited tile of the given suit and value.
func NewSuited(s Suit, v Val) Tile {
	if s > Pinzu {
		panic(fmt.Sprintf("invalid suit %d", uint8(s)))
	}
	if v < 1 || v > 9 {
		panic(fmt.Sprintf("tile value must be between 1 and 9 inclusive, got %d", uint8(v)))
	}
	return Tile(uint8(s)*9 + uint8(v) - 1)
}

// NewWind returns the wind tile of the given direction.
func NewWind(d Direction) Tile {
	if d > North {
		panic(fmt.Sprintf("invalid direction %d", uint8(d)))
	}
	return Tile(windBase + uint8(d))
}

// NewDragon returns the dragon tile of the given colour.
func NewDragon(d Dragon) Tile {
	if d > Red {
		panic(fmt.Sprintf("invalid dragon %d", uint8(d)))
	}
	return Tile(dragonBase + uint8(d))
}

// Kind reports which variant the tile is.
func (t Tile) Kind() Kind {
	switch {
	case t < windBase:
		return KindSuited
	case t < dragonBase:
		return KindWind
	case t < NumKinds:
		return KindDragon
	}
	panic(fmt.Sprintf("invalid tile encoding %d", uint8(t)))
}

// Suit returns the suit of a suited tile.
func (t Tile) Suit() (Suit, bool) {
	if t.Kind() != KindSuited {
		return 0, false
	}
	return Suit(t / 9), true
}

// Val returns the value of a suited tile.
func (t Tile) Val() (Val, bool) {
	if t.Kind() != KindSuited {
		return 0, false
	}
	return Val(t%9 + 1), true
}

// Direction returns the direction of a wind tile.
func (t Tile) Direction() (Direction, bool) {
	if t.Kind() != KindWind {
		return 0, false
	}
	return Direction(t - windBase), true
}

// Dragon returns the colour of a dragon tile.
func (t Tile) Dragon() (Dragon, bool) {
	if t.Kind() != KindDragon {
		return 0, false
	}
	return Dragon(t - dragonBase), true
}

// IndicatedDora returns the tile that t indicates as dora. Suits wrap 9 to 1, winds and dragons
// wrap through their own cycles.
func (t Tile) IndicatedDora() Tile {
	switch t.Kind() {
	case KindSuited:
		s, _ := t.Suit()
		v, _ := t.Val()
		if v == 9 {
			return NewSuited(s, 1)
		}
		return NewSuited(s, v+1)
	case KindWind:
		d, _ := t.Direction()
		return NewWind(d.Next())
	default:
		d, _ := t.Dragon()
		return NewDragon(d.Next())
	}
}

// Following returns the next tile in a run. Runs only exist within a suit and do not wrap, so
// there is no following tile for a 9 or for an honour.
func (t Tile) Following() (Tile, bool) {
	v, ok := t.Val()
	if !ok || v == 9 {
		return 0, false
	}
	return t + 1, true
}

// Follows reports whether t is the tile following prev in a run.
func (t Tile) Follows(prev Tile) bool {
	next, ok := prev.Following()
	return ok && next == t
}

// IsYakuhai reports whether a triplet of t scores as yakuhai for the given round and seat.
func (t Tile) IsYakuhai(round, seat Direction) bool {
	switch t.Kind() {
	case KindDragon:
		return true
	case KindWind:
		d, _ := t.Direction()
		return d == round || d == seat
	}
	return false
}

// IsGreen reports whether t qualifies for ryuuiisou: the green dragon or Souzu 2, 3, 4, 6, 8.
func (t Tile) IsGreen() bool {
	if t == NewDragon(Green) {
		return true
	}
	if s, ok := t.Suit(); ok && s == Souzu {
		v, _ := t.Val()
		return v == 2 || v == 3 || v == 4 || v == 6 || v == 8
	}
	return false
}

// IsHonour reports whether t is a wind or a dragon.
func (t Tile) IsHonour() bool {
	return t.Kind() != KindSuited
}

// IsTerminal reports whether t is a suited 1 or 9.
func (t Tile) IsTerminal() bool {
	v, ok := t.Val()
	return ok && (v == 1 || v == 9)
}

// IsSimple reports whether t is a suited 2 through 8.
func (t Tile) IsSimple() bool {
	v, ok := t.Val()
	return ok && v >= 2 && v <= 8
}

// IsTerminalOrHonour reports whether t is a terminal or an honour.
func (t Tile) IsTerminalOrHonour() bool {
	return !t.IsSimple()
}

// All returns the 34 tile kinds in canonical order. Each call yields a fresh traversal.
func All() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for t := Tile(0); t < NumKinds; t++ {
			if !yield(t) {
				return
			}
		}
	}
}

// Sort orders tiles canonically in place.
func Sort(tiles []Tile) {
	slices.Sort(tiles)
}

// Counts returns how many of each kind appear in tiles.
func Counts(tiles []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	return counts
}

// CountDora returns how many tiles are dora for the given indicators. A tile counts once per
// indicator that points at it.
func CountDora(tiles []Tile, indicators []Tile) int {
	count := 0
	for _, indicator := range indicators {
		dora := indicator.IndicatedDora()
		for _, t := range tiles {
			if t == dora {
				count++
			}
		}
	}
	return count
}
