package tile

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNotation is returned for tile strings that cannot be parsed.
var ErrNotation = errors.New("invalid tile notation")

var suitLetters = [...]byte{Manzu: 'm', Souzu: 's', Pinzu: 'p'}

var honourLetters = map[rune]Tile{
	'E': NewWind(East),
	'S': NewWind(South),
	'W': NewWind(West),
	'N': NewWind(North),
	'w': NewDragon(White),
	'g': NewDragon(Green),
	'r': NewDragon(Red),
}

// String returns the tile in the notation accepted by Parse, e.g. "5p", "E" or "r".
func (t Tile) String() string {
	switch t.Kind() {
	case KindSuited:
		s, _ := t.Suit()
		v, _ := t.Val()
		return fmt.Sprintf("%d%c", v, suitLetters[s])
	case KindWind:
		d, _ := t.Direction()
		return d.String()[:1]
	default:
		d, _ := t.Dragon()
		return strings.ToLower(d.String()[:1])
	}
}

// Parse reads tiles written as digit runs closed by a suit letter (m, s, p), winds E S W N and
// dragons w g r. "123m EE r" is 1m 2m 3m East East Red. Whitespace is ignored and the order of
// the input is preserved.
func Parse(s string) ([]Tile, error) {
	var (
		tiles   []Tile
		pending []Val
	)
	for i, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '1' && r <= '9':
			pending = append(pending, Val(r-'0'))
		case r == 'm' || r == 's' || r == 'p':
			if len(pending) == 0 {
				return nil, fmt.Errorf("%w: suit %q at offset %d has no values", ErrNotation, r, i)
			}
			suit := Manzu
			switch r {
			case 's':
				suit = Souzu
			case 'p':
				suit = Pinzu
			}
			for _, v := range pending {
				tiles = append(tiles, NewSuited(suit, v))
			}
			pending = pending[:0]
		default:
			t, ok := honourLetters[r]
			if !ok {
				return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrNotation, r, i)
			}
			if len(pending) > 0 {
				return nil, fmt.Errorf("%w: values before %q at offset %d have no suit", ErrNotation, r, i)
			}
			tiles = append(tiles, t)
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: trailing values in %q have no suit", ErrNotation, s)
	}
	return tiles, nil
}

// MustParse is like Parse but panics on error. It is meant for fixtures and tests.
func MustParse(s string) []Tile {
	tiles, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// Format writes tiles compactly, merging adjacent tiles of the same suit: [1m 2m 3m E] -> "123mE".
func Format(tiles []Tile) string {
	var (
		b       strings.Builder
		runSuit = -1
	)
	flush := func() {
		if runSuit >= 0 {
			b.WriteByte(suitLetters[runSuit])
			runSuit = -1
		}
	}
	for _, t := range tiles {
		s, ok := t.Suit()
		if !ok {
			flush()
			b.WriteString(t.String())
			continue
		}
		if int(s) != runSuit {
			flush()
			runSuit = int(s)
		}
		v, _ := t.Val()
		fmt.Fprintf(&b, "%d", v)
	}
	flush()
	return b.String()
}
