package hand

import (
	"errors"
	"fmt"

	"mahjong-yaku/internal/tile"
)

// ErrMalformedHand is returned when a CompleteHand breaks the invariants of its shape.
var ErrMalformedHand = errors.New("malformed hand")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedHand, fmt.Sprintf(format, args...))
}

// Validate checks the structural invariants of h against the win it is claimed for. The
// yaku evaluator trusts its input, so callers that assemble hands from untrusted data should
// validate first.
func Validate(h CompleteHand, c WinContext) error {
	if h == nil {
		return malformed("no hand")
	}
	return Match(h,
		func(k Kokushi) error { return validateKokushi(k, c) },
		func(p SevenPairs) error { return validateSevenPairs(p, c) },
		func(s Standard) error { return validateStandard(s, c) },
	)
}

func validateKokushi(h Kokushi, c WinContext) error {
	counts := tile.Counts(h[:])
	hasPair := false
	for t, n := range counts {
		if !t.IsTerminalOrHonour() {
			return malformed("kokushi contains simple tile %v", t)
		}
		if n > 2 {
			return malformed("kokushi holds %d of %v", n, t)
		}
		if n == 2 {
			if hasPair {
				return malformed("kokushi has more than one pair")
			}
			hasPair = true
		}
	}
	// 13 distinct kinds plus one duplicate is the only way to reach 14 tiles from here.
	if len(counts) != 13 || !hasPair {
		return malformed("kokushi needs all 13 terminal and honour kinds, got %d", len(counts))
	}
	if counts[c.Agari] == 0 {
		return malformed("winning tile %v is not in the hand", c.Agari)
	}
	return nil
}

func validateSevenPairs(h SevenPairs, c WinContext) error {
	seen := make(map[tile.Tile]bool, 7)
	for _, p := range h {
		if p[0] != p[1] {
			return malformed("pair %v%v is not two identical tiles", p[0], p[1])
		}
		if seen[p[0]] {
			return malformed("pair of %v appears twice", p[0])
		}
		seen[p[0]] = true
	}
	if !seen[c.Agari] {
		return malformed("winning tile %v is not in the hand", c.Agari)
	}
	return nil
}

func validateStandard(h Standard, c WinContext) error {
	if h.Pair[0] != h.Pair[1] {
		return malformed("pair %v%v is not two identical tiles", h.Pair[0], h.Pair[1])
	}
	agariGroups := 0
	for i, g := range h.Groups {
		if err := validateGroup(g); err != nil {
			return fmt.Errorf("group %d: %w", i, err)
		}
		if g.agari {
			agariGroups++
			if last := g.tiles[len(g.tiles)-1]; last != c.Agari {
				return malformed("group %d holds the winning tile but ends with %v, not %v", i, last, c.Agari)
			}
		}
	}
	switch {
	case agariGroups > 1:
		return malformed("%d groups hold the winning tile", agariGroups)
	case agariGroups == 0 && h.Pair[0] != c.Agari:
		return malformed("no group holds the winning tile and the pair is %v, not %v", h.Pair[0], c.Agari)
	}
	for t, n := range tile.Counts(h.Tiles()) {
		if n > 4 {
			return malformed("hand holds %d of %v", n, t)
		}
	}
	return nil
}

func validateGroup(g Group) error {
	ts := g.tiles
	if len(ts) != 3 && len(ts) != 4 {
		return malformed("group has %d tiles", len(ts))
	}
	switch g.Ty() {
	case Quad:
		for _, t := range ts[1:] {
			if t != ts[0] {
				return malformed("quad %v mixes tiles", g)
			}
		}
	case Triplet:
		if ts[2] != ts[0] {
			return malformed("triplet %v mixes tiles", g)
		}
	case Sequence:
		lo := g.FirstTile()
		mid, ok1 := lo.Following()
		hi, ok2 := mid.Following()
		if !ok1 || !ok2 || !g.Contains(mid) || !g.Contains(hi) {
			return malformed("%v is not a run", g)
		}
	}
	if g.added {
		if g.Ty() != Quad || !g.called {
			return malformed("added kan %v must be a called quad", g)
		}
		if g.agari {
			return malformed("added kan %v cannot hold the winning tile", g)
		}
	}
	return nil
}
