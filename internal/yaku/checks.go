package yaku

import (
	"slices"

	"mahjong-yaku/internal/hand"
	"mahjong-yaku/internal/tile"
)

var (
	haku  = tile.NewDragon(tile.White)
	hatsu = tile.NewDragon(tile.Green)
	chun  = tile.NewDragon(tile.Red)

	isSimple   = tile.Tile.IsSimple
	isHonour   = tile.Tile.IsHonour
	isTerminal = tile.Tile.IsTerminal
	isGreen    = tile.Tile.IsGreen
)

// onStandard adapts a check that only applies to four groups and a pair.
func onStandard(check func(hand.Standard, hand.WinContext) bool) Decision {
	return func(h hand.CompleteHand, c hand.WinContext) bool {
		return hand.Match(h,
			func(hand.Kokushi) bool { return false },
			func(hand.SevenPairs) bool { return false },
			func(s hand.Standard) bool { return check(s, c) },
		)
	}
}

// allTiles holds when every tile of the hand satisfies pred.
func allTiles(pred func(tile.Tile) bool) Decision {
	return func(h hand.CompleteHand, _ hand.WinContext) bool {
		for _, t := range h.Tiles() {
			if !pred(t) {
				return false
			}
		}
		return true
	}
}

// sets returns the identifying tile of every triplet and quad.
func sets(h hand.Standard) []tile.Tile {
	var out []tile.Tile
	for _, g := range h.Groups {
		if g.Ty() != hand.Sequence {
			out = append(out, g.FirstTile())
		}
	}
	return out
}

// runs returns the lowest tile of every sequence.
func runs(h hand.Standard) []tile.Tile {
	var out []tile.Tile
	for _, g := range h.Groups {
		if g.Ty() == hand.Sequence {
			out = append(out, g.FirstTile())
		}
	}
	return out
}

func countFunc(tiles []tile.Tile, pred func(tile.Tile) bool) int {
	n := 0
	for _, t := range tiles {
		if pred(t) {
			n++
		}
	}
	return n
}

func isDragon(t tile.Tile) bool { return t.Kind() == tile.KindDragon }
func isWind(t tile.Tile) bool   { return t.Kind() == tile.KindWind }

// isConcealedSet reports whether g is a triplet or quad built entirely from the player's own
// draws. A set completed by ron counts as open for this purpose.
func isConcealedSet(g hand.Group, c hand.WinContext) bool {
	if g.Ty() == hand.Sequence || g.IsOpen() {
		return false
	}
	return !g.HasAgari() || c.Source.IsDrawn()
}

func concealedSets(h hand.Standard, c hand.WinContext) int {
	n := 0
	for _, g := range h.Groups {
		if isConcealedSet(g, c) {
			n++
		}
	}
	return n
}

// peikou counts pairs of identical sequences.
func peikou(h hand.Standard) int {
	seen := map[tile.Tile]int{}
	for _, t := range runs(h) {
		seen[t]++
	}
	n := 0
	for _, c := range seen {
		n += c / 2
	}
	return n
}

// inThreeSuits reports whether some value appears among starts in all three suits.
func inThreeSuits(starts []tile.Tile) bool {
	suits := map[tile.Val]map[tile.Suit]bool{}
	for _, t := range starts {
		s, ok := t.Suit()
		if !ok {
			continue
		}
		v, _ := t.Val()
		if suits[v] == nil {
			suits[v] = map[tile.Suit]bool{}
		}
		suits[v][s] = true
		if len(suits[v]) == 3 {
			return true
		}
	}
	return false
}

// singleSuit returns the suit shared by every suited tile and whether honours are present.
// ok is false when suited tiles of two suits appear or no suited tile appears at all.
func singleSuit(tiles []tile.Tile) (suit tile.Suit, honours bool, ok bool) {
	found := false
	for _, t := range tiles {
		s, suited := t.Suit()
		if !suited {
			honours = true
			continue
		}
		if found && s != suit {
			return 0, honours, false
		}
		suit, found = s, true
	}
	return suit, honours, found
}

// outside reports whether every group and the pair contain a terminal or honour (or, with
// terminalsOnly, a terminal) and at least one group is a sequence.
func outside(h hand.Standard, terminalsOnly bool) bool {
	edge := tile.Tile.IsTerminalOrHonour
	if terminalsOnly {
		edge = tile.Tile.IsTerminal
	}
	hasRun := false
	for _, g := range h.Groups {
		if !slices.ContainsFunc(g.Tiles(), edge) {
			return false
		}
		hasRun = hasRun || g.Ty() == hand.Sequence
	}
	return hasRun && edge(h.Pair[0])
}

func riichi(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.Riichi
}

func ippatsu(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.Riichi && c.FirstTurn
}

func menzenTsumo(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.IsTsumo()
}

func pinfu(h hand.Standard, c hand.WinContext) bool {
	if len(runs(h)) != 4 || h.Pair[0].IsYakuhai(c.Round, c.Seat) {
		return false
	}
	return h.Wait() == hand.Ryanmen
}

func iipeikou(h hand.Standard, _ hand.WinContext) bool {
	return peikou(h) == 1
}

func ryanpeikou(h hand.Standard, _ hand.WinContext) bool {
	return peikou(h) == 2
}

func dragonTriplet(d tile.Tile) func(hand.Standard, hand.WinContext) bool {
	return func(h hand.Standard, _ hand.WinContext) bool {
		return slices.Contains(sets(h), d)
	}
}

func roundWind(h hand.Standard, c hand.WinContext) bool {
	return slices.Contains(sets(h), tile.NewWind(c.Round))
}

func seatWind(h hand.Standard, c hand.WinContext) bool {
	return slices.Contains(sets(h), tile.NewWind(c.Seat))
}

func haitei(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.WallEmpty && c.Source.Kind() == hand.KindLiveWall
}

func houtei(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.WallEmpty && c.Source.Kind() == hand.KindDiscard
}

func rinshan(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.Source.Kind() == hand.KindDeadWall
}

func chankan(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.Source.Kind() == hand.KindKan
}

func chiitoitsu(h hand.CompleteHand, _ hand.WinContext) bool {
	return hand.Match(h,
		func(hand.Kokushi) bool { return false },
		func(hand.SevenPairs) bool { return true },
		func(hand.Standard) bool { return false },
	)
}

func sanshokuDoujun(h hand.Standard, _ hand.WinContext) bool {
	return inThreeSuits(runs(h))
}

func ittsu(h hand.Standard, _ hand.WinContext) bool {
	starts := runs(h)
	for _, s := range []tile.Suit{tile.Manzu, tile.Souzu, tile.Pinzu} {
		if slices.Contains(starts, tile.NewSuited(s, 1)) &&
			slices.Contains(starts, tile.NewSuited(s, 4)) &&
			slices.Contains(starts, tile.NewSuited(s, 7)) {
			return true
		}
	}
	return false
}

func chanta(h hand.Standard, _ hand.WinContext) bool {
	return outside(h, false) && slices.ContainsFunc(h.Tiles(), isHonour)
}

func junchan(h hand.Standard, _ hand.WinContext) bool {
	return outside(h, true)
}

func toitoi(h hand.Standard, _ hand.WinContext) bool {
	return len(sets(h)) == 4
}

func concealedTriplets(n int) func(hand.Standard, hand.WinContext) bool {
	return func(h hand.Standard, c hand.WinContext) bool {
		return concealedSets(h, c) == n
	}
}

func sanshokuDoukou(h hand.Standard, _ hand.WinContext) bool {
	return inThreeSuits(sets(h))
}

func quads(n int) func(hand.Standard, hand.WinContext) bool {
	return func(h hand.Standard, _ hand.WinContext) bool {
		count := 0
		for _, g := range h.Groups {
			if g.Ty() == hand.Quad {
				count++
			}
		}
		return count == n
	}
}

func shousangen(h hand.Standard, _ hand.WinContext) bool {
	return countFunc(sets(h), isDragon) == 2 && isDragon(h.Pair[0])
}

func daisangen(h hand.Standard, _ hand.WinContext) bool {
	return countFunc(sets(h), isDragon) == 3
}

func shousuushii(h hand.Standard, _ hand.WinContext) bool {
	return countFunc(sets(h), isWind) == 3 && isWind(h.Pair[0])
}

func daisuushii(h hand.Standard, _ hand.WinContext) bool {
	return countFunc(sets(h), isWind) == 4
}

func honroutou(h hand.CompleteHand, c hand.WinContext) bool {
	if kokushi(h, c) {
		return false
	}
	tiles := h.Tiles()
	for _, t := range tiles {
		if !t.IsTerminalOrHonour() {
			return false
		}
	}
	return slices.ContainsFunc(tiles, isHonour) && slices.ContainsFunc(tiles, isTerminal)
}

func honitsu(h hand.CompleteHand, _ hand.WinContext) bool {
	_, honours, ok := singleSuit(h.Tiles())
	return ok && honours
}

func chinitsu(h hand.CompleteHand, _ hand.WinContext) bool {
	_, honours, ok := singleSuit(h.Tiles())
	return ok && !honours
}

func renhou(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.FirstTurn && !c.Riichi && !c.IsDealer() && c.Source.Kind() == hand.KindDiscard
}

func kokushi(h hand.CompleteHand, _ hand.WinContext) bool {
	return hand.Match(h,
		func(hand.Kokushi) bool { return true },
		func(hand.SevenPairs) bool { return false },
		func(hand.Standard) bool { return false },
	)
}

// kokushi13 holds when the winning tile completed the duplicate, so the hand was waiting on all
// thirteen kinds.
func kokushi13(h hand.CompleteHand, c hand.WinContext) bool {
	return hand.Match(h,
		func(k hand.Kokushi) bool {
			return countFunc(k[:], func(t tile.Tile) bool { return t == c.Agari }) == 2
		},
		func(hand.SevenPairs) bool { return false },
		func(hand.Standard) bool { return false },
	)
}

func suuankou(h hand.Standard, c hand.WinContext) bool {
	_, won := h.AgariGroup()
	return won && concealedSets(h, c) == 4
}

func suuankouTanki(h hand.Standard, c hand.WinContext) bool {
	_, won := h.AgariGroup()
	return !won && concealedSets(h, c) == 4
}

// nineGates is the count of each value 1..9 required before the extra tile.
var nineGates = [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}

// chuurenCounts returns per-value counts of a fourteen tile, single-suit, quad-free hand.
func chuurenCounts(h hand.Standard) ([9]int, bool) {
	var counts [9]int
	tiles := h.Tiles()
	if len(tiles) != 14 {
		return counts, false
	}
	if _, honours, ok := singleSuit(tiles); !ok || honours {
		return counts, false
	}
	for _, t := range tiles {
		v, _ := t.Val()
		counts[v.Int()-1]++
	}
	for i, need := range nineGates {
		if counts[i] < need {
			return counts, false
		}
	}
	return counts, true
}

// isJunsei reports whether removing the winning tile leaves exactly 1112345678999.
func isJunsei(counts [9]int, agari tile.Tile) bool {
	v, ok := agari.Val()
	if !ok {
		return false
	}
	counts[v.Int()-1]--
	return counts == nineGates
}

func chuuren(h hand.Standard, c hand.WinContext) bool {
	counts, ok := chuurenCounts(h)
	return ok && !isJunsei(counts, c.Agari)
}

func junseiChuuren(h hand.Standard, c hand.WinContext) bool {
	counts, ok := chuurenCounts(h)
	return ok && isJunsei(counts, c.Agari)
}

func tenhou(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.FirstTurn && !c.Riichi && c.IsDealer() && c.Source.Kind() == hand.KindLiveWall
}

func chiihou(_ hand.CompleteHand, c hand.WinContext) bool {
	return c.FirstTurn && !c.Riichi && !c.IsDealer() && c.Source.Kind() == hand.KindLiveWall
}
