package yaku

import "fmt"

// Tier is the scoring tier of a yaku value.
type Tier uint8

const (
	TierHan Tier = iota
	TierMangan
	TierYakuman
	TierDoubleYakuman
)

// Val is the value of a yaku: some number of han, a fixed mangan, a yakuman or a double
// yakuman. Construct han values with Han.
type Val struct {
	Tier Tier
	// Han is only meaningful for TierHan.
	Han int
}

// Mangan returns the fixed mangan value.
func Mangan() Val { return Val{Tier: TierMangan} }

// Yakuman returns a single yakuman.
func Yakuman() Val { return Val{Tier: TierYakuman} }

// DoubleYakuman returns a double yakuman.
func DoubleYakuman() Val { return Val{Tier: TierDoubleYakuman} }

// Han returns a value worth n han.
func Han(n int) Val {
	return Val{Tier: TierHan, Han: n}
}

// IsYakuman reports whether v is a yakuman or double yakuman.
func (v Val) IsYakuman() bool {
	return v.Tier == TierYakuman || v.Tier == TierDoubleYakuman
}

// YakumanCount returns how many yakuman v is worth: 0, 1 or 2.
func (v Val) YakumanCount() int {
	switch v.Tier {
	case TierYakuman:
		return 1
	case TierDoubleYakuman:
		return 2
	}
	return 0
}

func (v Val) String() string {
	switch v.Tier {
	case TierHan:
		return fmt.Sprintf("%d han", v.Han)
	case TierMangan:
		return "mangan"
	case TierYakuman:
		return "yakuman"
	case TierDoubleYakuman:
		return "double yakuman"
	}
	return fmt.Sprintf("Val(%d)", uint8(v.Tier))
}

// OpenVal describes how a yaku's value changes when the hand is open.
type OpenVal uint8

const (
	// Full keeps the value unchanged.
	Full OpenVal = iota
	// Reduced is worth one fewer han.
	Reduced
	// Invalid cannot be claimed on an open hand.
	Invalid
)

func (o OpenVal) String() string {
	switch o {
	case Full:
		return "full"
	case Reduced:
		return "reduced"
	case Invalid:
		return "closed only"
	}
	return fmt.Sprintf("OpenVal(%d)", uint8(o))
}

// Apply returns the effective value of v on a hand that is or is not open. It returns false
// when the yaku does not count at all.
func (o OpenVal) Apply(v Val, open bool) (Val, bool) {
	if !open {
		return v, true
	}
	switch o {
	case Invalid:
		return Val{}, false
	case Reduced:
		if v.Tier != TierHan {
			return v, true
		}
		if v.Han <= 1 {
			return Val{}, false
		}
		return Han(v.Han - 1), true
	}
	return v, true
}
