// Package yaku evaluates scoring conditions against a classified winning hand.
//
// A Registry is an ordered, read-only table of Yaku, each pairing a value with a pure decision
// function. Build it once with NewRegistry (or use Default) and share it freely between
// goroutines.
package yaku

import (
	"fmt"
	"slices"
	"sync"

	"mahjong-yaku/internal/hand"
)

// ID identifies a yaku in a registry.
type ID int

// Decision reports whether a yaku is present in a hand won in the given context. Decisions
// must be pure: they see the same immutable inputs whatever order they run in.
type Decision func(h hand.CompleteHand, c hand.WinContext) bool

// Yaku is a named scoring condition.
type Yaku struct {
	ID ID
	// Names are cosmetic and play no part in evaluation.
	Kanji   string
	Romaji  string
	English string
	// Val is the value on a closed hand.
	Val Val
	// OpenVal modifies Val when the hand is open.
	OpenVal OpenVal
	InHand  Decision
}

func (y Yaku) String() string {
	return y.English
}

// Renhou settings.
const (
	RenhouMangan  = "mangan"
	RenhouYakuman = "yakuman"
	RenhouNone    = "none"
)

// Rules are the table options that change the registry.
type Rules struct {
	// OpenTanyao allows tanyao on an open hand (kuitan).
	OpenTanyao bool `mapstructure:"open_tanyao" yaml:"open_tanyao"`
	// DoubleYakuman scores the double yakuman variants as two yakuman. When false they are
	// worth a single yakuman.
	DoubleYakuman bool `mapstructure:"double_yakuman" yaml:"double_yakuman"`
	// Renhou is one of RenhouMangan, RenhouYakuman or RenhouNone.
	Renhou string `mapstructure:"renhou" yaml:"renhou"`
}

// DefaultRules returns the common modern ruleset.
func DefaultRules() Rules {
	return Rules{
		OpenTanyao:    true,
		DoubleYakuman: true,
		Renhou:        RenhouMangan,
	}
}

// Registry is an ordered table of yaku. It is never modified after construction and hands
// out copies of its entries.
type Registry struct {
	yaku []Yaku
	byID map[ID]int
}

// NewRegistry builds the standard yaku table adjusted for rules.
func NewRegistry(rules Rules) (*Registry, error) {
	switch rules.Renhou {
	case RenhouMangan, RenhouYakuman, RenhouNone:
	default:
		return nil, fmt.Errorf("unknown renhou setting %q", rules.Renhou)
	}

	table := standardTable()
	r := &Registry{
		yaku: make([]Yaku, 0, len(table)),
		byID: make(map[ID]int, len(table)),
	}
	for _, y := range table {
		switch {
		case y.ID == Tanyao && !rules.OpenTanyao:
			y.OpenVal = Invalid
		case y.ID == Renhou && rules.Renhou == RenhouNone:
			continue
		case y.ID == Renhou && rules.Renhou == RenhouYakuman:
			y.Val = Yakuman()
		}
		if y.Val.Tier == TierDoubleYakuman && !rules.DoubleYakuman {
			y.Val = Yakuman()
		}
		if err := r.add(y); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewCustomRegistry builds a registry from an explicit list of yaku, in order.
func NewCustomRegistry(yaku ...Yaku) (*Registry, error) {
	r := &Registry{byID: make(map[ID]int, len(yaku))}
	for _, y := range yaku {
		if err := r.add(y); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(y Yaku) error {
	if y.InHand == nil {
		return fmt.Errorf("yaku %q has no decision function", y.Romaji)
	}
	if _, dup := r.byID[y.ID]; dup {
		return fmt.Errorf("duplicate yaku id %d (%s)", y.ID, y.Romaji)
	}
	r.byID[y.ID] = len(r.yaku)
	r.yaku = append(r.yaku, y)
	return nil
}

// Lookup returns a copy of the yaku with the given ID.
func (r *Registry) Lookup(id ID) (Yaku, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Yaku{}, false
	}
	return r.yaku[i], true
}

// All returns a copy of the yaku in evaluation order.
func (r *Registry) All() []Yaku {
	return slices.Clone(r.yaku)
}

// Len returns the number of yaku in the registry.
func (r *Registry) Len() int {
	return len(r.yaku)
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(DefaultRules())
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the registry for DefaultRules, built on first use.
func Default() *Registry {
	return defaultRegistry()
}
