// Package handfile reads winning hands and their contexts from YAML.
package handfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mahjong-yaku/internal/hand"
	"mahjong-yaku/internal/tile"
)

// ErrInvalidEntry is returned for a hand entry that cannot be turned into a hand.
var ErrInvalidEntry = errors.New("invalid hand entry")

// Entry is one decoded hand.
type Entry struct {
	Name           string
	Hand           hand.CompleteHand
	Context        hand.WinContext
	DoraIndicators []tile.Tile
}

// Dora returns the number of dora in the hand.
func (e Entry) Dora() int {
	return tile.CountDora(e.Hand.Tiles(), e.DoraIndicators)
}

type document struct {
	Hands []entryYAML `yaml:"hands"`
}

type entryYAML struct {
	Name           string      `yaml:"name"`
	Shape          string      `yaml:"shape"`
	Tiles          string      `yaml:"tiles"`
	Pairs          []string    `yaml:"pairs"`
	Groups         []groupYAML `yaml:"groups"`
	Pair           string      `yaml:"pair"`
	DoraIndicators string      `yaml:"dora_indicators"`
	Context        contextYAML `yaml:"context"`
}

type groupYAML struct {
	Tiles  string `yaml:"tiles"`
	Called string `yaml:"called"`
	Added  bool   `yaml:"added"`
	Agari  bool   `yaml:"agari"`
}

type contextYAML struct {
	Agari     string `yaml:"agari"`
	Source    string `yaml:"source"`
	Riichi    bool   `yaml:"riichi"`
	FirstTurn bool   `yaml:"first_turn"`
	WallEmpty bool   `yaml:"wall_empty"`
	Round     string `yaml:"round"`
	Seat      string `yaml:"seat"`
	Honba     uint   `yaml:"honba"`
}

// Load reads every hand in the file at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Decode reads every hand from r. Unknown keys are rejected. Hands are converted but not
// validated against their context; see hand.Validate.
func Decode(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode hands: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Hands))
	for i, raw := range doc.Hands {
		e, err := raw.entry()
		if err != nil {
			name := raw.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidEntry, name, err)
		}
		if e.Name == "" {
			e.Name = fmt.Sprintf("hand %d", i+1)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (raw entryYAML) entry() (Entry, error) {
	e := Entry{Name: raw.Name}
	var err error

	switch raw.Shape {
	case "kokushi":
		e.Hand, err = raw.kokushi()
	case "seven_pairs":
		e.Hand, err = raw.sevenPairs()
	case "standard", "":
		e.Hand, err = raw.standard()
	default:
		err = fmt.Errorf("unknown shape %q", raw.Shape)
	}
	if err != nil {
		return Entry{}, err
	}

	if e.Context, err = raw.Context.winContext(); err != nil {
		return Entry{}, err
	}
	if raw.DoraIndicators != "" {
		if e.DoraIndicators, err = tile.Parse(raw.DoraIndicators); err != nil {
			return Entry{}, fmt.Errorf("dora_indicators: %w", err)
		}
	}
	return e, nil
}

func (raw entryYAML) kokushi() (hand.Kokushi, error) {
	var k hand.Kokushi
	ts, err := tile.Parse(raw.Tiles)
	if err != nil {
		return k, fmt.Errorf("tiles: %w", err)
	}
	if len(ts) != len(k) {
		return k, fmt.Errorf("kokushi needs %d tiles, got %d", len(k), len(ts))
	}
	copy(k[:], ts)
	return k, nil
}

func (raw entryYAML) sevenPairs() (hand.SevenPairs, error) {
	var p hand.SevenPairs
	var ts []tile.Tile
	if len(raw.Pairs) > 0 {
		for _, s := range raw.Pairs {
			pair, err := parseN(s, 2)
			if err != nil {
				return p, fmt.Errorf("pairs: %w", err)
			}
			ts = append(ts, pair...)
		}
	} else {
		var err error
		if ts, err = tile.Parse(raw.Tiles); err != nil {
			return p, fmt.Errorf("tiles: %w", err)
		}
	}
	if len(ts) != 2*len(p) {
		return p, fmt.Errorf("seven pairs needs %d tiles, got %d", 2*len(p), len(ts))
	}
	for i := range p {
		p[i] = [2]tile.Tile{ts[2*i], ts[2*i+1]}
	}
	return p, nil
}

func (raw entryYAML) standard() (hand.Standard, error) {
	var h hand.Standard
	if len(raw.Groups) != len(h.Groups) {
		return h, fmt.Errorf("standard hand needs %d groups, got %d", len(h.Groups), len(raw.Groups))
	}
	for i, g := range raw.Groups {
		group, err := g.group()
		if err != nil {
			return h, fmt.Errorf("group %d: %w", i+1, err)
		}
		h.Groups[i] = group
	}
	pair, err := parseN(raw.Pair, 2)
	if err != nil {
		return h, fmt.Errorf("pair: %w", err)
	}
	copy(h.Pair[:], pair)
	return h, nil
}

func (raw groupYAML) group() (hand.Group, error) {
	ts, err := tile.Parse(raw.Tiles)
	if err != nil {
		return hand.Group{}, err
	}
	if len(ts) != 3 && len(ts) != 4 {
		return hand.Group{}, fmt.Errorf("%q has %d tiles, want 3 or 4", raw.Tiles, len(ts))
	}
	var opts []hand.GroupOption
	if raw.Called != "" {
		o, err := parseOpponent(raw.Called)
		if err != nil {
			return hand.Group{}, err
		}
		opts = append(opts, hand.CalledFrom(o))
	}
	if raw.Added {
		opts = append(opts, hand.Added())
	}
	if raw.Agari {
		opts = append(opts, hand.WithAgari())
	}
	return hand.NewGroup(ts, opts...), nil
}

func (raw contextYAML) winContext() (hand.WinContext, error) {
	c := hand.WinContext{
		Riichi:    raw.Riichi,
		FirstTurn: raw.FirstTurn,
		WallEmpty: raw.WallEmpty,
		Honba:     raw.Honba,
	}
	agari, err := parseN(raw.Agari, 1)
	if err != nil {
		return c, fmt.Errorf("context.agari: %w", err)
	}
	c.Agari = agari[0]
	if c.Source, err = parseLocation(raw.Source); err != nil {
		return c, fmt.Errorf("context.source: %w", err)
	}
	if c.Round, err = parseDirection(raw.Round); err != nil {
		return c, fmt.Errorf("context.round: %w", err)
	}
	if c.Seat, err = parseDirection(raw.Seat); err != nil {
		return c, fmt.Errorf("context.seat: %w", err)
	}
	return c, nil
}

func parseN(s string, n int) ([]tile.Tile, error) {
	ts, err := tile.Parse(s)
	if err != nil {
		return nil, err
	}
	if len(ts) != n {
		return nil, fmt.Errorf("%q has %d tiles, want %d", s, len(ts), n)
	}
	return ts, nil
}

// parseLocation accepts live, dead, discard:<opponent> and kan:<opponent>. Empty means live.
func parseLocation(s string) (hand.Location, error) {
	kind, from, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch kind {
	case "", "live":
		return hand.LiveWall(), nil
	case "dead":
		return hand.DeadWall(), nil
	case "discard", "kan":
		o, err := parseOpponent(from)
		if err != nil {
			return hand.Location{}, err
		}
		if kind == "kan" {
			return hand.Kan(o), nil
		}
		return hand.Discard(o), nil
	}
	return hand.Location{}, fmt.Errorf("unknown source %q", s)
}

func parseOpponent(s string) (hand.Opponent, error) {
	for _, o := range []hand.Opponent{hand.Right, hand.Across, hand.Left} {
		if strings.EqualFold(strings.TrimSpace(s), o.String()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown opponent %q", s)
}

// parseDirection accepts a wind letter or name. Empty means East.
func parseDirection(s string) (tile.Direction, error) {
	s = strings.TrimSpace(s)
	for _, d := range []tile.Direction{tile.East, tile.South, tile.West, tile.North} {
		if s == "" && d == tile.East || strings.EqualFold(s, d.String()) || s == d.String()[:1] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown wind %q", s)
}
