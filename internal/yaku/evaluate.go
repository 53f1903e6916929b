package yaku

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"mahjong-yaku/internal/hand"
	"mahjong-yaku/internal/tile"
)

// Result is a yaku present in a hand together with its effective value. Yaku is a copy of the
// registry entry.
type Result struct {
	Yaku  Yaku
	Value Val
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%s)", r.Yaku.English, r.Value)
}

// Evaluate returns every yaku of r present in h, in registry order. Values are adjusted for an
// open hand; yaku that cannot be claimed open are left out. The hand is not validated.
func Evaluate(h hand.CompleteHand, c hand.WinContext, r *Registry) []Result {
	open := h.IsOpen()
	var out []Result
	for _, y := range r.yaku {
		if !y.InHand(h, c) {
			continue
		}
		v, ok := y.OpenVal.Apply(y.Val, open)
		if !ok {
			continue
		}
		out = append(out, Result{Yaku: y, Value: v})
	}
	return out
}

// Evaluator validates hands before evaluating them against a registry. It is safe for
// concurrent use.
type Evaluator struct {
	registry  *Registry
	logger    *slog.Logger
	jobs      int
	cacheSize int
	cache     *lru.Cache[string, []Result]
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithJobs bounds how many hands EvaluateAll works on at once. Values below 1 mean
// runtime.GOMAXPROCS(0).
func WithJobs(n int) EvaluatorOption {
	return func(e *Evaluator) {
		if n > 0 {
			e.jobs = n
		}
	}
}

// WithCache keeps the results of the last size distinct wins. Repeated hands, common when
// replaying logs, skip evaluation.
func WithCache(size int) EvaluatorOption {
	return func(e *Evaluator) {
		e.cacheSize = size
	}
}

// NewEvaluator returns an Evaluator for r.
func NewEvaluator(r *Registry, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		registry: r,
		logger:   slog.Default(),
		jobs:     runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		e.cache, _ = lru.New[string, []Result](e.cacheSize)
	}
	return e
}

// Registry returns the registry the evaluator uses.
func (e *Evaluator) Registry() *Registry {
	return e.registry
}

// Evaluate validates h and returns the yaku it holds.
func (e *Evaluator) Evaluate(h hand.CompleteHand, c hand.WinContext) ([]Result, error) {
	if err := hand.Validate(h, c); err != nil {
		return nil, err
	}
	var key string
	if e.cache != nil {
		key = cacheKey(h, c)
		if cached, ok := e.cache.Get(key); ok {
			e.logger.Debug("Evaluated hand from cache", "shape", hand.ShapeName(h), "yaku", len(cached))
			return slices.Clone(cached), nil
		}
	}
	results := Evaluate(h, c, e.registry)
	if e.cache != nil {
		e.cache.Add(key, slices.Clone(results))
	}
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		names := make([]string, len(results))
		for i, r := range results {
			names[i] = r.Yaku.Romaji
		}
		e.logger.Debug("Evaluated hand",
			"shape", hand.ShapeName(h),
			"agari", c.Agari.String(),
			"open", h.IsOpen(),
			"yaku", names,
		)
	}
	return results, nil
}

// cacheKey identifies everything evaluation depends on: the shape, every tile with its
// provenance, and the context apart from honba.
func cacheKey(h hand.CompleteHand, c hand.WinContext) string {
	shape := hand.Match(h,
		func(k hand.Kokushi) string { return "kokushi " + tile.Format(k[:]) },
		func(p hand.SevenPairs) string { return "pairs " + tile.Format(p.Tiles()) },
		func(s hand.Standard) string {
			var b strings.Builder
			b.WriteString("standard")
			for _, g := range s.Groups {
				b.WriteByte(' ')
				b.WriteString(g.String())
			}
			b.WriteByte(' ')
			b.WriteString(tile.Format(s.Pair[:]))
			return b.String()
		},
	)
	return fmt.Sprintf("%s|%v|%v|%t|%t|%t|%v|%v",
		shape, c.Agari, c.Source, c.Riichi, c.FirstTurn, c.WallEmpty, c.Round, c.Seat)
}

// Win is one hand to evaluate with its context.
type Win struct {
	Hand    hand.CompleteHand
	Context hand.WinContext
}

// EvaluateAll evaluates every win concurrently. Results are returned in input order. The first
// malformed hand cancels the remaining work and its error is returned, annotated with its index.
func (e *Evaluator) EvaluateAll(ctx context.Context, wins []Win) ([][]Result, error) {
	out := make([][]Result, len(wins))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for i, w := range wins {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results, err := e.Evaluate(w.Hand, w.Context)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}
			out[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
