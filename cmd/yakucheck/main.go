package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mahjong-yaku/internal/config"
	"mahjong-yaku/internal/hand"
	"mahjong-yaku/internal/handfile"
	"mahjong-yaku/internal/yaku"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	envFile    string
	logLevel   string
	jobs       int
	cache      int
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "yakucheck [flags] FILE...",
		Short:        "List the yaku of the winning hands in YAML hand files",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "rules and logging config file (YAML)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "load YAKU_* overrides from this file (default .env if present)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "hands evaluated at once (default GOMAXPROCS)")
	cmd.Flags().IntVar(&opts.cache, "cache", 256, "remember results for this many distinct hands (0 disables)")
	return cmd
}

func run(ctx context.Context, opts options, files []string, stdout, stderr io.Writer) error {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	logger, err := newLogger(cfg.Logging, stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	registry, err := yaku.NewRegistry(cfg.Rules)
	if err != nil {
		return err
	}
	logger.Debug("Registry ready", "yaku", registry.Len(), "renhou", cfg.Rules.Renhou,
		"open_tanyao", cfg.Rules.OpenTanyao, "double_yakuman", cfg.Rules.DoubleYakuman)

	var entries []handfile.Entry
	for _, path := range files {
		es, err := handfile.Load(path)
		if err != nil {
			return err
		}
		logger.Info("Loaded hand file", "path", path, "hands", len(es))
		entries = append(entries, es...)
	}

	wins := make([]yaku.Win, len(entries))
	for i, e := range entries {
		wins[i] = yaku.Win{Hand: e.Hand, Context: e.Context}
	}
	evaluator := yaku.NewEvaluator(registry, yaku.WithLogger(logger), yaku.WithJobs(opts.jobs), yaku.WithCache(opts.cache))
	results, err := evaluator.EvaluateAll(ctx, wins)
	if err != nil {
		return err
	}

	for i, e := range entries {
		printEntry(stdout, e, results[i])
	}
	return nil
}

func newLogger(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
}

func waitName(h hand.CompleteHand) string {
	return hand.Match(h,
		func(hand.Kokushi) string { return "-" },
		func(hand.SevenPairs) string { return hand.Tanki.String() },
		func(s hand.Standard) string { return s.Wait().String() },
	)
}

func printEntry(w io.Writer, e handfile.Entry, results []yaku.Result) {
	fmt.Fprintf(w, "%s\n", e.Name)
	fmt.Fprintf(w, "  shape: %s, wait: %s, open: %t\n", hand.ShapeName(e.Hand), waitName(e.Hand), e.Hand.IsOpen())
	if len(results) == 0 {
		fmt.Fprintln(w, "  no yaku")
	}
	for _, r := range results {
		fmt.Fprintf(w, "  %-32s %-24s %s\n", r.Yaku.English, r.Yaku.Romaji, r.Value)
	}
	var tail []string
	if n := e.Dora(); n > 0 {
		tail = append(tail, fmt.Sprintf("dora %d", n))
	}
	if e.Context.Honba > 0 {
		tail = append(tail, fmt.Sprintf("honba %d", e.Context.Honba))
	}
	if len(tail) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(tail, ", "))
	}
}
