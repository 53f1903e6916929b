package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"mahjong-yaku/internal/yaku"
)

// Config is the yakucheck configuration.
type Config struct {
	Rules   yaku.Rules    `mapstructure:"rules"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EnvPrefix prefixes environment overrides, e.g. YAKU_RULES_RENHOU=yakuman.
const EnvPrefix = "YAKU"

func setDefaults(v *viper.Viper) {
	rules := yaku.DefaultRules()
	v.SetDefault("rules.open_tanyao", rules.OpenTanyao)
	v.SetDefault("rules.double_yakuman", rules.DoubleYakuman)
	v.SetDefault("rules.renhou", rules.Renhou)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Load reads the YAML file at path over the defaults. An empty path loads the defaults and
// environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Rules.Renhou {
	case yaku.RenhouMangan, yaku.RenhouYakuman, yaku.RenhouNone:
	default:
		return fmt.Errorf("rules.renhou: unknown value %q", c.Rules.Renhou)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown value %q", c.Logging.Format)
	}
	return nil
}

// SlogLevel parses Level as a slog level name (debug, info, warn, error).
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}
