package logger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/superutils/pkg/config"
)

// Config is the environment-driven logger configuration.
type Config struct {
	Level      string   `env:"LOG_LEVEL" envDefault:"info"`
	Format     string   `env:"LOG_FORMAT" envDefault:"json"`
	RedactKeys []string `env:"LOG_REDACT_KEYS" envSeparator:","`
}

// LoadConfig reads Config from the environment (and a .env file if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a logger from cfg. Keys listed in RedactKeys are fully
// redacted in addition to the default maskers. opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	level := slog.LevelInfo
	if name := strings.TrimSpace(cfg.Level); name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, cfg.Level)
		}
	}

	format := Format(strings.ToLower(strings.TrimSpace(cfg.Format)))
	switch format {
	case FormatJSON, FormatText:
	case "":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	base := []Option{WithLevel(level), WithFormat(format)}
	for _, key := range cfg.RedactKeys {
		if key = strings.TrimSpace(key); key != "" {
			base = append(base, WithRedaction(key, Redact))
		}
	}

	return New(append(base, opts...)...), nil
}
