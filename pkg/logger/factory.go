package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for local debugging.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*options)

func WithLevel(l slog.Level) Option {
	return func(c *options) { c.level = l }
}

// WithFormat sets output format.
// Panics for invalid formats: a misconfigured logger should stop startup.
func WithFormat(f Format) Option {
	return func(c *options) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *options) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *options) {
		c.format = FormatJSON
	}
}

// WithOutput sets custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *options) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
// Registered sensitive keys are masked here as well.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *options) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithRedaction registers a masker for attributes named key, replacing any
// masker already registered for that key. Nil maskers remove the key.
func WithRedaction(key string, mask Masker) Option {
	return func(c *options) {
		if key == "" {
			return
		}
		if mask == nil {
			delete(c.maskers, key)
			return
		}
		c.maskers[key] = mask
	}
}

// WithoutRedaction drops every masker, including the defaults.
func WithoutRedaction() Option {
	return func(c *options) {
		c.maskers = make(map[string]Masker)
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type options struct {
	level   slog.Level
	format  Format
	output  io.Writer
	attrs   []slog.Attr
	maskers map[string]Masker
}

// defaultOptions: JSON at INFO level with the default PII maskers.
func defaultOptions() *options {
	return &options{
		level:   slog.LevelInfo,
		format:  FormatJSON,
		output:  os.Stdout,
		maskers: DefaultMaskers(),
	}
}

// New creates a configured slog.Logger whose handler masks registered
// sensitive attributes before they reach the output.
func New(opts ...Option) *slog.Logger {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	redacting := NewRedactingHandler(handler, cfg.maskers)
	if len(cfg.attrs) > 0 {
		redacting = redacting.WithAttrs(cfg.attrs)
	}
	return slog.New(redacting)
}
