package logger

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dmitrymomot/superutils/pkg/sanitizer"
)

// Masker turns a sensitive value into a loggable one.
type Masker func(string) string

// Attribute keys masked by default.
const (
	KeyPhone      = "phone"
	KeyUsername   = "username"
	KeyNationalID = "id_card"
	KeyEmail      = "email"
)

// DefaultMaskers returns a fresh map of the maskers installed by New.
func DefaultMaskers() map[string]Masker {
	return map[string]Masker{
		KeyPhone:      MaskPhone,
		KeyUsername:   sanitizer.MaskUsername,
		KeyNationalID: sanitizer.MaskNationalID,
		KeyEmail:      sanitizer.MaskEmail,
	}
}

// maskedPhoneRegex matches the output of sanitizer.MaskPhoneNumber.
var maskedPhoneRegex = regexp.MustCompile(`^\w{3}\*{4}\w{4}$`)

// MaskPhone masks like sanitizer.MaskPhoneNumber but hides values it cannot
// recognise completely instead of passing them through.
// Values that are already masked are returned unchanged.
func MaskPhone(s string) string {
	if maskedPhoneRegex.MatchString(s) {
		return s
	}
	masked := sanitizer.MaskPhoneNumber(s)
	if masked == s {
		return Redact(s)
	}
	return masked
}

// Redact replaces every rune of s with '*'.
func Redact(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}

// RedactingHandler wraps a slog.Handler and masks attributes whose key has a
// registered Masker. Keys are matched case-insensitively at any group depth.
// Masking happens on the record and on attributes bound with WithAttrs.
type RedactingHandler struct {
	next    slog.Handler
	maskers map[string]Masker
}

// NewRedactingHandler creates a new redacting handler. Nil maskers are dropped.
func NewRedactingHandler(next slog.Handler, maskers map[string]Masker) slog.Handler {
	clean := make(map[string]Masker, len(maskers))
	for key, mask := range maskers {
		if mask != nil {
			clean[strings.ToLower(key)] = mask
		}
	}
	return &RedactingHandler{next: next, maskers: clean}
}

func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle rebuilds the record with masked attributes and delegates to the next handler.
func (h *RedactingHandler) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.maskers) == 0 || rec.NumAttrs() == 0 {
		return h.next.Handle(ctx, rec)
	}

	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.redact(a))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.redact(a)
	}
	return &RedactingHandler{
		next:    h.next.WithAttrs(masked),
		maskers: h.maskers,
	}
}

func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{
		next:    h.next.WithGroup(name),
		maskers: h.maskers,
	}
}

func (h *RedactingHandler) redact(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		masked := make([]slog.Attr, len(group))
		for i, ga := range group {
			masked[i] = h.redact(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}

	if mask, ok := h.maskers[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, mask(a.Value.String()))
	}
	return a
}
