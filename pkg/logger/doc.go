// Package logger provides a thin factory around Go's slog package that keeps
// personally identifiable information out of log output.
//
// New returns a *slog.Logger whose handler is wrapped by RedactingHandler. Any
// attribute whose key has a registered Masker is rewritten before it reaches
// the output, whether it was passed to a logging call, bound with With, or
// nested inside a group. The default maskers cover:
//
//	phone     136****8454
//	username  *阳
//	id_card   1101**********002X
//	email     j***@example.com
//
// # Usage
//
//	import "github.com/dmitrymomot/superutils/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithRedaction("bank_card", logger.Redact),
//	)
//	log.Info("user registered", "phone", "13693538454") // phone=136****8454
//
// Helper constructors such as Phone, NationalID and Error build attributes
// that are already masked, so they stay safe even with a plain slog handler.
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel: minimum slog.Level.
//   - WithOutput: destination writer (stdout by default).
//   - WithAttr: static attributes.
//   - WithRedaction / WithoutRedaction: adjust the masker set.
//
// Config together with LoadConfig and NewFromConfig reads the same settings
// from LOG_LEVEL, LOG_FORMAT and LOG_REDACT_KEYS.
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so
//
//	log.Info("validated", logger.Error(err))
//
// needs no nil check.
package logger
