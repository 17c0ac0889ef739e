package logger

import (
	"log/slog"

	"github.com/dmitrymomot/superutils/pkg/sanitizer"
)

// Error records err under the key "error". Nil errors yield an empty Attr,
// which slog handlers drop.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Phone records a masked phone number under the key "phone".
func Phone(phone string) slog.Attr {
	return slog.String(KeyPhone, MaskPhone(phone))
}

// Username records a masked user name under the key "username".
func Username(name string) slog.Attr {
	return slog.String(KeyUsername, sanitizer.MaskUsername(name))
}

// NationalID records a masked identity number under the key "id_card".
func NationalID(id string) slog.Attr {
	return slog.String(KeyNationalID, sanitizer.MaskNationalID(id))
}

// Email records a masked email address under the key "email".
func Email(email string) slog.Attr {
	return slog.String(KeyEmail, sanitizer.MaskEmail(email))
}
