package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/superutils/pkg/validator"
)

func TestValidNationalID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"eighteen characters", "11010519491231002X", true},
		{"lower case check character", "11010519491231002x", true},
		{"legacy fifteen digits", "110105491231002", true},
		{"checksum mismatch", "110105194912310021", false},
		{"unknown region", "99010519491231002X", false},
		{"wrong length", "1101051949123100", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.IsValidNationalID(tt.input))

			rule := validator.ValidNationalID("id_card", tt.input)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "validation.national_id", rule.Error.TranslationKey)
			assert.Equal(t, "id_card", rule.Error.Field)
		})
	}
}
