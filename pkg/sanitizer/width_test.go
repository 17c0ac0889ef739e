package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/superutils/pkg/sanitizer"
)

func TestFoldWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full-width digits",
			input:    "１３６９３５３８４５４",
			expected: "13693538454",
		},
		{
			name:     "full-width letters",
			input:    "ＡＢＣｘ",
			expected: "ABCx",
		},
		{
			name:     "ideographic space",
			input:    "a　b",
			expected: "a b",
		},
		{
			name:     "ascii is untouched",
			input:    "abc123",
			expected: "abc123",
		},
		{
			name:     "ideographs have no narrow form",
			input:    "许阳",
			expected: "许阳",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.FoldWidth(tt.input))
		})
	}
}
