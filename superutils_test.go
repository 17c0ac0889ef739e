package superutils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/superutils"
)

func TestExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		digits   string
		nonDigit string
		hasDigit bool
	}{
		{"111aaa2b3c4d", "111", "aaa", true},
		{"abc", "", "abc", false},
		{"", "", "", false},
		{"价格: 42元", "42", "价格: ", true},
		{"2024", "2024", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.digits, superutils.ExtractLeadingDigitRun(tt.input))
			assert.Equal(t, tt.nonDigit, superutils.ExtractLeadingNonDigitRun(tt.input))
			assert.Equal(t, tt.hasDigit, superutils.ContainsDigit(tt.input))
		})
	}
}

func TestMasking(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "136****8454", superutils.MaskPhoneNumber("13693538454"))
	assert.Equal(t, "12345", superutils.MaskPhoneNumber("12345"))
	assert.Equal(t, "", superutils.MaskPhoneNumber(""))

	assert.Equal(t, "*阳", superutils.MaskUsername("许阳"))
	assert.Equal(t, "*", superutils.MaskUsername(""))
	assert.Equal(t, "*", superutils.MaskUsername("A"))
	assert.Equal(t, "****e", superutils.MaskUsername("alice"))
}

func TestFormatValidators(t *testing.T) {
	t.Parallel()

	assert.True(t, superutils.IsValidEmail("a@b.com"))
	assert.False(t, superutils.IsValidEmail("307315148q.com"))

	assert.True(t, superutils.IsValidChinaMobilePhone("13693538454"))
	assert.False(t, superutils.IsValidChinaMobilePhone("1369353845"))
	assert.False(t, superutils.IsValidChinaMobilePhone("0000000000"))

	assert.True(t, superutils.IsValidPassword("abc123"))
	assert.False(t, superutils.IsValidPassword("ab"))
	assert.False(t, superutils.IsValidPassword(strings.Repeat("a", 20)))
}

func TestIsValidNationalID(t *testing.T) {
	t.Parallel()

	const valid = "11010519491231002X"

	t.Run("well formed values pass", func(t *testing.T) {
		assert.True(t, superutils.IsValidNationalID(valid))
		assert.True(t, superutils.IsValidNationalID("44030419900307123X"))
		assert.True(t, superutils.IsValidNationalID("110105491231002"))
		assert.True(t, superutils.IsValidNationalID("11010549123100X"))
	})

	t.Run("single digit substitution fails", func(t *testing.T) {
		for i := range 17 {
			for d := byte('0'); d <= '9'; d++ {
				if valid[i] == d {
					continue
				}
				flipped := valid[:i] + string(d) + valid[i+1:]
				assert.False(t, superutils.IsValidNationalID(flipped), "position %d digit %c", i, d)
			}
		}
	})

	t.Run("invalid month and day fail", func(t *testing.T) {
		assert.False(t, superutils.IsValidNationalID("110105194913310021"))
		assert.False(t, superutils.IsValidNationalID("110105194912320021"))
		assert.False(t, superutils.IsValidNationalID("110105491331002"))
		assert.False(t, superutils.IsValidNationalID("110105491232002"))
	})

	t.Run("wrong length fails", func(t *testing.T) {
		assert.False(t, superutils.IsValidNationalID(valid[:16]))
		assert.False(t, superutils.IsValidNationalID(""))
	})

	t.Run("non numeric fields fail", func(t *testing.T) {
		assert.False(t, superutils.IsValidNationalID("AB010519491231002X"))
		assert.False(t, superutils.IsValidNationalID("1101051949AB31002X"))
	})
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "a@b.com", "13693538454", "abc123", "11010519491231002X", "110105491231002", "许阳"}
	for _, in := range inputs {
		for range 3 {
			assert.Equal(t, superutils.IsValidEmail(in), superutils.IsValidEmail(in))
			assert.Equal(t, superutils.IsValidChinaMobilePhone(in), superutils.IsValidChinaMobilePhone(in))
			assert.Equal(t, superutils.IsValidPassword(in), superutils.IsValidPassword(in))
			assert.Equal(t, superutils.IsValidNationalID(in), superutils.IsValidNationalID(in))
			assert.Equal(t, superutils.MaskPhoneNumber(in), superutils.MaskPhoneNumber(in))
			assert.Equal(t, superutils.MaskUsername(in), superutils.MaskUsername(in))
		}
	}
}
