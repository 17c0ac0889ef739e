package validator_test

import (
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/superutils/pkg/validator"
)

type signupForm struct {
	Email    string `validate:"required,email_basic"`
	Phone    string `validate:"required,cn_mobile"`
	Password string `validate:"required,alnum_password"`
	IDCard   string `validate:"omitempty,cn_idcard"`
}

func newStructValidator(t *testing.T) *playground.Validate {
	t.Helper()
	v, err := validator.NewStructValidator()
	require.NoError(t, err)
	return v
}

func TestRegisterTags(t *testing.T) {
	t.Run("registers on an existing validator", func(t *testing.T) {
		v := playground.New()
		require.NoError(t, validator.RegisterTags(v))

		assert.NoError(t, v.Var("13693538454", validator.TagChinaMobile))
		assert.Error(t, v.Var("12012345678", validator.TagChinaMobile))
	})

	t.Run("non string fields fail", func(t *testing.T) {
		v := newStructValidator(t)
		assert.Error(t, v.Var(13693538454, validator.TagChinaMobile))
	})
}

func TestStructTagsAgreeWithPredicates(t *testing.T) {
	v := newStructValidator(t)

	tests := []struct {
		tag   string
		check func(string) bool
		input []string
	}{
		{validator.TagEmail, validator.IsValidEmail, []string{"a@b.com", "307315148q.com", "a@b.c", "user@[192.168.1.1]"}},
		{validator.TagChinaMobile, validator.IsValidChinaMobilePhone, []string{"13693538454", "1369353845", "19412345678"}},
		{validator.TagPassword, validator.IsValidPassword, []string{"abc123", "abc", "abc_123456"}},
		{validator.TagNationalID, validator.IsValidNationalID, []string{"11010519491231002X", "110105491231002", "110105194912310021"}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			for _, in := range tt.input {
				err := v.Var(in, tt.tag)
				assert.Equal(t, tt.check(in), err == nil, "input %q", in)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	v := newStructValidator(t)

	t.Run("valid form", func(t *testing.T) {
		form := signupForm{
			Email:    "a@b.com",
			Phone:    "13693538454",
			Password: "abc123",
		}
		assert.NoError(t, validator.ValidateStruct(v, form))

		form.IDCard = "11010519491231002X"
		assert.NoError(t, validator.ValidateStruct(v, &form))
	})

	t.Run("maps package tags to rule errors", func(t *testing.T) {
		form := signupForm{
			Email:    "a@b.com",
			Phone:    "12012345678",
			Password: "abc",
			IDCard:   "110105194912310021",
		}

		err := validator.ValidateStruct(v, form)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"Phone", "Password", "IDCard"}, verrs.Fields())
		assert.Equal(t, "validation.china_mobile", verrs[0].TranslationKey)
		assert.Equal(t, "validation.password", verrs[1].TranslationKey)
		assert.Equal(t, "validation.national_id", verrs[2].TranslationKey)
		assert.Equal(t, validator.ValidPassword("Password", "").Error, verrs[1])
	})

	t.Run("keeps built-in tag name as translation key", func(t *testing.T) {
		err := validator.ValidateStruct(v, signupForm{Phone: "13693538454", Password: "abc123"})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "Email", verrs[0].Field)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
	})

	t.Run("passes through non field errors", func(t *testing.T) {
		err := validator.ValidateStruct(v, "not a struct")
		require.Error(t, err)
		assert.False(t, validator.IsValidationError(err))
	})
}
