package validator

import (
	"errors"
	"fmt"
	"reflect"

	playground "github.com/go-playground/validator/v10"
)

// Struct tags registered by RegisterTags.
const (
	TagChinaMobile = "cn_mobile"
	TagNationalID  = "cn_idcard"
	TagPassword    = "alnum_password"
	TagEmail       = "email_basic"
)

var tagChecks = []struct {
	tag   string
	check func(string) bool
	rule  func(field, value string) Rule
}{
	{TagChinaMobile, IsValidChinaMobilePhone, ValidChinaMobilePhone},
	{TagNationalID, IsValidNationalID, ValidNationalID},
	{TagPassword, IsValidPassword, ValidPassword},
	{TagEmail, IsValidEmail, ValidEmail},
}

// RegisterTags registers the package checks as go-playground/validator struct
// tags on v. The tags only apply to string fields.
func RegisterTags(v *playground.Validate) error {
	for _, tc := range tagChecks {
		if err := v.RegisterValidation(tc.tag, stringCheck(tc.check)); err != nil {
			return fmt.Errorf("register %q tag: %w", tc.tag, err)
		}
	}
	return nil
}

// NewStructValidator returns a validator with required-struct checks enabled
// and all package tags registered.
func NewStructValidator() (*playground.Validate, error) {
	v := playground.New(playground.WithRequiredStructEnabled())
	if err := RegisterTags(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidateStruct runs v against s and converts field failures into
// ValidationErrors. Failures on package tags carry the same message and
// translation key as the matching Rule builder.
func ValidateStruct(v *playground.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs.Add(fromFieldError(fe))
	}
	return errs
}

func fromFieldError(fe playground.FieldError) ValidationError {
	for _, tc := range tagChecks {
		if tc.tag == fe.Tag() {
			return tc.rule(fe.Field(), "").Error
		}
	}

	verr := newError(fe.Field(), fmt.Sprintf("failed on %q", fe.Tag()), "validation."+fe.Tag())
	if fe.Param() != "" {
		verr.TranslationValues["param"] = fe.Param()
	}
	return verr
}

func stringCheck(check func(string) bool) playground.Func {
	return func(fl playground.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return check(field.String())
	}
}
