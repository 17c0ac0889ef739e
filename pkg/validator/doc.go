// Package validator provides format checks for email addresses, mainland China
// mobile numbers, passwords and resident identity numbers, together with
// rule-building helpers that carry translation-friendly error metadata.
//
// The Is* functions are plain predicates. The Valid* builders wrap them in a
// Rule which Apply evaluates, collecting every failure into a ValidationErrors
// slice that satisfies the error interface.
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.ValidChinaMobilePhone("phone", phone),
//	    validator.ValidNationalID("id_card", idCard),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // translate verrs[i].TranslationKey
//	}
//
// # Struct tags
//
// RegisterTags exposes the same checks to github.com/go-playground/validator/v10
// under the cn_mobile, cn_idcard, alnum_password and email_basic tags.
// ValidateStruct converts the resulting field errors into ValidationErrors:
//
//	type Signup struct {
//	    Phone    string `validate:"required,cn_mobile"`
//	    Password string `validate:"required,alnum_password"`
//	}
//
//	v, _ := validator.NewStructValidator()
//	err := validator.ValidateStruct(v, signup)
//
// All functions are stateless and safe for concurrent use.
package validator
