package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value under errors.Is.
var ErrValidationFailed = errors.New("validation failed")
