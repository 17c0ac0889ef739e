// Package superutils bundles small string helpers for user-facing data:
// extracting digit runs, masking personal data for display or logs, and
// checking emails, mainland China mobile numbers, passwords and resident
// identity numbers.
//
// Every function here is a thin entry point over the package that owns the
// concern:
//
//   - pkg/sanitizer: digit runs and PII masking
//   - pkg/validator: format checks and validation rules
//   - pkg/idcard: GB 11643 resident identity numbers
//
// Use those packages directly when you need more than a yes/no answer, for
// example idcard.Parse to read the birthdate and region or validator.Apply to
// collect field errors.
//
// Basic Usage:
//
//	superutils.MaskPhoneNumber("13693538454")   // "136****8454"
//	superutils.MaskUsername("许阳")              // "*阳"
//	superutils.IsValidNationalID("11010519491231002X") // true
//
// Malformed input never panics. Predicates return false and string helpers
// return either "" or the input unchanged. All functions are safe for
// concurrent use.
package superutils
