package errors

import (
	"regexp"
	"unicode"
)

// maxExpressionLength bounds quantity and unit expressions accepted from
// user input (CLI arguments, HTTP bodies, config files).
const maxExpressionLength = 1024

// ValidateExpression validates a quantity or unit expression before it is
// handed to a parser.
//
// The validation rules are intentionally conservative:
//   - No empty expressions
//   - No control characters or null bytes
//   - Maximum length of 1024 characters
//
// Grammar validation is done by the form's parser.
func ValidateExpression(expr string) error {
	if expr == "" {
		return New(ErrCodeInvalidInput, "expression cannot be empty")
	}

	if len(expr) > maxExpressionLength {
		return New(ErrCodeInvalidInput, "expression too long (max %d characters)", maxExpressionLength)
	}

	for _, r := range expr {
		if unicode.IsControl(r) && r != '\t' {
			return New(ErrCodeInvalidInput, "expression contains invalid control characters").WithInput(expr)
		}
	}

	return nil
}

// formNameRegex matches form identifiers (e.g. "gonum", "gounits").
var formNameRegex = regexp.MustCompile(`^[a-z][a-z0-9._-]*$`)

// ValidateFormName validates the syntax of a form identifier.
// Whether the form is known is decided by the registry.
func ValidateFormName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidForm, "form name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidForm, "form name too long (max 64 characters)")
	}

	if !formNameRegex.MatchString(name) {
		return New(ErrCodeInvalidForm, "invalid form name: %q", name).WithForm(name)
	}

	return nil
}
