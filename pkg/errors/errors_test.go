package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidForm, "unknown form: %s", "pint")

	if err.Code != ErrCodeInvalidForm {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidForm)
	}

	if err.Message != "unknown form: pint" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown form: pint")
	}

	expected := "INVALID_FORM: unknown form: pint"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeLoad, cause, "probe failed")

	if err.Code != ErrCodeLoad {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeLoad)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestParse(t *testing.T) {
	cause := errors.New("unexpected token")
	err := Parse("gonum", "1.5 kcall", cause)

	if err.Code != ErrCodeParse {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeParse)
	}
	if err.Form != "gonum" {
		t.Errorf("Form = %q, want %q", err.Form, "gonum")
	}
	if err.Input != "1.5 kcall" {
		t.Errorf("Input = %q, want %q", err.Input, "1.5 kcall")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestCodeAsTarget(t *testing.T) {
	err := Wrap(ErrCodeTypeMismatch, New(ErrCodeParse, "inner"), "outer")

	if !errors.Is(err, ErrCodeTypeMismatch) {
		t.Error("errors.Is(err, ErrCodeTypeMismatch) = false, want true")
	}
	if !errors.Is(err, ErrCodeParse) {
		t.Error("errors.Is(err, ErrCodeParse) = false, want true (inner error)")
	}
	if errors.Is(err, ErrCodeLoad) {
		t.Error("errors.Is(err, ErrCodeLoad) = true, want false")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDimensionMismatch, "test"),
			code:     ErrCodeDimensionMismatch,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDimensionMismatch, "test"),
			code:     ErrCodeUnsupportedDimension,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeLoad, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeLoad,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnsupportedUnit, "test"),
			expected: ErrCodeUnsupportedUnit,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
