package errors

import (
	"strings"
	"testing"
)

func TestValidateExpression(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple quantity", "10 m", false},
		{"compound unit", "kg*m**2/s^2", false},
		{"array magnitude", "[1, 2, 3] nm", false},
		{"with tab", "5\tN", false},
		{"unicode symbol", "3 µs", false},

		{"empty", "", true},
		{"too long", strings.Repeat("m", 2000), true},
		{"null byte", "1\x00m", true},
		{"newline", "1\nm", true},
		{"control char", "1\x01m", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpression(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExpression(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateExpression(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateFormName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"gonum", "gonum", false},
		{"gounits", "gounits", false},
		{"dotted", "astropy.units", false},

		{"empty", "", true},
		{"uppercase", "Gonum", true},
		{"space", "go num", true},
		{"leading digit", "1form", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidForm) {
				t.Errorf("ValidateFormName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidForm)
			}
		})
	}
}
