package errors

import (
	"strings"
	"testing"
)

func TestValidateFigureName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{
			name:      "valid simple name",
			input:     "figure_0",
			wantError: false,
		},
		{
			name:      "valid name with dashes",
			input:     "pt-spectrum-2024",
			wantError: false,
		},
		{
			name:      "empty name",
			input:     "",
			wantError: true,
		},
		{
			name:      "path traversal",
			input:     "../etc/passwd",
			wantError: true,
		},
		{
			name:      "path separator",
			input:     "figures/one",
			wantError: true,
		},
		{
			name:      "backslash",
			input:     "figures\\one",
			wantError: true,
		},
		{
			name:      "null byte",
			input:     "figure\x00",
			wantError: true,
		},
		{
			name:      "control character",
			input:     "figure\n",
			wantError: true,
		},
		{
			name:      "too long",
			input:     strings.Repeat("a", 257),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFigureName(tt.input)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateFigureName(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG code, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		wantError bool
	}{
		{name: "svg", format: "svg", wantError: false},
		{name: "png", format: "png", wantError: false},
		{name: "pdf", format: "pdf", wantError: false},
		{name: "json", format: "json", wantError: false},
		{name: "uppercase", format: "SVG", wantError: false},
		{name: "empty", format: "", wantError: true},
		{name: "unknown", format: "gif", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateFormat(%q) error = %v, wantError %v", tt.format, err, tt.wantError)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name      string
		color     string
		wantError bool
	}{
		{name: "empty means default", color: "", wantError: false},
		{name: "short form", color: "#abc", wantError: false},
		{name: "long form", color: "#00b5b0", wantError: false},
		{name: "uppercase", color: "#AABBCC", wantError: false},
		{name: "missing hash", color: "00b5b0", wantError: true},
		{name: "wrong length", color: "#abcd", wantError: true},
		{name: "non-hex", color: "#gghhii", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.color)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateHexColor(%q) error = %v, wantError %v", tt.color, err, tt.wantError)
			}
		})
	}
}

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("cols", 3); err != nil {
		t.Errorf("ValidatePositive(3) = %v, want nil", err)
	}
	if err := ValidatePositive("cols", 0); err == nil {
		t.Error("ValidatePositive(0) = nil, want error")
	}
	if err := ValidatePositive("rows", -1); err == nil {
		t.Error("ValidatePositive(-1) = nil, want error")
	}
}
