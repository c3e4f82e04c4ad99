package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateFigureName validates a figure name for safety and correctness.
// Figure names end up in file names, cache keys and store document IDs, so
// the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateFigureName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "figure name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidConfig, "figure name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "figure name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
		"/",    // Path separator
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidConfig, "figure name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// validFormats are the output formats the save path dispatches on.
var validFormats = map[string]bool{
	"svg":  true,
	"png":  true,
	"pdf":  true,
	"json": true,
}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !validFormats[strings.ToLower(format)] {
		return New(ErrCodeInvalidFormat, "unsupported output format %q (svg, png, pdf, json)", format)
	}
	return nil
}

// hexColorRegex matches CSS-style hex colors (#rgb or #rrggbb).
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a style color attribute.
// Empty strings are allowed and mean "leave the backend default".
func ValidateHexColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidStyle, "invalid color %q (expected #rgb or #rrggbb)", color)
	}
	return nil
}

// ValidatePositive validates that a named dimension is strictly positive.
func ValidatePositive(name string, v int) error {
	if v <= 0 {
		return New(ErrCodeInvalidGrid, "%s must be positive, got %d", name, v)
	}
	return nil
}
