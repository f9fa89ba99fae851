// Package sui holds helpers for Sui on-chain identifiers.
package sui

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ObjectIDHexLength is the number of hex digits in a full Sui address.
	ObjectIDHexLength = 64

	hexPrefix = "0x"
)

// ErrInvalidObjectID indicates a string that cannot be read as a Sui object id
var ErrInvalidObjectID = errors.New("invalid sui object id")

// IsValidObjectID reports whether s is 0x followed by exactly 64 hex digits.
func IsValidObjectID(s string) bool {
	return ValidateObjectID(s) == nil
}

// ValidateObjectID performs a strict format check and describes what is wrong.
func ValidateObjectID(s string) error {
	if !strings.HasPrefix(s, hexPrefix) {
		return fmt.Errorf("%w: %q is missing the 0x prefix", ErrInvalidObjectID, s)
	}
	digits := s[len(hexPrefix):]
	if len(digits) != ObjectIDHexLength {
		return fmt.Errorf("%w: %q has %d hex digits, want %d", ErrInvalidObjectID, s, len(digits), ObjectIDHexLength)
	}
	if i := indexNonHex(digits); i >= 0 {
		return fmt.Errorf("%w: %q has non-hex character %q", ErrInvalidObjectID, s, digits[i])
	}
	return nil
}

// NormalizeObjectID returns the canonical lowercase, zero-padded form of s.
// Short system addresses such as 0x6 expand to their full 64-digit form.
func NormalizeObjectID(s string) (string, error) {
	digits := strings.ToLower(strings.TrimSpace(s))
	digits = strings.TrimPrefix(digits, hexPrefix)
	if digits == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidObjectID)
	}
	if len(digits) > ObjectIDHexLength {
		return "", fmt.Errorf("%w: %q is longer than %d hex digits", ErrInvalidObjectID, s, ObjectIDHexLength)
	}
	if i := indexNonHex(digits); i >= 0 {
		return "", fmt.Errorf("%w: %q has non-hex character %q", ErrInvalidObjectID, s, digits[i])
	}
	return hexPrefix + strings.Repeat("0", ObjectIDHexLength-len(digits)) + digits, nil
}

// ShortObjectID abbreviates an id for log output, e.g. 0x74ed95…d54ca.
func ShortObjectID(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:8] + "…" + s[len(s)-5:]
}

func indexNonHex(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return i
		}
	}
	return -1
}
