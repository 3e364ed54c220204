// Package security prevents forge API tokens from leaking into logs and
// error messages.
package security

import "fmt"

const (
	// Minimum token length to show partial masking (show last 4 chars).
	minTokenLengthForPartialMask = 8
	// Number of characters to show when masking.
	maskShowChars = 4
	// maskEmpty is returned for empty tokens.
	maskEmpty = "[empty]"
	// maskRedacted is returned for short tokens.
	maskRedacted = "[redacted]"
)

// SecureToken wraps a forge API token so it cannot leak through string
// formatting. The String method returns a masked value, making the wrapper
// safe to pass through logs and wrapped errors.
type SecureToken struct {
	value string
}

// NewSecureToken creates a new SecureToken from a string value.
func NewSecureToken(token string) SecureToken {
	return SecureToken{value: token}
}

// String implements fmt.Stringer and returns a masked representation.
func (t SecureToken) String() string {
	if t.value == "" {
		return maskEmpty
	}
	if len(t.value) < minTokenLengthForPartialMask {
		return maskRedacted
	}
	return fmt.Sprintf("[token:****%s]", t.value[len(t.value)-maskShowChars:])
}

// GoString implements fmt.GoStringer so %#v is masked as well.
func (t SecureToken) GoString() string {
	return t.String()
}

// Value returns the underlying token. Only API client constructors should
// call this.
func (t SecureToken) Value() string {
	return t.value
}

// IsEmpty reports whether the wrapper holds no token.
func (t SecureToken) IsEmpty() bool {
	return t.value == ""
}
