package catalog

import (
	"crypto/rand"
	"fmt"
)

// idLen is the length of a document identifier in hex characters.
const idLen = 24

// NewID generates an opaque document identifier: 12 random bytes encoded
// as 24 lowercase hex characters.
func NewID() string {
	b := make([]byte, idLen/2)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}

// ValidID reports whether s has the shape of a document identifier.
// Identifiers are opaque to clients; only the format is checked.
func ValidID(s string) bool {
	if len(s) != idLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
