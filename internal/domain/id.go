package domain

import (
	"strings"

	"github.com/google/uuid"
)

// CanonicalID returns the lowercase hyphenated form of a UUID id, accepting
// every spelling uuid.Parse does (uppercase, braces, urn prefix, no dashes).
// Anything else is returned trimmed; it cannot name a stored row.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}
