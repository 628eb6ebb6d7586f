package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeID trims whitespace and lowercases UUID-shaped identifiers so
// lookups against the snapshot maps are stable. Non-UUID ids are only trimmed.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}

// ShortID returns the first 8 characters of an id for log lines
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
