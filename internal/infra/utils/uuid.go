package utils

import (
	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateTimeOrderedUUID returns a UUIDv7 so that lexical order follows
// creation order. Falls back to a random UUID if the clock source fails.
func GenerateTimeOrderedUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
