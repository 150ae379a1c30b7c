package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDString returns a new random request identifier
func GenerateUUIDString() string {
	return uuid.New().String()
}

// IsUUID reports whether s parses as a UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
