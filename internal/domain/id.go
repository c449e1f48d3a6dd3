package domain

import (
	"github.com/google/uuid"
)

// NewRunID generates a UUIDv7 string identifying a single analysis run.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}
