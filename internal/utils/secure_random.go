package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// publicIDBytes yields 24 hex characters, the width of the public inquiry and suggestion IDs.
const publicIDBytes = 12

// NewPublicID returns a random hex identifier for records that are looked up
// by a key independent of their primary ID.
func NewPublicID() (string, error) {
	b := make([]byte, publicIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
