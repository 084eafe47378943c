package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// signingSecretBytes matches the HS256 output size.
const signingSecretBytes = 32

// NewSigningSecret returns a random hex encoded HS256 key for runs that
// start without JWT_SECRET. Tokens signed with it die with the process.
func NewSigningSecret() (string, error) {
	b := make([]byte, signingSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes for signing secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
