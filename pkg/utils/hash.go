package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// EmailRef returns a short, stable reference to an email for log lines,
// so addresses never appear in clear in the logs.
func EmailRef(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:12]
}
