// Package randx generates random strings for tokens.
package randx

import (
	"crypto/rand"
	"encoding/hex"
)

// HexString returns a random hexadecimal string built from size random
// bytes, so the result is 2*size characters long. It returns an error only
// if the system random source fails.
func HexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
