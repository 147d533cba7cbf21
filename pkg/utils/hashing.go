package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword mirrors the legacy credential scheme: a single unsalted
// round of SHA-256, hex encoded. Login matches rows on username plus
// this digest, so the output must stay deterministic.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
