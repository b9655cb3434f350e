package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// sessionTokenLen is the entropy of a session token in bytes (256 bits,
// 64 hex characters on the wire).
const sessionTokenLen = 32

// GenerateToken returns a hex-encoded token with n bytes of entropy from
// a cryptographically secure source.
func GenerateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashToken returns the hex SHA-256 of a token. Only the hash is stored;
// the raw token exists nowhere but the client's cookie.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
