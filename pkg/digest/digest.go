package digest

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digester is a one-way deterministic transformation of a password, used for
// equality-only credential checks. No salt is applied: equal inputs always
// produce the same output, so stored digests can be compared as exact
// strings.
type Digester interface {
	Digest(password string) string
}

// SHA256 digests with SHA-256, hex encoded.
type SHA256 struct{}

func (SHA256) Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// BLAKE2b256 digests with BLAKE2b-256, hex encoded.
type BLAKE2b256 struct{}

func (BLAKE2b256) Digest(password string) string {
	sum := blake2b.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Default returns the digester used when a caller supplies none.
func Default() Digester {
	return SHA256{}
}
