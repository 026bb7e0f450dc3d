// Package password hashes and verifies user passwords.
package password

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

type Hasher interface {
	// Hash returns an encoded digest of plaintext. Every call uses a
	// fresh random salt, so hashing the same plaintext twice yields
	// different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. It returns an
	// error only if digest is malformed.
	Verify(plaintext, digest string) (bool, error)
}

type argon2idHasher struct {
	params *argon2id.Params
}

// NewArgon2idHasher returns a Hasher producing argon2id digests in the
// PHC string format. A nil params falls back to argon2id.DefaultParams.
func NewArgon2idHasher(params *argon2id.Params) Hasher {
	if params == nil {
		params = argon2id.DefaultParams
	}
	return &argon2idHasher{params: params}
}

func (h *argon2idHasher) Hash(plaintext string) (string, error) {
	digest, err := argon2id.CreateHash(plaintext, h.params)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return digest, nil
}

func (h *argon2idHasher) Verify(plaintext, digest string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(plaintext, digest)
	if err != nil {
		return false, fmt.Errorf("failed to compare password: %w", err)
	}
	return match, nil
}
