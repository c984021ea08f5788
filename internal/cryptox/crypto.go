// Package cryptox derives and checks the stored PIN credential.
//
// The raw digits are never persisted. Instead the settings record stores an
// encoded string "argon2id$<salt-hex>$<verifier-hex>", where the verifier is
// a SHA-256 of the argon2id-derived key. Verification is constant-time.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	encodingPrefix = "argon2id"
)

var ErrMalformedCredential = errors.New("malformed pin credential")

// DeriveKey stretches the PIN digits with argon2id.
func DeriveKey(pin []byte, salt []byte) []byte {
	return argon2.IDKey(pin, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// MakeVerifier hashes a derived key into the value that is safe to store.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// EncodePin produces the storable credential string for the given PIN.
// A fresh random salt is generated on every call.
func EncodePin(pin []byte) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt generation: %w", err)
	}
	verifier := MakeVerifier(DeriveKey(pin, salt))
	return fmt.Sprintf("%s$%s$%s", encodingPrefix,
		hex.EncodeToString(salt), hex.EncodeToString(verifier)), nil
}

// VerifyPin checks PIN digits against a stored credential string.
// A malformed credential is reported as an error; a wrong PIN returns false.
func VerifyPin(pin []byte, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != encodingPrefix {
		return false, ErrMalformedCredential
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedCredential
	}
	verifier, err := hex.DecodeString(parts[2])
	if err != nil {
		return false, ErrMalformedCredential
	}
	candidate := MakeVerifier(DeriveKey(pin, salt))
	return subtle.ConstantTimeCompare(verifier, candidate) == 1, nil
}
