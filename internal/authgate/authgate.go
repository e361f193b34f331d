// Package authgate implements the per-post secret-key capability: a
// secret chosen at creation time is the sole credential for editing or
// deleting a post. The secret is stored as a bcrypt hash and verified
// in the data layer's write path.
package authgate

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrSecretMismatch is returned when an entered secret key does not
// match the credential stored with the post.
var ErrSecretMismatch = errors.New("incorrect secret key")

// Hash derives the stored credential from the creation-time secret key.
func Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compares an entered secret key against the stored credential.
// Matching is exact: a trailing space or case difference rejects.
func Verify(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return ErrSecretMismatch
	}
	return nil
}
