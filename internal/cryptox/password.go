// Package cryptox implements password storage for user accounts.
//
// Two schemes exist. SchemePlain stores the password verbatim, which keeps
// byte compatibility with accounts created by the legacy backend.
// SchemeArgon2id stores an Argon2id key with a random salt, encoded as
//
//	argon2id$<base64 salt>$<base64 key>
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/palace/internal/common"
	"golang.org/x/crypto/argon2"
)

type Scheme string

const (
	SchemePlain    Scheme = "plain"
	SchemeArgon2id Scheme = "argon2id"
)

const (
	argon2Prefix  = "argon2id$"
	argon2SaltLen = 16
)

// ParseScheme validates a scheme name coming from configuration.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case SchemePlain:
		return SchemePlain, nil
	case SchemeArgon2id, "":
		return SchemeArgon2id, nil
	default:
		return "", fmt.Errorf("unknown password scheme %q", s)
	}
}

// DeriveKey stretches password with salt using Argon2id
// (1 pass, 64 MiB, 4 lanes, 32-byte key).
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// PasswordHasher turns passwords into stored secrets and checks candidates
// against them.
type PasswordHasher struct {
	scheme Scheme
}

func NewPasswordHasher(scheme Scheme) *PasswordHasher {
	return &PasswordHasher{scheme: scheme}
}

func (h *PasswordHasher) Scheme() Scheme {
	return h.scheme
}

// Hash returns the value to persist for password. Under SchemePlain a
// password that itself looks like an encoded key is hashed anyway, so
// Verify can always tell the two forms apart.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.scheme == SchemePlain && !strings.HasPrefix(password, argon2Prefix) {
		return password, nil
	}

	salt := common.GenerateRandByteArray(argon2SaltLen)
	key := DeriveKey([]byte(password), salt)

	return argon2Prefix +
		base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(key), nil
}

// Verify reports whether candidate matches stored. The stored form decides
// how: an argon2id value is checked by derivation under either scheme, and
// anything else is a plaintext secret compared byte-exact.
func (h *PasswordHasher) Verify(stored, candidate string) bool {
	if !strings.HasPrefix(stored, argon2Prefix) {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
	}

	parts := strings.Split(strings.TrimPrefix(stored, argon2Prefix), "$")
	if len(parts) != 2 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	got := DeriveKey([]byte(candidate), salt)
	defer common.WipeByteArray(got)

	return subtle.ConstantTimeCompare(want, got) == 1
}
