// Package auth issues and reads session tokens.
//
// A token identifies an account; it grants nothing by itself. Callers must
// still resolve the id it carries against the user store, which is what makes
// deleting an account invalidate every token issued for it.
package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedToken is returned for any token a codec cannot read. The cause
// is kept for logs only.
var ErrMalformedToken = errors.New("malformed token")

// TokenCodec turns an account identity into a bearer token and back.
type TokenCodec interface {
	Issue(id, email string) (string, error)
	// Parse returns the account id carried by token.
	Parse(token string) (string, error)
}

// LegacyCodec produces base64("<id>:<email>"). Tokens carry no signature and
// never expire. They stay valid for exactly as long as the account exists.
type LegacyCodec struct{}

func (LegacyCodec) Issue(id, email string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(id + ":" + email)), nil
}

func (LegacyCodec) Parse(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	id, _, _ := strings.Cut(string(raw), ":")
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrMalformedToken)
	}
	return id, nil
}

// NewCodec builds the codec for scheme ("legacy" or "jwt").
func NewCodec(scheme string, secretKey []byte, validity time.Duration) (TokenCodec, error) {
	switch scheme {
	case "", "legacy":
		return LegacyCodec{}, nil
	case "jwt":
		if len(secretKey) == 0 {
			return nil, errors.New("jwt codec requires a secret key")
		}
		return NewJWTCodec(secretKey, validity), nil
	default:
		return nil, fmt.Errorf("unknown token scheme %q", scheme)
	}
}
