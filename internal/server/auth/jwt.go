package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the account identity next to the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Email  string
}

// GenerateToken signs an HS256 token for the account. Zero validity means the
// token never expires.
func GenerateToken(userID, email string, secretKey []byte, validity time.Duration) (string, error) {
	claims := Claims{UserID: userID, Email: email}
	if validity != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validity))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// GetUserIDFromToken verifies signature and expiry and returns the user id.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrMalformedToken
	}
	return claims.UserID, nil
}

// JWTCodec issues signed tokens, optionally expiring.
type JWTCodec struct {
	secretKey []byte
	validity  time.Duration
}

func NewJWTCodec(secretKey []byte, validity time.Duration) *JWTCodec {
	return &JWTCodec{secretKey: secretKey, validity: validity}
}

func (c *JWTCodec) Issue(id, email string) (string, error) {
	return GenerateToken(id, email, c.secretKey, c.validity)
}

func (c *JWTCodec) Parse(token string) (string, error) {
	return GetUserIDFromToken(token, c.secretKey)
}
