// Package common contains shared constants and sentinel errors used across
// palace components.
package common

// AuthTokenHeaderName is the gRPC metadata key used to carry the session
// token on outbound requests.
const AuthTokenHeaderName = "auth_token"

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6
