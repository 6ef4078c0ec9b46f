// Package client contains client-side building blocks for palace.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the auth backend: Signup, Login, GetMe, UpdateRegions, DeleteMe
//     and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that bounds every
//     call with a timeout and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite session database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures are returned as values callers can match with errors.Is:
// ErrUnavailable (no answer within the timeout, retriable),
// common.ErrUnauthorized, common.ErrConflict and common.ErrValidation.
// Invalid input comes back as *common.ValidationError when the server sent
// field detail.
package client
