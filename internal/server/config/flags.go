package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/palace/internal/flagx"
)

var serverFlags = []string{
	"-a", "-http", "-store", "-d", "-sqlite", "-badger",
	"-token-scheme", "-s", "-t", "-password-scheme", "-seed", "-log-level",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string                gRPC bind address (e.g. ":50051")
//	-http string             HTTP bind address (e.g. ":8080")
//	-store string            memory | sqlite | postgres | badger
//	-d string                PostgreSQL DSN
//	-sqlite string           SQLite database file
//	-badger string           Badger data directory
//	-token-scheme string     legacy | jwt
//	-s string                JWT HMAC secret key
//	-t duration              JWT validity, 0 for no expiry (e.g. "24h")
//	-password-scheme string  argon2id | plain
//	-seed                    create the demo account
//	-log-level string        debug | info | warn | error
//
// args is first filtered with flagx.FilterArgs so flags owned by other
// loaders (such as -c) do not trip the parser.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, serverFlags)

	fs := flag.NewFlagSet("palace-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "http", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.StoreDriver, "store", config.StoreDriver, "store driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SQLitePath, "sqlite", config.SQLitePath, "sqlite database file")
	fs.StringVar(&config.BadgerDir, "badger", config.BadgerDir, "badger data directory")
	fs.StringVar(&config.TokenScheme, "token-scheme", config.TokenScheme, "session token scheme")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity")
	fs.StringVar(&config.PasswordScheme, "password-scheme", config.PasswordScheme, "password storage scheme")
	fs.BoolVar(&config.SeedDemoUser, "seed", config.SeedDemoUser, "seed demo user")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")

	return fs.Parse(args)
}
