package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/palace/internal/flagx"
)

var clientFlags = []string{"-a", "-timeout", "-session", "-log-level"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string          address:port of the backend gRPC endpoint
//	-timeout duration  per-request timeout (e.g. "30s")
//	-session string    session database file
//	-log-level string  debug | info | warn | error
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, clientFlags)

	fs := flag.NewFlagSet("palace-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.SessionDBPath, "session", cfg.SessionDBPath, "session database file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
