package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/palace/internal/flagx"
	"github.com/dmitrijs2005/palace/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so both "24h" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	StoreDriver           string         `json:"store_driver"`
	DatabaseDSN           string         `json:"database_dsn"`
	SQLitePath            string         `json:"sqlite_path"`
	BadgerDir             string         `json:"badger_dir"`
	TokenScheme           string         `json:"token_scheme"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	PasswordScheme        string         `json:"password_scheme"`
	SeedDemoUser          bool           `json:"seed_demo_user"`
	LogLevel              string         `json:"log_level"`
}

// parseJson overlays the file named by -c / -config onto config. Keys missing
// from the file keep their current values. Without the flag it does nothing.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := JsonConfig{
		EndpointAddrGRPC:      config.EndpointAddrGRPC,
		EndpointAddrHTTP:      config.EndpointAddrHTTP,
		StoreDriver:           config.StoreDriver,
		DatabaseDSN:           config.DatabaseDSN,
		SQLitePath:            config.SQLitePath,
		BadgerDir:             config.BadgerDir,
		TokenScheme:           config.TokenScheme,
		SecretKey:             config.SecretKey,
		TokenValidityDuration: timex.Duration{Duration: config.TokenValidityDuration},
		PasswordScheme:        config.PasswordScheme,
		SeedDemoUser:          config.SeedDemoUser,
		LogLevel:              config.LogLevel,
	}
	if err := json.Unmarshal(file, &c); err != nil {
		return err
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.StoreDriver = c.StoreDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.SQLitePath = c.SQLitePath
	config.BadgerDir = c.BadgerDir
	config.TokenScheme = c.TokenScheme
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.PasswordScheme = c.PasswordScheme
	config.SeedDemoUser = c.SeedDemoUser
	config.LogLevel = c.LogLevel
	return nil
}
