package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-timeout", "10s", "-session", "/tmp/s.db", "-log-level", "debug"},
			expected: &Config{
				ServerEndpointAddr: "127.0.0.1:9090",
				RequestTimeout:     10 * time.Second,
				SessionDBPath:      "/tmp/s.db",
				LogLevel:           "debug",
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-c", "x.json", "-a", "h:1"},
			expected: &Config{ServerEndpointAddr: "h:1"},
		},
		{name: "bad timeout", args: []string{"-timeout", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
