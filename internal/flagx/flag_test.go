package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", ":50051"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "joined form",
			args:         []string{"--config=alt.json", "-a", ":50051"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-store"},
			allowedFlags: []string{"-store"},
			want:         []string{"-store"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-seed", "-store", "memory"},
			allowedFlags: []string{"-seed", "-store"},
			want:         []string{"-seed", "-store", "memory"},
		},
		{
			name:         "order preserved across repeats",
			args:         []string{"-a", ":1", "-a", ":2"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", ":1", "-a", ":2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "/etc/palace/short.json", ConfigFileFlag([]string{"-c", "/etc/palace/short.json", "-a", ":1"}))
	assert.Equal(t, "/etc/palace/long.json", ConfigFileFlag([]string{"-config", "/etc/palace/long.json"}))
	assert.Equal(t, "/p/2.json", ConfigFileFlag([]string{"-c", "/p/1.json", "-config", "/p/2.json"}))
	assert.Empty(t, ConfigFileFlag([]string{"-x", "1"}))
	assert.Empty(t, ConfigFileFlag(nil))
}
