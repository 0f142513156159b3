package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_Defaults(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Validate())

	cfg := manager.GetConfig()
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 50, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
}

func TestManager_Validate(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func()
		wantErr string
	}{
		{
			name:    "Invalid port",
			mutate:  func() { manager.config.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "Invalid log level",
			mutate:  func() { manager.config.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "Invalid log format",
			mutate:  func() { manager.config.Logging.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "Zero rate limit while enabled",
			mutate:  func() { manager.config.RateLimit.RequestsPerSecond = 0 },
			wantErr: "invalid rate limit",
		},
		{
			name:    "Burst below sustained rate",
			mutate:  func() { manager.config.RateLimit.Burst = 10 },
			wantErr: "burst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, manager.loadConfig())
			tt.mutate()
			err := manager.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestManager_ServerConfigAccessor(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	server := manager.GetServerConfig()
	assert.Equal(t, manager.GetConfig().Server, *server)
}
