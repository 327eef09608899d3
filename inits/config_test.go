package inits

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "/ynot-advisory", cfg.BasePath)
	assert.Equal(t, SubmitModeDeliver, cfg.SubmitMode)
	assert.Equal(t, time.Second, cfg.SimulatedDelay)
	assert.Equal(t, 14*24*time.Hour, cfg.Retention)
	assert.Equal(t, time.Minute, cfg.DuplicateWindow)
	assert.Equal(t, 10.0, cfg.RateLimitPerMinute)
	assert.Equal(t, "Ynot Advisory", cfg.SendGridFromName)
	assert.False(t, cfg.Release())
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=:9000\nSUBMIT_MODE=simulate\nSIMULATED_DELAY=250ms\nALLOWED_HOSTS=ynot.example,localhost\nGIN_MODE=release\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"PORT", "SUBMIT_MODE", "SIMULATED_DELAY", "ALLOWED_HOSTS", "GIN_MODE"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, SubmitModeSimulate, cfg.SubmitMode)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedDelay)
	assert.Equal(t, []string{"ynot.example", "localhost"}, cfg.AllowedHosts)
	assert.True(t, cfg.Release())
}

func TestLoadConfig_BasePathCleaned(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/", "/"},
		{"/x/", "/x"},
		{"/ynot-advisory//", "/ynot-advisory"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Setenv("BASE_PATH", tt.in)
			cfg, err := LoadConfig(noEnvFile(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.BasePath)
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown mode", map[string]string{"SUBMIT_MODE": "carrier-pigeon"}},
		{"relative base path", map[string]string{"BASE_PATH": "ynot"}},
		{"zero retention", map[string]string{"RETENTION": "0s"}},
		{"zero rate", map[string]string{"RATE_LIMIT_PER_MINUTE": "0"}},
		{"sendgrid without inbox", map[string]string{"SENDGRID_API_KEY": "key", "SENDGRID_FROM_EMAIL": "hello@ynot.example"}},
		{"bad duration", map[string]string{"SIMULATED_DELAY": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(noEnvFile(t))
			assert.Error(t, err)
		})
	}
}
