package inits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		release bool
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"debug", false, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"warn", true, zapcore.WarnLevel, zapcore.InfoLevel},
		{"nonsense", true, zapcore.InfoLevel, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.release)
			require.NoError(t, err)
			assert.NotNil(t, logger.Check(tt.enabled, "x"))
			assert.Nil(t, logger.Check(tt.muted, "x"))
		})
	}
}
