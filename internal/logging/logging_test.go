package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level       string
		development bool
		enabled     zap.AtomicLevel
	}{
		{"debug", false, zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"info", true, zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"WARN", false, zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"error", true, zap.NewAtomicLevelAt(zap.ErrorLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level, tt.development)
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, tt.enabled.Level(), logger.Level())
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}
