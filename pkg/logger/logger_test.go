package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_Level(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"not-a-level", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := NewWithOutput(tt.level, &bytes.Buffer{})
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNewWithOutput_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", &buf)

	log.WithField("county", "Turkana").Info("Prediction completed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Prediction completed", entry["msg"])
	assert.Equal(t, "Turkana", entry["county"])
	assert.Equal(t, "info", entry["level"])
}
