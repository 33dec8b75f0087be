package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterProductionJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", "info", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("licence_ref", "01/123").Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "wrls-charging", entry["service"])
	assert.Equal(t, "01/123", entry["licence_ref"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
	assert.Equal(t, "error", parseLevel("error").String())
	assert.Equal(t, "info", parseLevel("").String())
}
