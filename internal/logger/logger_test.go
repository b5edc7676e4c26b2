package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/config/configs"
)

func TestJSONFormatCarriesServiceFields(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, configs.Logger{Level: "debug", Format: "JSON"}, "dev")

	log.Debug("hello", slog.Int("n", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "newsdesk", rec["service"])
	assert.Equal(t, "dev", rec["env"])
	assert.EqualValues(t, 3, rec["n"])
}

func TestLevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, configs.Logger{Level: "warn"}, "prod")

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestNewWithoutFileHasNoopCloser(t *testing.T) {
	log, closer := New(configs.Logger{}, "test")
	require.NotNil(t, log)
	assert.NoError(t, closer.Close())
}
