package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, parseLevel("warn"))
	assert.Equal(t, logrus.InfoLevel, parseLevel(""))
	assert.Equal(t, logrus.InfoLevel, parseLevel("bogus"))
}

func TestWithWriterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	log.WithComponent("bitfinex_rest").WithField("path", "/v1/balances").WithError(errors.New("boom")).Warn("request failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "bitfinex_rest", entry["component"])
	assert.Equal(t, "/v1/balances", entry["path"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "warning", entry["level"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")
	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.WithRequestID("abc").Info("shown")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Error("dropped")
		log.WithSymbol("btcusd").Info("dropped")
	})
}

func TestNewFileOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bfx.log")
	log := New(Config{Level: "info", Format: "json", Output: file, MaxSize: 1})
	log.WithOrderID("42").Info("order placed")
	assert.FileExists(t, file)
}
