package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zonekit/zonekeeper/internal/logging"
)

func TestConfigure_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "info", Format: "text", Out: &buf})
	require.NotNil(t, logger)

	logger.Info("hello", "domain", "example.com")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "domain=example.com")
}

func TestConfigure_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "info", Format: "json", Out: &buf})

	logger.Info("hello", "domain", "example.com")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "example.com", entry["domain"])
}

func TestConfigure_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "warn", Out: &buf})

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestConfigure_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "chatty", Out: &buf})

	logger.Debug("dropped")
	logger.Info("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
