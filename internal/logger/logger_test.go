package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adrotation/internal/config/configs"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer := New(configs.Logger{Level: "warn", Format: "json"}, &buf)
	t.Cleanup(func() { _ = closer.Close() })

	log.Info("dropped")
	log.Warn("kept", "campaign_id", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 7, rec["campaign_id"])
}

func TestNew_TextByDefault(t *testing.T) {
	var buf bytes.Buffer
	log, _ := New(configs.Logger{}, &buf)
	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_AlsoWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")
	var buf bytes.Buffer
	log, closer := New(configs.Logger{Level: "info", Format: "text", File: path, MaxSizeMB: 1}, &buf)

	log.Info("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}
