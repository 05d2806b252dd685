package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/netrixframework/safez3/config"
	"github.com/stretchr/testify/require"
)

func TestWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug")
	l.With(LogParams{"context": "c1", "open_handles": 2}).Debug("Context close deferred")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "Context close deferred", line["msg"])
	require.Equal(t, "c1", line["context"])
	require.EqualValues(t, 2, line["open_handles"])
	require.Equal(t, "debug", line["level"])
}

func TestSetLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")
	l.Debug("hidden")
	require.Zero(t, buf.Len())

	l.SetLevel("not-a-level")
	l.Debug("still hidden")
	require.Zero(t, buf.Len())

	l.SetLevel("debug")
	l.Debug("shown")
	require.NotZero(t, buf.Len())
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	l.With(LogParams{"a": 1}).Warn("nothing")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "safez3.log")
	old := DefaultLogger
	defer func() { DefaultLogger = old }()

	Init(config.LogConfig{Path: path, Format: "json", Level: "info"})
	Info("Server started")
	Destroy()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Server started")
}
