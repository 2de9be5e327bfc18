package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNew_JSONToStdout(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: slog.LevelInfo, Stdout: &buf})

	log.Debug("hidden")
	log.Info("leave submitted", "user_id", 7)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "leave submitted", rec["message"])
	assert.EqualValues(t, 7, rec["user_id"])
}

func TestNew_ConsoleAndFile(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "dayflow.log")

	var buf bytes.Buffer
	log := New(Options{Level: slog.LevelDebug, File: path, Console: true, Stdout: &buf})
	log.With("component", "attendance").Warn("late check-in", "minutes", 12)

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "late check-in component=attendance minutes=12")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"late check-in"`)
}

func TestConsoleHandler_Group(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	log := slog.New(&ConsoleHandler{out: &buf, level: slog.LevelInfo})

	log.WithGroup("db").Info("migrated", "tables", 5)
	assert.Contains(t, buf.String(), "db.tables=5")
}
