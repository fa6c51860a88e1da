package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	res, err := New(Config{Level: "debug", Format: FormatJSON, Writer: &buf})
	require.NoError(t, err)
	assert.False(t, res.UsingFile())

	l := ComponentLogger(res.Logger, "store")
	l.Debug().Str("path", "/tmp/p.json").Msg("loaded")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "store", line["component"])
	assert.Equal(t, "loaded", line["message"])
	assert.Equal(t, "debug", line["level"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	res, err := New(Config{Level: "loud", Format: FormatJSON, Writer: &buf})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, res.Logger.GetLevel())

	res.Logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sustaintrack.log")
	res, err := New(Config{Level: "info", File: path})
	require.NoError(t, err)
	require.True(t, res.UsingFile())

	res.Logger.Info().Msg("hello")
	require.NoError(t, res.Close())
	require.NoError(t, res.Close(), "double close is safe")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNew_UnwritableFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var buf bytes.Buffer
	res, err := New(Config{Format: FormatJSON, File: filepath.Join(blocker, "x.log"), Writer: &buf})
	require.Error(t, err)
	require.NotNil(t, res)
	assert.False(t, res.UsingFile())

	res.Logger.Info().Msg("still works")
	assert.Contains(t, buf.String(), "still works")
}

func TestContextPropagation(t *testing.T) {
	var buf bytes.Buffer
	res, err := New(Config{Format: FormatJSON, Writer: &buf})
	require.NoError(t, err)

	ctx := Attach(context.Background(), res.Logger)
	traceID := TraceIDFromContext(ctx)
	require.Len(t, traceID, 26, "ULID string length")
	assert.Equal(t, traceID, GetOrGenerateTraceID(ctx))

	FromContext(ctx).Info().Msg("traced")
	assert.Contains(t, buf.String(), traceID)
}

func TestFromContext_NoLogger(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	l.Info().Msg("discarded")

	//nolint:staticcheck // nil context is tolerated on purpose.
	assert.NotNil(t, FromContext(nil))
	assert.Empty(t, TraceIDFromContext(context.Background()))
	assert.NotEqual(t, NewTraceID(), NewTraceID())
}
