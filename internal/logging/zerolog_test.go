package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_JSONFieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONZerolog(&buf, zerolog.DebugLevel)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn", "err", errors.New("boom"))
	log.Error(ctx, "fail")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "dbg", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["a"])

	assert.Equal(t, "info", lines[1]["level"])
	assert.Equal(t, "two", lines[1]["b"])

	assert.Equal(t, "warn", lines[2]["level"])
	assert.Equal(t, "boom", lines[2]["err"])

	assert.Equal(t, "error", lines[3]["level"])
}

func TestZerologLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONZerolog(&buf, zerolog.WarnLevel)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
}

func TestZerologLogger_WithAndOddArgs(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONZerolog(&buf, zerolog.InfoLevel).With("component", "session")

	log.Info(context.Background(), "hello", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "session", lines[0]["component"])
	assert.Equal(t, "dangling", lines[0]["!BADKEY"])
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(&buf, FormatText, "debug")
	require.NoError(t, err)
	l.Debug(context.Background(), "text-out", "k", "v")
	assert.Contains(t, buf.String(), "msg=text-out")
	assert.Contains(t, buf.String(), "k=v")

	buf.Reset()
	l, err = New(&buf, FormatJSON, "info")
	require.NoError(t, err)
	l.Info(context.Background(), "json-out")
	assert.Contains(t, buf.String(), `"message":"json-out"`)

	buf.Reset()
	l, err = New(&buf, FormatConsole, "")
	require.NoError(t, err)
	l.Info(context.Background(), "console-out")
	assert.Contains(t, buf.String(), "console-out")
}

func TestNew_RejectsUnknown(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", "info")
	require.Error(t, err)

	_, err = New(&bytes.Buffer{}, FormatJSON, "loud")
	require.Error(t, err)
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	ctx := context.Background()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.With("a", 1).Warn(ctx, "x")
	l.Error(ctx, "x")
}
