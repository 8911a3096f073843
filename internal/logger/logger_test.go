package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel("info")
	})

	SetLevel("warn")
	assert.Equal(t, slog.LevelWarn, Level())
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "level=WARN")

	SetLevel(" DEBUG ")
	Debugf("trace %s", "on")
	assert.Contains(t, buf.String(), "trace on")

	SetLevel("bogus")
	assert.Equal(t, slog.LevelInfo, Level())
}

func TestContextEntryAttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	SetLevel("info")

	ctx := NewContext(context.Background(), "run_id", "abc-123")
	ctx = NewContext(ctx, "chart", "small")
	FromContext(ctx).Infof("saved %s", "x.png")

	line := buf.String()
	assert.Contains(t, line, "run_id=abc-123")
	assert.Contains(t, line, "chart=small")
	assert.Contains(t, line, `msg="saved x.png"`)

	buf.Reset()
	FromContext(context.Background()).Infof("plain")
	require.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), "run_id=")
}

func TestEntryWithDoesNotAlias(t *testing.T) {
	base := With("a", 1)
	left := base.With("b", 2)
	right := base.With("c", 3)
	assert.Equal(t, []any{"a", 1, "b", 2}, left.attrs)
	assert.Equal(t, []any{"a", 1, "c", 3}, right.attrs)
}
