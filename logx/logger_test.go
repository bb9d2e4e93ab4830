package logx_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkveil/cellgrow/logx"
)

func TestDefaultLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logx.NewDefaultLogger(logx.LevelWarn, &buf)

	l.Info("should not appear")
	require.Empty(t, buf.String())

	l.Warn("cell count %d", 42)
	require.Contains(t, buf.String(), "cell count 42")
	require.Contains(t, buf.String(), "[WARN]")
}

func TestDefaultLogger_WithFieldIncludesContext(t *testing.T) {
	var buf bytes.Buffer
	l := logx.NewDefaultLogger(logx.LevelInfo, &buf).WithField("run_id", "abc123")

	l.Info("growing")
	require.True(t, strings.Contains(buf.String(), "run_id=abc123"))
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	var l logx.Logger = logx.NullLogger{}
	l.Info("anything")
	l.WithField("k", "v").Warn("still nothing")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, logx.LevelDebug, logx.ParseLevel("debug"))
	require.Equal(t, logx.LevelWarn, logx.ParseLevel("WARNING"))
	require.Equal(t, logx.LevelInfo, logx.ParseLevel("nonsense"))
}
