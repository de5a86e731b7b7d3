package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldsReachZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).Named("xtal").With(String("sg", "P 21 21 21"))

	l.Debug("trial", Int("i", 1), Float64("cutoff", 5.5), Bool("found", true),
		Duration("took", time.Second), Err(errors.New("boom")))
	l.Info("done")

	require.Equal(t, 2, logs.Len())
	e := logs.All()[0]
	assert.Equal(t, "xtal", e.LoggerName)
	m := e.ContextMap()
	assert.Equal(t, "P 21 21 21", m["sg"])
	assert.EqualValues(t, 1, m["i"])
	assert.Equal(t, 5.5, m["cutoff"])
	assert.Equal(t, true, m["found"])
	assert.Equal(t, "boom", m["error"])
}

func TestLevelFilter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLoggerFromCore(core)
	l.Debug("hidden")
	l.Warn("shown")
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger(LogConfig{OutputPaths: []string{"/no/such/dir/x.log"}})
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	old := Default()
	defer SetDefault(old)
	SetDefault(nil)
	assert.Equal(t, old, Default())
	n := NewNopLogger()
	SetDefault(n)
	assert.Equal(t, n, Default())
	assert.NoError(t, n.Sync())
}
