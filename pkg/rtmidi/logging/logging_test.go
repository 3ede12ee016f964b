package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewCapturesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("port opened", zap.Uint32("port", 3))
	l.Info("input created", zap.String("client", "probe"))
	l.Warn("slow close")
	l.Error("send failed")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "port opened", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.EqualValues(t, 3, entries[0].ContextMap()["port"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "probe", entries[1].ContextMap()["client"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestWithAddsContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core)).With(zap.String("client", "loop"))

	l.Info("callback installed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "loop", entries[0].ContextMap()["client"])
}

func TestNewNilBindsToGlobal(t *testing.T) {
	assert.NotNil(t, New(nil))
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Debug("nothing")
	l.Info("nothing")
	l.Warn("nothing")
	l.Error("nothing")
	l.With(zap.Int("n", 1)).Info("still nothing")
}
