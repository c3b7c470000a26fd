package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestZapCore_WritesEntries(t *testing.T) {
	l, store, _ := newTestLogger()
	logger := zap.New(NewZapCore(l, zapcore.DebugLevel), zap.AddCaller()).Named("Checkout")

	logger.Warn("slow", zap.Int("ms", 30), zap.String("step", "pay"))

	snap := store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "WARN slow ms=30 step=pay", snap[0].Message)
	assert.Equal(t, "(Checkout)", snap[0].Place.TypeLabel)
	assert.Equal(t, "zap_test", snap[0].Place.Component)
}

func TestZapCore_WithFields(t *testing.T) {
	l, store, _ := newTestLogger()
	logger := zap.New(NewZapCore(l, zapcore.InfoLevel)).With(zap.String("component", "demo"))

	logger.Info("tick")
	logger.Debug("dropped")

	snap := store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "tick component=demo", snap[0].Message)
	assert.Equal(t, "", snap[0].Place.Component)
}

func TestZapCore_DisabledLogger(t *testing.T) {
	l, store, _ := newTestLogger(WithEnabled(false))
	logger := zap.New(NewZapCore(l, zapcore.DebugLevel))

	logger.Error("x")

	assert.Zero(t, store.Len())
}
