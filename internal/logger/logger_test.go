package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-sale/internal/logger"
)

func TestDefaultIsUsableBeforeInitialize(t *testing.T) {
	assert.NotNil(t, logger.Default())
	assert.NotPanics(t, func() {
		logger.Info("before initialize")
		logger.ErrorCtx(context.Background(), nil)
	})
}

func TestInitializeWithoutSentry(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	assert.True(t, logger.Default().Core().Enabled(zap.DebugLevel))

	require.NoError(t, logger.Initialize(logger.Config{Debug: false}))
	assert.False(t, logger.Default().Core().Enabled(zap.DebugLevel))
}

func TestWithFieldsAccumulates(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctx := logger.WithFields(context.Background(), zap.String("tx_hash", "0xabc"))
	ctx = logger.WithFields(ctx, zap.String("chain", "eip155:1"))

	assert.NotNil(t, logger.FromContext(ctx))
	assert.NotPanics(t, func() {
		logger.InfoCtx(ctx, "verification attempt")
	})
}
