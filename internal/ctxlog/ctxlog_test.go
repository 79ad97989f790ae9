package ctxlog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arraylint/internal/ctxlog"
)

func TestRoundTrip(t *testing.T) {
	logger := zap.NewExample()
	ctx := ctxlog.WithLogger(context.Background(), logger)
	require.Same(t, logger, ctxlog.FromContext(ctx))
}

func TestMissingLoggerIsNop(t *testing.T) {
	logger := ctxlog.FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestNew(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger, err := ctxlog.New(verbose)
		require.NoError(t, err)
		require.NotNil(t, logger)
	}
}
