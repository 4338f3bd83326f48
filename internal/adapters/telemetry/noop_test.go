package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/adapters/telemetry"
)

func TestNoOpTelemetry(t *testing.T) {
	tel := telemetry.NewNoOp()
	ctx := context.Background()

	got, vertex := tel.Record(ctx, "chunks/main.js")
	assert.Equal(t, ctx, got)
	require.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("wrote chunks/main.js\n"))
	require.NoError(t, err)
	assert.Equal(t, 21, n)

	vertex.Cached()
	vertex.Complete(errors.New("boom"))
	assert.NoError(t, tel.Close())
}
