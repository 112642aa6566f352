package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/records"
)

func TestApplyStopsAtFirstFailure(t *testing.T) {
	plan, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := Apply(ctx, records.NewService(records.NewMemoryGateway()), plan)
	assert.Equal(t, 0, written)
	assert.True(t, errors.Is(err, records.ErrStoreUnavailable))
}

func TestApplyWritesContactMessages(t *testing.T) {
	plan, err := Parse(strings.NewReader("contact:\n  - name: Bo\n    message: hi\n"))
	require.NoError(t, err)

	written, err := Apply(context.Background(), records.NewService(records.NewMemoryGateway()), plan)
	require.NoError(t, err)
	assert.Equal(t, 1, written)
}
