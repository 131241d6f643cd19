package requestctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureRequestIDKeepsExisting(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	_, id := EnsureRequestID(ctx)
	assert.Equal(t, "req-1", id)
}

func TestEnsureRequestIDMints(t *testing.T) {
	ctx, id := EnsureRequestID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetRequestID(ctx))
}
