package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	s := New(NewMemStorage())
	ctx := WithStore(context.Background(), s)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestFromContextUnprovisioned(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNotProvisioned)
}

func TestMustFromContextPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustFromContext(context.Background())
	})
}
