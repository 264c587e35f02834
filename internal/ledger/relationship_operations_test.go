package ledger

import (
	"context"
	"testing"

	"coopledger/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkElements_Symmetry(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	a, err := led.CreateElement(ctx, "Climate Change Research", "")
	require.NoError(t, err)
	b, err := led.CreateElement(ctx, "Ocean Policy", "")
	require.NoError(t, err)

	require.NoError(t, led.LinkElements(ctx, a.ID, b.ID))

	gotA, err := led.GetElement(ctx, a.ID)
	require.NoError(t, err)
	gotB, err := led.GetElement(ctx, b.ID)
	require.NoError(t, err)

	assert.Contains(t, gotA.Relationships, b.ID)
	assert.Contains(t, gotB.Relationships, a.ID)
}

func TestLinkElements_Idempotent(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	a, err := led.CreateElement(ctx, "A", "")
	require.NoError(t, err)
	b, err := led.CreateElement(ctx, "B", "")
	require.NoError(t, err)

	require.NoError(t, led.LinkElements(ctx, a.ID, b.ID))
	require.NoError(t, led.LinkElements(ctx, a.ID, b.ID))

	gotA, err := led.GetElement(ctx, a.ID)
	require.NoError(t, err)
	gotB, err := led.GetElement(ctx, b.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{b.ID}, gotA.Relationships)
	assert.Equal(t, []string{a.ID}, gotB.Relationships)
}

func TestLinkElements_ReverseOrderIsSameEdge(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	a, err := led.CreateElement(ctx, "A", "")
	require.NoError(t, err)
	b, err := led.CreateElement(ctx, "B", "")
	require.NoError(t, err)

	require.NoError(t, led.LinkElements(ctx, a.ID, b.ID))
	require.NoError(t, led.LinkElements(ctx, b.ID, a.ID))

	gotA, err := led.GetElement(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, gotA.Relationships)
}

func TestLinkElements_SelfLinkPermitted(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	a, err := led.CreateElement(ctx, "A", "")
	require.NoError(t, err)

	require.NoError(t, led.LinkElements(ctx, a.ID, a.ID))
	require.NoError(t, led.LinkElements(ctx, a.ID, a.ID))

	got, err := led.GetElement(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, got.Relationships, "self-link records the ID at most once")
}

func TestLinkElements_NotFound(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	a, err := led.CreateElement(ctx, "A", "")
	require.NoError(t, err)

	err = led.LinkElements(ctx, a.ID, "ghost")
	assert.True(t, errors.IsNotFound(err))

	err = led.LinkElements(ctx, "ghost", a.ID)
	assert.True(t, errors.IsNotFound(err))

	// The failed link must not have written a dangling edge
	got, err := led.GetElement(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Relationships)
}
