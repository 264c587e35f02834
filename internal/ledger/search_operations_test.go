package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchElements_CaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	climate, err := led.CreateElement(ctx, "Climate Change Research", "")
	require.NoError(t, err)
	_, err = led.CreateElement(ctx, "Ocean Policy", "")
	require.NoError(t, err)

	for _, query := range []string{"climate", "CLIMATE", "Climate"} {
		results, err := led.SearchElements(ctx, query)
		require.NoError(t, err)
		require.Len(t, results, 1, "query %q", query)
		assert.Equal(t, climate.ID, results[0].ID)
	}
}

func TestSearchElements_NoMatches(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	_, err := led.CreateElement(ctx, "Ocean Policy", "")
	require.NoError(t, err)

	results, err := led.SearchElements(ctx, "climate")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchElements_CreationOrder(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	first, err := led.CreateElement(ctx, "Energy Policy", "")
	require.NoError(t, err)
	second, err := led.CreateElement(ctx, "Energy Storage", "")
	require.NoError(t, err)

	results, err := led.SearchElements(ctx, "energy")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, first.ID, results[0].ID)
	assert.Equal(t, second.ID, results[1].ID)
}
