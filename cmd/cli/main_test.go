package main

import (
	"context"
	"testing"

	"coopledger/internal/classifier"
	"coopledger/internal/ledger"
	"coopledger/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	dir := t.TempDir()

	users, err := store.NewFileCollection[ledger.User](dir, "users")
	require.NoError(t, err)
	elements, err := store.NewFileCollection[ledger.Element](dir, "elements")
	require.NoError(t, err)
	actions, err := store.NewFileCollection[ledger.Action](dir, "actions")
	require.NoError(t, err)

	return ledger.New(users, elements, actions, classifier.NewStub())
}

func TestDispatch_CreateAndListUsers(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	require.NoError(t, dispatch(ctx, led, []string{"create_user", "alice", "transparency"}))

	users, err := led.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, []string{"transparency"}, users[0].GuidingValues)
}

func TestDispatch_CreateActionWithoutElement(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	user, err := led.CreateUser(ctx, "alice", nil)
	require.NoError(t, err)

	// "-" stands for no element
	require.NoError(t, dispatch(ctx, led, []string{"create_action", user.ID, "-", "opinion", "sounds", "good"}))

	actions, err := led.ListActions(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Empty(t, actions[0].ElementID)
	assert.Equal(t, "sounds good", actions[0].Content)
}

func TestDispatch_ErrorsDoNotPanic(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	// Core failures come back as errors for the loop to print
	assert.Error(t, dispatch(ctx, led, []string{"get_user", "ghost"}))
	assert.Error(t, dispatch(ctx, led, []string{"vote_action", "ghost", "alice", "1"}))
	assert.Error(t, dispatch(ctx, led, []string{"vote_action", "ghost", "alice", "not-a-number"}))
	assert.Error(t, dispatch(ctx, led, []string{"create_user"}))

	// Unknown commands are reported inline, not as errors
	assert.NoError(t, dispatch(ctx, led, []string{"frobnicate"}))
}

func TestDispatch_VoteFlow(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)

	user, err := led.CreateUser(ctx, "alice", nil)
	require.NoError(t, err)
	element, err := led.CreateElement(ctx, "Climate Change Research", "")
	require.NoError(t, err)
	action, err := led.CreateAction(ctx, user.ID, element.ID, "proposal", "Focus on renewables", nil)
	require.NoError(t, err)

	require.NoError(t, dispatch(ctx, led, []string{"vote_action", action.ID, user.ID, "-1"}))
	require.NoError(t, dispatch(ctx, led, []string{"decision_outcome", action.ID}))

	outcome, err := led.DecisionOutcome(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, outcome.VoteSum)
	assert.Equal(t, ledger.DecisionRejected, outcome.Decision)
}
