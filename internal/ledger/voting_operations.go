package ledger

import (
	"context"

	"coopledger/internal/metrics"
	"coopledger/pkg/errors"
	"go.uber.org/zap"
)

// Vote records a vote on an action and returns the updated record. Each
// user holds at most one vote per action; a later vote from the same user
// overwrites the earlier one. The voter ID is not validated against the
// user collection and the value range is unrestricted ({+1, -1, 0} is
// convention, not contract).
func (l *Ledger) Vote(ctx context.Context, actionID, userID string, value int) (*Action, error) {
	var updated Action

	err := l.actions.Mutate(ctx, func(actions []Action) error {
		for i := range actions {
			if actions[i].ID == actionID {
				if actions[i].Votes == nil {
					actions[i].Votes = map[string]int{}
				}
				actions[i].Votes[userID] = value
				updated = actions[i]
				return nil
			}
		}
		return errors.NewNotFound(KindAction, actionID)
	})
	if err != nil {
		return nil, err
	}

	metrics.VotesCast.Inc()
	l.logger.Info("Vote recorded",
		zap.String("action_id", actionID),
		zap.String("user_id", userID),
		zap.Int("value", value),
	)
	return &updated, nil
}

// DecisionOutcome aggregates an action's current votes into a decision.
// Pure read-time computation: nothing is cached or persisted, and the sum
// of an empty vote map is 0 (neutral).
func (l *Ledger) DecisionOutcome(ctx context.Context, actionID string) (*Outcome, error) {
	action, err := l.GetAction(ctx, actionID)
	if err != nil {
		return nil, err
	}

	sum := 0
	for _, value := range action.Votes {
		sum += value
	}

	decision := DecisionNeutral
	switch {
	case sum > 0:
		decision = DecisionApproved
	case sum < 0:
		decision = DecisionRejected
	}

	return &Outcome{
		ActionID:   actionID,
		ActionType: action.ActionType,
		Content:    action.Content,
		VoteSum:    sum,
		Decision:   decision,
	}, nil
}
