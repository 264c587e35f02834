package ledger

import (
	"context"

	"coopledger/internal/metrics"
	"coopledger/internal/store"
	"coopledger/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAction records a user activity, classifies its content through the
// external classifier, persists the action with an empty vote map, and then
// updates the creating user's history and, when an element is referenced,
// that element's history.
//
// Referenced IDs are validated before anything is written, so a bad user or
// element ID fails with NotFound and leaves no partial record behind. The
// two history updates that follow persistence are independent: if the
// element update fails after the user update succeeded, the action and the
// user reference remain valid and the error is surfaced to the caller.
func (l *Ledger) CreateAction(ctx context.Context, userID, elementID, actionType, content string, linkedElements []string) (*Action, error) {
	if userID == "" {
		return nil, errors.NewInvalidInput("user_id", "must not be empty")
	}
	if _, err := l.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if elementID != "" {
		if _, err := l.GetElement(ctx, elementID); err != nil {
			return nil, err
		}
	}

	// Classification has no fallback: a failed or timed-out call aborts
	// the whole operation.
	result, err := l.classifier.Classify(ctx, content)
	if err != nil {
		metrics.ClassifierFailures.Inc()
		return nil, err
	}

	if linkedElements == nil {
		linkedElements = []string{}
	}

	action := Action{
		ID:                uuid.NewString(),
		UserID:            userID,
		ElementID:         elementID,
		ActionType:        actionType,
		Content:           content,
		LinkedElements:    linkedElements,
		Votes:             map[string]int{},
		LLMClassification: result,
	}

	if err := l.actions.Append(ctx, action); err != nil {
		return nil, err
	}

	if err := l.recordUserAction(ctx, userID, action.ID); err != nil {
		return nil, err
	}
	if elementID != "" {
		if err := l.recordElementAction(ctx, elementID, action.ID); err != nil {
			return nil, err
		}
	}

	metrics.ActionsCreated.Inc()
	l.logger.Info("Action created",
		zap.String("action_id", action.ID),
		zap.String("user_id", userID),
		zap.String("element_id", elementID),
		zap.String("action_type", actionType),
		zap.String("classification", result.Label),
	)
	return &action, nil
}

// GetAction retrieves an action record by ID
func (l *Ledger) GetAction(ctx context.Context, id string) (*Action, error) {
	actions, err := l.actions.List(ctx)
	if err != nil {
		return nil, err
	}
	action, ok := store.FindByID(actions, id)
	if !ok {
		return nil, errors.NewNotFound(KindAction, id)
	}
	return &action, nil
}

// ListActions returns all action records in creation order
func (l *Ledger) ListActions(ctx context.Context) ([]Action, error) {
	return l.actions.List(ctx)
}
