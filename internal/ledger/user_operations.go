package ledger

import (
	"context"

	"coopledger/internal/metrics"
	"coopledger/internal/store"
	"coopledger/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateUser creates a user record with a fresh ID and persists it
func (l *Ledger) CreateUser(ctx context.Context, username string, guidingValues []string) (*User, error) {
	if guidingValues == nil {
		guidingValues = []string{}
	}

	user := User{
		ID:                 uuid.NewString(),
		Username:           username,
		GuidingValues:      guidingValues,
		HistoryOfActions:   []string{},
		AssociatedElements: []string{},
	}

	if err := l.users.Append(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersCreated.Inc()
	l.logger.Info("User created",
		zap.String("user_id", user.ID),
		zap.String("username", username),
	)
	return &user, nil
}

// GetUser retrieves a user record by ID
func (l *Ledger) GetUser(ctx context.Context, id string) (*User, error) {
	users, err := l.users.List(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := store.FindByID(users, id)
	if !ok {
		return nil, errors.NewNotFound(KindUser, id)
	}
	return &user, nil
}

// ListUsers returns all user records in creation order
func (l *Ledger) ListUsers(ctx context.Context) ([]User, error) {
	return l.users.List(ctx)
}

// recordUserAction appends an action ID to the user's history. Part of the
// cross-reference tracker: invoked once, synchronously, after the action
// record is durably stored.
func (l *Ledger) recordUserAction(ctx context.Context, userID, actionID string) error {
	return l.users.Mutate(ctx, func(users []User) error {
		for i := range users {
			if users[i].ID == userID {
				users[i].HistoryOfActions = append(users[i].HistoryOfActions, actionID)
				return nil
			}
		}
		return errors.NewNotFound(KindUser, userID)
	})
}
