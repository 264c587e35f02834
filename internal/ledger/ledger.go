// Package ledger implements the cooperative decision-support core: the
// entity store for users, elements and actions, the symmetric element
// relationship graph, the cross-reference tracker keeping user and element
// histories consistent with the action collection, and the voting
// aggregator. Transport layers call into these operations and have no
// influence on them.
package ledger

import (
	"coopledger/internal/classifier"
	"coopledger/internal/store"
	"coopledger/pkg/logger"
	"go.uber.org/zap"
)

// Ledger owns the three entity collections and the classifier. All
// cross-entity references are held by identifier only; records are never
// embedded inside one another.
type Ledger struct {
	users      store.Collection[User]
	elements   store.Collection[Element]
	actions    store.Collection[Action]
	classifier classifier.Classifier
	logger     *zap.Logger
}

// New creates a ledger over the given collections and classifier
func New(
	users store.Collection[User],
	elements store.Collection[Element],
	actions store.Collection[Action],
	cls classifier.Classifier,
) *Ledger {
	return &Ledger{
		users:      users,
		elements:   elements,
		actions:    actions,
		classifier: cls,
		logger:     logger.Named("ledger"),
	}
}
