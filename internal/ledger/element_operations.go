package ledger

import (
	"context"

	"coopledger/internal/metrics"
	"coopledger/internal/store"
	"coopledger/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateElement creates an element record with a fresh ID and persists it.
// An empty elementType defaults to "knowledge_piece". The vector is a
// fixed-length placeholder until real embeddings arrive.
func (l *Ledger) CreateElement(ctx context.Context, title, elementType string) (*Element, error) {
	if elementType == "" {
		elementType = DefaultElementType
	}

	element := Element{
		ID:               uuid.NewString(),
		Title:            title,
		Type:             elementType,
		Vector:           []float64{0, 0, 0},
		Relationships:    []string{},
		HistoryOfActions: []string{},
	}

	if err := l.elements.Append(ctx, element); err != nil {
		return nil, err
	}

	metrics.ElementsCreated.Inc()
	l.logger.Info("Element created",
		zap.String("element_id", element.ID),
		zap.String("title", title),
		zap.String("type", elementType),
	)
	return &element, nil
}

// GetElement retrieves an element record by ID
func (l *Ledger) GetElement(ctx context.Context, id string) (*Element, error) {
	elements, err := l.elements.List(ctx)
	if err != nil {
		return nil, err
	}
	element, ok := store.FindByID(elements, id)
	if !ok {
		return nil, errors.NewNotFound(KindElement, id)
	}
	return &element, nil
}

// ListElements returns all element records in creation order
func (l *Ledger) ListElements(ctx context.Context) ([]Element, error) {
	return l.elements.List(ctx)
}

// recordElementAction appends an action ID to the element's history. The
// other half of the cross-reference tracker; only invoked when the action
// carries an element ID.
func (l *Ledger) recordElementAction(ctx context.Context, elementID, actionID string) error {
	return l.elements.Mutate(ctx, func(elements []Element) error {
		for i := range elements {
			if elements[i].ID == elementID {
				elements[i].HistoryOfActions = append(elements[i].HistoryOfActions, actionID)
				return nil
			}
		}
		return errors.NewNotFound(KindElement, elementID)
	})
}
