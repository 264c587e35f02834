package ledger

import (
	"context"

	"coopledger/internal/metrics"
	"coopledger/pkg/errors"
	"go.uber.org/zap"
)

// LinkElements creates a mutual relationship between two elements. Both
// directions are written in one store mutation, so symmetry always holds:
// id2 appears in id1's relationships iff id1 appears in id2's. Idempotent;
// a repeated link is a no-op. Self-links are permitted and record the
// element's own ID at most once. Edges are permanent, there is no unlink.
func (l *Ledger) LinkElements(ctx context.Context, id1, id2 string) error {
	added := false

	err := l.elements.Mutate(ctx, func(elements []Element) error {
		idx1, idx2 := -1, -1
		for i := range elements {
			if elements[i].ID == id1 {
				idx1 = i
			}
			if elements[i].ID == id2 {
				idx2 = i
			}
		}
		if idx1 < 0 {
			return errors.NewNotFound(KindElement, id1)
		}
		if idx2 < 0 {
			return errors.NewNotFound(KindElement, id2)
		}

		if !contains(elements[idx1].Relationships, id2) {
			elements[idx1].Relationships = append(elements[idx1].Relationships, id2)
			added = true
		}
		if idx1 != idx2 && !contains(elements[idx2].Relationships, id1) {
			elements[idx2].Relationships = append(elements[idx2].Relationships, id1)
			added = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if added {
		metrics.ElementsLinked.Inc()
		l.logger.Info("Elements linked",
			zap.String("element_id_1", id1),
			zap.String("element_id_2", id2),
		)
	}
	return nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
