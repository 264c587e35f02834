// Package store provides keyed collection storage for the ledger's entity
// kinds. A collection is a durable ordered sequence of records that is
// loaded in full and rewritten in full on every mutation. All access to a
// collection is serialized behind a per-collection lock, so two racing
// mutations cannot lose updates and readers never observe a partial write.
package store

import "context"

// Record is implemented by every entity stored in a collection
type Record interface {
	RecordID() string
}

// Collection is durable keyed storage for one entity kind.
// Records are kept in creation order.
type Collection[T Record] interface {
	// List returns all records in creation order
	List(ctx context.Context) ([]T, error)

	// Append adds a record to the end of the collection and persists it
	Append(ctx context.Context, rec T) error

	// Mutate loads the full collection, applies fn to it in place, and
	// persists the result. If fn returns an error nothing is written.
	Mutate(ctx context.Context, fn func(recs []T) error) error
}

// FindByID locates a record in a listed collection
func FindByID[T Record](recs []T, id string) (T, bool) {
	for _, rec := range recs {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}
