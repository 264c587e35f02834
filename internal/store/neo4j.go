package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"coopledger/pkg/errors"
	"coopledger/pkg/logger"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Neo4jCollection keeps each record as a (:LedgerRecord) node carrying the
// record's JSON payload, keyed by kind and id with a seq property preserving
// creation order. It implements the same full-load/full-rewrite contract as
// the file backend, so the two are interchangeable behind Collection.
type Neo4jCollection[T Record] struct {
	driver neo4j.DriverWithContext
	kind   string
	mu     sync.Mutex
	log    *zap.Logger
}

// NewNeo4jCollection creates a collection for one entity kind
func NewNeo4jCollection[T Record](driver neo4j.DriverWithContext, kind string) *Neo4jCollection[T] {
	return &Neo4jCollection[T]{
		driver: driver,
		kind:   kind,
		log:    logger.Named("store"),
	}
}

// List returns all records of this kind in creation order
func (c *Neo4jCollection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Append stores rec as a new node with the next sequence number
func (c *Neo4jCollection[T]) Append(ctx context.Context, rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload, err := json.Marshal(rec)
	if err != nil {
		return errors.NewStoreFailed(c.kind, "append", err)
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		OPTIONAL MATCH (r:LedgerRecord {kind: $kind})
		WITH coalesce(max(r.seq), -1) + 1 AS next
		CREATE (:LedgerRecord {kind: $kind, id: $id, seq: next, payload: $payload})
	`
	_, err = session.Run(ctx, query, map[string]interface{}{
		"kind":    c.kind,
		"id":      rec.RecordID(),
		"payload": string(payload),
	})
	if err != nil {
		return errors.NewStoreFailed(c.kind, "append", err)
	}

	c.log.Debug("Appended record",
		zap.String("kind", c.kind),
		zap.String("id", rec.RecordID()),
	)
	return nil
}

// Mutate loads all records, applies fn, and rewrites every payload
func (c *Neo4jCollection[T]) Mutate(ctx context.Context, fn func(recs []T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(recs); err != nil {
		return err
	}

	rows := make([]map[string]interface{}, 0, len(recs))
	for _, rec := range recs {
		payload, err := json.Marshal(rec)
		if err != nil {
			return errors.NewStoreFailed(c.kind, "save", err)
		}
		rows = append(rows, map[string]interface{}{
			"id":      rec.RecordID(),
			"payload": string(payload),
		})
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		UNWIND $rows AS row
		MATCH (r:LedgerRecord {kind: $kind, id: row.id})
		SET r.payload = row.payload
	`
	_, err = session.Run(ctx, query, map[string]interface{}{
		"kind": c.kind,
		"rows": rows,
	})
	if err != nil {
		return errors.NewStoreFailed(c.kind, "save", err)
	}
	return nil
}

func (c *Neo4jCollection[T]) load(ctx context.Context) ([]T, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (r:LedgerRecord {kind: $kind})
		RETURN r.payload AS payload
		ORDER BY r.seq
	`
	result, err := session.Run(ctx, query, map[string]interface{}{
		"kind": c.kind,
	})
	if err != nil {
		return nil, errors.NewStoreFailed(c.kind, "load", err)
	}

	var recs []T
	for result.Next(ctx) {
		value, ok := result.Record().Get("payload")
		if !ok {
			continue
		}
		payload, ok := value.(string)
		if !ok {
			return nil, errors.NewStoreFailed(c.kind, "load", fmt.Errorf("unexpected payload type %T", value))
		}
		var rec T
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			return nil, errors.NewStoreFailed(c.kind, "load", err)
		}
		recs = append(recs, rec)
	}
	if err := result.Err(); err != nil {
		return nil, errors.NewStoreFailed(c.kind, "load", err)
	}
	return recs, nil
}
