package store

import (
	"context"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// These tests require a running Neo4j instance on bolt://localhost:7687.
func TestNeo4jCollection_AppendListMutate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	kind := "test-" + time.Now().Format("20060102150405")
	c := NewNeo4jCollection[testRecord](driver, kind)

	// Clean up
	defer func() {
		session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
		defer session.Close(ctx)
		_, _ = session.Run(ctx, "MATCH (r:LedgerRecord {kind: $kind}) DETACH DELETE r", map[string]interface{}{"kind": kind})
	}()

	if err := c.Append(ctx, testRecord{ID: "a", Name: "first"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := c.Append(ctx, testRecord{ID: "b", Name: "second"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	recs, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "a" || recs[1].ID != "b" {
		t.Errorf("Records out of creation order: %v", recs)
	}

	err = c.Mutate(ctx, func(recs []testRecord) error {
		for i := range recs {
			if recs[i].ID == "b" {
				recs[i].Count = 42
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	recs, err = c.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if recs[1].Count != 42 {
		t.Errorf("Expected updated count 42, got %d", recs[1].Count)
	}
}

func createTestDriver() (neo4j.DriverWithContext, error) {
	uri := "bolt://localhost:7687"
	user := "neo4j"
	password := "password"

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, err
	}

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}

	return driver, nil
}
