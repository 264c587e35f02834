// Package bootstrap wires the configured storage backend and classifier
// into a ready ledger. Shared by the server, CLI and seed binaries.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"coopledger/internal/classifier"
	"coopledger/internal/ledger"
	"coopledger/internal/store"
	"coopledger/pkg/config"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// BuildLedger constructs a ledger from configuration. The returned cleanup
// closes the Neo4j driver when one was opened and is safe to call always.
func BuildLedger(cfg *config.Config, log *zap.Logger) (*ledger.Ledger, func(), error) {
	cleanup := func() {}

	var (
		users    store.Collection[ledger.User]
		elements store.Collection[ledger.Element]
		actions  store.Collection[ledger.Action]
	)

	switch cfg.StorageBackend {
	case config.StorageNeo4j:
		driver, err := neo4j.NewDriverWithContext(
			cfg.Neo4jURI,
			neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
		)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create Neo4j driver: %w", err)
		}
		if err := driver.VerifyConnectivity(context.Background()); err != nil {
			_ = driver.Close(context.Background())
			return nil, cleanup, fmt.Errorf("failed to verify Neo4j connectivity: %w", err)
		}
		cleanup = func() { _ = driver.Close(context.Background()) }

		users = store.NewNeo4jCollection[ledger.User](driver, ledger.KindUser)
		elements = store.NewNeo4jCollection[ledger.Element](driver, ledger.KindElement)
		actions = store.NewNeo4jCollection[ledger.Action](driver, ledger.KindAction)
		log.Info("Using Neo4j storage", zap.String("uri", cfg.Neo4jURI))

	default:
		var err error
		users, err = store.NewFileCollection[ledger.User](cfg.DataDir, "users")
		if err == nil {
			elements, err = store.NewFileCollection[ledger.Element](cfg.DataDir, "elements")
		}
		if err == nil {
			actions, err = store.NewFileCollection[ledger.Action](cfg.DataDir, "actions")
		}
		if err != nil {
			return nil, cleanup, err
		}
		log.Info("Using file storage", zap.String("dir", cfg.DataDir))
	}

	var cls classifier.Classifier
	if cfg.ClassifierBackend == config.ClassifierLLM {
		cls = classifier.NewLLM(
			cfg.LiteLLMURL,
			cfg.OpenRouterAPIKey,
			cfg.ModelID,
			time.Duration(cfg.ClassifierTimeoutMS)*time.Millisecond,
		)
		log.Info("Using LLM classifier", zap.String("model", cfg.ModelID))
	} else {
		cls = classifier.NewStub()
		log.Info("Using stub classifier")
	}

	return ledger.New(users, elements, actions, cls), cleanup, nil
}
