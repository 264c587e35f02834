// Seeds the configured storage backend with a small demo dataset: two
// users, two linked elements, one proposal and a pair of votes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"coopledger/internal/bootstrap"
	"coopledger/pkg/config"
	"coopledger/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	skipIfPopulated := flag.Bool("skip-if-populated", true, "Do nothing when users already exist")
	flag.Parse()

	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting seeding...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	led, cleanup, err := bootstrap.BuildLedger(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize ledger", zap.Error(err))
	}
	defer cleanup()

	ctx := context.Background()

	if *skipIfPopulated {
		users, err := led.ListUsers(ctx)
		if err != nil {
			log.Fatal("Failed to list users", zap.Error(err))
		}
		if len(users) > 0 {
			log.Info("Storage already populated, nothing to do", zap.Int("users", len(users)))
			return
		}
	}

	alice, err := led.CreateUser(ctx, "alice", []string{"transparency", "sustainability"})
	if err != nil {
		log.Fatal("Failed to create user", zap.Error(err))
	}
	bob, err := led.CreateUser(ctx, "bob", nil)
	if err != nil {
		log.Fatal("Failed to create user", zap.Error(err))
	}

	climate, err := led.CreateElement(ctx, "Climate Change Research", "")
	if err != nil {
		log.Fatal("Failed to create element", zap.Error(err))
	}
	ocean, err := led.CreateElement(ctx, "Ocean Policy", "project")
	if err != nil {
		log.Fatal("Failed to create element", zap.Error(err))
	}

	if err := led.LinkElements(ctx, climate.ID, ocean.ID); err != nil {
		log.Fatal("Failed to link elements", zap.Error(err))
	}

	proposal, err := led.CreateAction(ctx, alice.ID, climate.ID, "proposal", "Focus on renewables", nil)
	if err != nil {
		log.Fatal("Failed to create action", zap.Error(err))
	}

	if _, err := led.Vote(ctx, proposal.ID, alice.ID, 1); err != nil {
		log.Fatal("Failed to vote", zap.Error(err))
	}
	if _, err := led.Vote(ctx, proposal.ID, bob.ID, 1); err != nil {
		log.Fatal("Failed to vote", zap.Error(err))
	}

	outcome, err := led.DecisionOutcome(ctx, proposal.ID)
	if err != nil {
		log.Fatal("Failed to compute outcome", zap.Error(err))
	}

	log.Info("Seeding complete",
		zap.String("proposal_id", proposal.ID),
		zap.Int("vote_sum", outcome.VoteSum),
		zap.String("decision", outcome.Decision),
	)
}
