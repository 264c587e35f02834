// Package metrics exposes prometheus counters for the core operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersCreated counts created users
	UsersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coopledger_users_created_total",
		Help: "Number of users created.",
	})

	// ElementsCreated counts created elements
	ElementsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coopledger_elements_created_total",
		Help: "Number of elements created.",
	})

	// ElementsLinked counts link operations that added at least one edge
	ElementsLinked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coopledger_elements_linked_total",
		Help: "Number of element link operations that created a new edge.",
	})

	// ActionsCreated counts created actions
	ActionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coopledger_actions_created_total",
		Help: "Number of actions created.",
	})

	// VotesCast counts votes recorded on actions
	VotesCast = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coopledger_votes_cast_total",
		Help: "Number of votes recorded, revotes included.",
	})

	// ClassifierFailures counts failed classification calls
	ClassifierFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coopledger_classifier_failures_total",
		Help: "Number of action creations aborted by classifier failures.",
	})
)
