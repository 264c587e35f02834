// Package classifier isolates the external LLM classification call made on
// every action's content. The result is captured once at creation time and
// stored verbatim on the action.
package classifier

import "context"

// Result is the verdict returned by the external classifier
type Result struct {
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// Classifier classifies free-form action content
type Classifier interface {
	Classify(ctx context.Context, text string) (*Result, error)
}

// Stub is a no-network classifier returning a fixed verdict. Used by the
// CLI and in development when no LLM endpoint is available.
type Stub struct{}

// NewStub creates a stub classifier
func NewStub() *Stub {
	return &Stub{}
}

// Classify returns the placeholder verdict
func (s *Stub) Classify(ctx context.Context, text string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Result{
		Label:       "neutral",
		Score:       0.5,
		Explanation: "Static classifier result.",
	}, nil
}
