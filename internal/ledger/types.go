package ledger

import "coopledger/internal/classifier"

// Entity kind names used in storage and not-found errors
const (
	KindUser    = "user"
	KindElement = "element"
	KindAction  = "action"
)

// DefaultElementType is applied when an element is created without a type
const DefaultElementType = "knowledge_piece"

// Decision outcomes
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
	DecisionNeutral  = "neutral"
)

// User is a participant in the ledger
type User struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username"`
	GuidingValues      []string `json:"guiding_values"`
	HistoryOfActions   []string `json:"history_of_actions"`
	AssociatedElements []string `json:"associated_elements"`
}

// RecordID implements store.Record
func (u User) RecordID() string { return u.ID }

// Element is a titled unit of shared knowledge, proposal or goal.
// Relationships form an undirected graph: both directions are always
// written together. The vector is a placeholder for future embeddings.
type Element struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Type             string    `json:"type"`
	Vector           []float64 `json:"vector"`
	Relationships    []string  `json:"relationships"`
	HistoryOfActions []string  `json:"history_of_actions"`
}

// RecordID implements store.Record
func (e Element) RecordID() string { return e.ID }

// Action is a recorded user activity, optionally tied to an element.
// Votes map user IDs to vote values; a later vote from the same user
// overwrites the earlier one.
type Action struct {
	ID                string             `json:"id"`
	UserID            string             `json:"user_id"`
	ElementID         string             `json:"element_id,omitempty"`
	ActionType        string             `json:"action_type"`
	Content           string             `json:"content"`
	LinkedElements    []string           `json:"linked_elements"`
	Votes             map[string]int     `json:"votes"`
	LLMClassification *classifier.Result `json:"llm_classification"`
}

// RecordID implements store.Record
func (a Action) RecordID() string { return a.ID }

// Outcome is the read-time aggregation of an action's votes. It is never
// persisted; recomputation always reflects the current vote mapping.
type Outcome struct {
	ActionID   string `json:"action_id"`
	ActionType string `json:"type"`
	Content    string `json:"content"`
	VoteSum    int    `json:"vote_sum"`
	Decision   string `json:"decision"`
}
