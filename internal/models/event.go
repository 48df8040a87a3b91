package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types published to the reconciliation events topic.
const (
	EventTypeMatchCreated         = "reconciliation.match.created"
	EventTypeMatchRemoved         = "reconciliation.match.removed"
	EventTypeAdjustmentCreated    = "reconciliation.adjustment.created"
	EventTypeAdjustmentUpdated    = "reconciliation.adjustment.updated"
	EventTypeAdjustmentDeleted    = "reconciliation.adjustment.deleted"
	EventTypeStatusChanged        = "reconciliation.status.changed"
	EventTypeVarianceRecalculated = "reconciliation.variance.recalculated"
)

// ReconciliationEvent is the envelope for every published event. Payload
// holds one of the typed payload structs below.
type ReconciliationEvent struct {
	EventID          string      `json:"event_id"`
	EventType        string      `json:"event_type"`
	ReconciliationID string      `json:"reconciliation_id"`
	CompanyID        string      `json:"company_id"`
	OccurredAt       time.Time   `json:"occurred_at"`
	Payload          interface{} `json:"payload"`
}

type MatchEventPayload struct {
	MatchID         string          `json:"match_id"`
	StatementLineID string          `json:"statement_line_id"`
	SourceType      SourceType      `json:"source_type"`
	SourceID        string          `json:"source_id"`
	Amount          decimal.Decimal `json:"amount"`
	AutoMatched     bool            `json:"auto_matched"`
	ConfidenceScore *float64        `json:"confidence_score,omitempty"`
	ActorID         string          `json:"actor_id"`
}

type AdjustmentEventPayload struct {
	AdjustmentID   string          `json:"adjustment_id"`
	AdjustmentType AdjustmentType  `json:"adjustment_type"`
	Amount         decimal.Decimal `json:"amount"`
	JournalEntryID *string         `json:"journal_entry_id,omitempty"`
	ActorID        string          `json:"actor_id"`
}

type StatusChangedEventPayload struct {
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	ActorID        string `json:"actor_id"`
	Reason         string `json:"reason,omitempty"`
}

type VarianceEventPayload struct {
	Variance                decimal.Decimal `json:"variance"`
	UnmatchedStatementTotal decimal.Decimal `json:"unmatched_statement_total"`
	UnmatchedInternalTotal  decimal.Decimal `json:"unmatched_internal_total"`
	IsBalanced              bool            `json:"is_balanced"`
}
