package models

import (
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"

	"github.com/shopspring/decimal"
)

// SourceType discriminates the internal transaction a statement line is
// matched against.
type SourceType string

const (
	SourceTypePayment      SourceType = "payment"
	SourceTypeInvoice      SourceType = "invoice"
	SourceTypeJournalEntry SourceType = "journal_entry"
	SourceTypeCreditNote   SourceType = "credit_note"
)

var AllSourceTypes = []SourceType{
	SourceTypePayment,
	SourceTypeInvoice,
	SourceTypeJournalEntry,
	SourceTypeCreditNote,
}

func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(s) {
	case SourceTypePayment, SourceTypeInvoice, SourceTypeJournalEntry, SourceTypeCreditNote:
		return SourceType(s), nil
	default:
		return "", fmt.Errorf("%w: %s", common.ErrInvalidSourceType, s)
	}
}

// Confidence bands for scored matches.
const (
	ConfidenceBandHigh   = "high"
	ConfidenceBandMedium = "medium"
	ConfidenceBandLow    = "low"
	ConfidenceBandManual = "manual"
)

// BankReconciliationMatch links one statement line to exactly one internal
// source transaction. At most one active match exists per statement line;
// creating a new match replaces the prior one.
type BankReconciliationMatch struct {
	ID               string
	ReconciliationID string
	StatementLineID  string
	SourceType       SourceType
	SourceID         string
	Amount           decimal.Decimal
	AutoMatched      bool

	// ConfidenceScore is nil for manual matches, otherwise in [0,1].
	ConfidenceScore *float64

	MatchedBy string
	MatchedAt *time.Time
}

// ConfidenceBand buckets the confidence score against the configured
// thresholds. Manual matches (nil score) get their own band.
func (m BankReconciliationMatch) ConfidenceBand(cfg MatchingConfig) string {
	if m.ConfidenceScore == nil {
		return ConfidenceBandManual
	}

	switch {
	case *m.ConfidenceScore >= cfg.HighConfidenceThreshold:
		return ConfidenceBandHigh
	case *m.ConfidenceScore >= cfg.MediumConfidenceThreshold:
		return ConfidenceBandMedium
	default:
		return ConfidenceBandLow
	}
}

// CreateMatchIn is the persistence payload for one match row.
type CreateMatchIn struct {
	ID               string
	ReconciliationID string
	StatementLineID  string
	SourceType       SourceType
	SourceID         string
	Amount           decimal.Decimal
	AutoMatched      bool
	ConfidenceScore  *float64
	MatchedBy        string
}

// CreateManualMatchRequest is the caller-facing input of manual matching.
type CreateManualMatchRequest struct {
	StatementLineID string          `json:"statementLineId" validate:"required"`
	SourceType      string          `json:"sourceType" validate:"required,oneof=payment invoice journal_entry credit_note"`
	SourceID        string          `json:"sourceId" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	UserID          string          `json:"userId" validate:"required"`
}
