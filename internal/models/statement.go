package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"

	"github.com/shopspring/decimal"
)

const (
	StatementStatusPending    = "pending"
	StatementStatusProcessed  = "processed"
	StatementStatusReconciled = "reconciled"
)

// BankStatement is one imported bank statement for one ledger account.
// Lines are immutable once ingested; the statement moves to processed after
// line ingestion and to reconciled once its reconciliation completes.
type BankStatement struct {
	ID              string
	CompanyID       string
	LedgerAccountID string
	Currency        string
	OpeningBalance  decimal.Decimal
	ClosingBalance  decimal.Decimal
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Status          string
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

// PeriodAmount is the net movement the bank reports for the statement period.
func (bs BankStatement) PeriodAmount() decimal.Decimal {
	return bs.ClosingBalance.Sub(bs.OpeningBalance)
}

// BankStatementLine is one transaction row from the bank. Immutable once
// created except for its derived match relationship.
type BankStatementLine struct {
	ID              string
	StatementID     string
	CompanyID       string
	TransactionDate time.Time
	Description     string
	ReferenceNumber string
	Amount          decimal.Decimal
	BalanceAfter    *decimal.Decimal
	ExternalID      string
	LineHash        string

	// DuplicateOfID is set when another line of the same statement carries the
	// same hash. Duplicates are flagged, never rejected.
	DuplicateOfID string

	CreatedAt *time.Time
}

// CreateStatementLineIn is the ingestion payload for one statement line, as
// produced by the external statement import.
type CreateStatementLineIn struct {
	TransactionDate time.Time        `json:"transactionDate" validate:"required"`
	Description     string           `json:"description" validate:"required"`
	ReferenceNumber string           `json:"referenceNumber"`
	Amount          decimal.Decimal  `json:"amount"`
	BalanceAfter    *decimal.Decimal `json:"balanceAfter"`
	ExternalID      string           `json:"externalId"`
}

// ComputeLineHash derives the advisory dedup hash of a statement line from its
// date, description, amount and reference. The hash is deterministic: the same
// four inputs always produce the same value.
func ComputeLineHash(transactionDate time.Time, description string, amount decimal.Decimal, reference string) string {
	payload := fmt.Sprintf("%s|%s|%s|%s",
		transactionDate.Format(common.DateFormatYYYYMMDD),
		strings.ToLower(strings.TrimSpace(description)),
		amount.String(),
		strings.ToLower(strings.TrimSpace(reference)),
	)

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
