package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	JournalEntryStatusPosted = "posted"
	JournalSourceTypeRecon   = "bank_reconciliation_adjustment"
)

type JournalEntry struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	JournalDate time.Time `json:"journal_date"`
	Description string    `json:"description"`
	SourceType  string    `json:"source_type"`
	SourceID    string    `json:"source_id"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type JournalTransaction struct {
	ID             string          `json:"id"`
	JournalEntryID string          `json:"journal_entry_id"`
	AccountID      string          `json:"account_id"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	CreatedAt      time.Time       `json:"created_at"`
}

// JournalLeg is one side of a balanced entry before persistence.
type JournalLeg struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// AdjustmentJournalLegs builds the two legs for an adjustment entry. The
// signed amount follows the per-type convention from ApplySign; both legs
// carry the absolute value so the entry always balances.
func AdjustmentJournalLegs(adjType AdjustmentType, signedAmount decimal.Decimal, bankAccountID, counterAccountID string) []JournalLeg {
	abs := signedAmount.Abs()

	switch adjType {
	case AdjustmentTypeInterest, AdjustmentTypeTiming:
		if adjType == AdjustmentTypeTiming && signedAmount.IsNegative() {
			// Negative timing adjustments move money out of the bank account.
			return []JournalLeg{
				{AccountID: counterAccountID, Debit: abs},
				{AccountID: bankAccountID, Credit: abs},
			}
		}
		return []JournalLeg{
			{AccountID: bankAccountID, Debit: abs},
			{AccountID: counterAccountID, Credit: abs},
		}
	default:
		// bank_fee and write_off debit the expense account.
		return []JournalLeg{
			{AccountID: counterAccountID, Debit: abs},
			{AccountID: bankAccountID, Credit: abs},
		}
	}
}
