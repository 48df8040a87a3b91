package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
)

type AdjustmentType string

const (
	AdjustmentTypeBankFee  AdjustmentType = "bank_fee"
	AdjustmentTypeInterest AdjustmentType = "interest"
	AdjustmentTypeWriteOff AdjustmentType = "write_off"
	AdjustmentTypeTiming   AdjustmentType = "timing"
)

var AllAdjustmentTypes = []AdjustmentType{
	AdjustmentTypeBankFee,
	AdjustmentTypeInterest,
	AdjustmentTypeWriteOff,
	AdjustmentTypeTiming,
}

func ParseAdjustmentType(s string) (AdjustmentType, error) {
	for _, t := range AllAdjustmentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: adjustment type %q", common.ErrInvalidAdjustmentType, s)
}

// ApplySign normalizes the stored amount per adjustment type. Fees and
// write offs always reduce the bank balance, interest always increases it,
// and timing adjustments keep whatever sign the caller supplied.
func (t AdjustmentType) ApplySign(amount decimal.Decimal) decimal.Decimal {
	switch t {
	case AdjustmentTypeBankFee, AdjustmentTypeWriteOff:
		return amount.Abs().Neg()
	case AdjustmentTypeInterest:
		return amount.Abs()
	default:
		return amount
	}
}

type BankReconciliationAdjustment struct {
	ID               string          `json:"id"`
	ReconciliationID string          `json:"reconciliation_id"`
	CompanyID        string          `json:"company_id"`
	AdjustmentType   AdjustmentType  `json:"adjustment_type"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	AdjustmentDate   time.Time       `json:"adjustment_date"`
	StatementLineID  *string         `json:"statement_line_id,omitempty"`
	JournalEntryID   *string         `json:"journal_entry_id,omitempty"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type CreateAdjustmentRequest struct {
	ReconciliationID string          `json:"reconciliation_id" validate:"required"`
	AdjustmentType   string          `json:"adjustment_type" validate:"required,oneof=bank_fee interest write_off timing"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	Description      string          `json:"description" validate:"required"`
	AdjustmentDate   string          `json:"adjustment_date" validate:"required,datetime=2006-01-02"`
	StatementLineID  *string         `json:"statement_line_id,omitempty"`
	PostJournalEntry *bool           `json:"post_journal_entry,omitempty"`
	CreatedBy        string          `json:"created_by" validate:"required"`
}

type UpdateAdjustmentRequest struct {
	AdjustmentID   string           `json:"adjustment_id" validate:"required"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Description    *string          `json:"description,omitempty"`
	AdjustmentDate *string          `json:"adjustment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	UpdatedBy      string           `json:"updated_by" validate:"required"`
}
