package models

import (
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"

	"github.com/shopspring/decimal"
)

const (
	ReconciliationStatusDraft      = "draft"
	ReconciliationStatusInProgress = "in_progress"
	ReconciliationStatusCompleted  = "completed"
	ReconciliationStatusLocked     = "locked"
	ReconciliationStatusReopened   = "reopened"
)

// BankReconciliation is one reconciliation workflow instance for one
// statement/ledger-account pair. Status moves draft > in_progress > completed
// > locked, with locked > reopened; reopened behaves like in_progress for
// edit purposes. The three unmatched/variance fields are caches, recomputed
// after every match or adjustment mutation.
type BankReconciliation struct {
	ID              string
	CompanyID       string
	StatementID     string
	LedgerAccountID string
	Status          string

	UnmatchedStatementTotal decimal.Decimal
	UnmatchedInternalTotal  decimal.Decimal
	Variance                decimal.Decimal

	Notes string

	StartedBy   string
	StartedAt   *time.Time
	CompletedBy string
	CompletedAt *time.Time
	LockedAt    *time.Time

	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (r *BankReconciliation) IsActive() bool {
	switch r.Status {
	case ReconciliationStatusDraft, ReconciliationStatusInProgress, ReconciliationStatusReopened:
		return true
	default:
		return false
	}
}

func (r *BankReconciliation) IsCompleted() bool {
	return r.Status == ReconciliationStatusCompleted
}

func (r *BankReconciliation) IsLocked() bool {
	return r.Status == ReconciliationStatusLocked
}

// CanBeEdited reports whether matches and adjustments may still be mutated.
func (r *BankReconciliation) CanBeEdited() bool {
	return r.IsActive()
}

// StartProgress moves a draft reconciliation into in_progress and records the
// acting user. Starting is unconditional from draft.
func (r *BankReconciliation) StartProgress(userID string) error {
	if r.Status != ReconciliationStatusDraft {
		return fmt.Errorf("%w: status is %s, expected %s",
			common.ErrReconciliationNotActive, r.Status, ReconciliationStatusDraft)
	}

	now := common.Now()
	r.Status = ReconciliationStatusInProgress
	r.StartedBy = userID
	r.StartedAt = &now

	return nil
}

// Complete transitions an active reconciliation to completed. The cached
// variance must be exactly zero; the guard is strict, callers wanting the
// one-cent band must consult VarianceResult.IsBalanced before invoking.
func (r *BankReconciliation) Complete(userID string) error {
	if r.Status != ReconciliationStatusInProgress && r.Status != ReconciliationStatusReopened {
		return fmt.Errorf("%w: status is %s", common.ErrReconciliationNotActive, r.Status)
	}

	if !r.Variance.IsZero() {
		return fmt.Errorf("%w: current variance is %s", common.ErrVarianceNotZero, r.Variance.String())
	}

	now := common.Now()
	r.Status = ReconciliationStatusCompleted
	r.CompletedBy = userID
	r.CompletedAt = &now

	return nil
}

// Lock makes a completed reconciliation immutable. LockedAt is retained as a
// historical record even across reopens.
func (r *BankReconciliation) Lock() error {
	if !r.IsCompleted() {
		return fmt.Errorf("%w: status is %s", common.ErrReconciliationNotCompleted, r.Status)
	}

	now := common.Now()
	r.Status = ReconciliationStatusLocked
	r.LockedAt = &now

	return nil
}

// Reopen moves a locked reconciliation back to an editable state, appending
// the reason to the notes with a timestamp marker. LockedAt is not cleared.
func (r *BankReconciliation) Reopen(reason string) error {
	if !r.IsLocked() {
		return fmt.Errorf("%w: status is %s", common.ErrReconciliationNotLocked, r.Status)
	}

	if reason == "" {
		return common.ErrReopenReasonRequired
	}

	marker := fmt.Sprintf("[reopened %s] %s", common.Now().Format(common.DateFormatYYYYMMDDWithTime), reason)
	if r.Notes == "" {
		r.Notes = marker
	} else {
		r.Notes = r.Notes + "\n" + marker
	}

	r.Status = ReconciliationStatusReopened

	return nil
}
