package common

import (
	"database/sql"
	"errors"
)

var (
	ErrNoRowsAffected = errors.New("no rows affected")
	ErrValidation     = errors.New("validation failed")
	ErrDataNotFound   = errors.New("data not found")
	ErrNoRows         = sql.ErrNoRows

	ErrStatementNotFound          = errors.New("bank statement not found")
	ErrStatementAlreadyReconciled = errors.New("bank statement already has a reconciliation")
	ErrReconciliationNotFound     = errors.New("reconciliation not found")
	ErrReconciliationNotEditable  = errors.New("reconciliation can not be edited in its current status")
	ErrReconciliationNotActive    = errors.New("reconciliation is not in an active status")
	ErrReconciliationNotCompleted = errors.New("reconciliation must be completed before it can be locked")
	ErrReconciliationNotLocked    = errors.New("reconciliation must be locked before it can be reopened")
	ErrVarianceNotZero            = errors.New("variance must be zero to complete the reconciliation")
	ErrInvalidAdjustmentType      = errors.New("invalid adjustment type")
	ErrInvalidSourceType          = errors.New("invalid match source type")
	ErrSourceNotFound             = errors.New("match source not found")
	ErrSourceCompanyMismatch      = errors.New("match source does not belong to the same company")
	ErrStatementLineNotFound      = errors.New("bank statement line not found")
	ErrMatchNotFound              = errors.New("reconciliation match not found")
	ErrAdjustmentNotFound         = errors.New("reconciliation adjustment not found")
	ErrJournalEntryNotFound       = errors.New("journal entry not found")
	ErrReopenReasonRequired       = errors.New("reopen reason is required")
)
