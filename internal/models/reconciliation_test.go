package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
)

func TestBankReconciliation_StartProgress(t *testing.T) {
	tests := []struct {
		name       string
		fromStatus string
		wantErr    error
	}{
		{name: "from draft", fromStatus: ReconciliationStatusDraft},
		{name: "already in progress", fromStatus: ReconciliationStatusInProgress, wantErr: common.ErrReconciliationNotActive},
		{name: "completed", fromStatus: ReconciliationStatusCompleted, wantErr: common.ErrReconciliationNotActive},
		{name: "locked", fromStatus: ReconciliationStatusLocked, wantErr: common.ErrReconciliationNotActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recon := &BankReconciliation{Status: tt.fromStatus}

			err := recon.StartProgress("user-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.fromStatus, recon.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ReconciliationStatusInProgress, recon.Status)
			assert.Equal(t, "user-1", recon.StartedBy)
			assert.NotNil(t, recon.StartedAt)
		})
	}
}

func TestBankReconciliation_Complete(t *testing.T) {
	tests := []struct {
		name       string
		fromStatus string
		variance   decimal.Decimal
		wantErr    error
	}{
		{name: "in progress with zero variance", fromStatus: ReconciliationStatusInProgress, variance: decimal.Zero},
		{name: "reopened with zero variance", fromStatus: ReconciliationStatusReopened, variance: decimal.Zero},
		{name: "nonzero variance", fromStatus: ReconciliationStatusInProgress, variance: decimal.RequireFromString("0.01"), wantErr: common.ErrVarianceNotZero},
		{name: "negative variance", fromStatus: ReconciliationStatusInProgress, variance: decimal.RequireFromString("-150.25"), wantErr: common.ErrVarianceNotZero},
		{name: "draft cannot complete", fromStatus: ReconciliationStatusDraft, variance: decimal.Zero, wantErr: common.ErrReconciliationNotActive},
		{name: "locked cannot complete", fromStatus: ReconciliationStatusLocked, variance: decimal.Zero, wantErr: common.ErrReconciliationNotActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recon := &BankReconciliation{Status: tt.fromStatus, Variance: tt.variance}

			err := recon.Complete("user-7")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.fromStatus, recon.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ReconciliationStatusCompleted, recon.Status)
			assert.Equal(t, "user-7", recon.CompletedBy)
			assert.NotNil(t, recon.CompletedAt)
		})
	}
}

func TestBankReconciliation_Lock(t *testing.T) {
	recon := &BankReconciliation{Status: ReconciliationStatusInProgress}
	assert.ErrorIs(t, recon.Lock(), common.ErrReconciliationNotCompleted)

	recon.Status = ReconciliationStatusCompleted
	require.NoError(t, recon.Lock())
	assert.Equal(t, ReconciliationStatusLocked, recon.Status)
	assert.NotNil(t, recon.LockedAt)
	assert.False(t, recon.CanBeEdited())
}

func TestBankReconciliation_Reopen(t *testing.T) {
	t.Run("requires locked status", func(t *testing.T) {
		recon := &BankReconciliation{Status: ReconciliationStatusCompleted}
		assert.ErrorIs(t, recon.Reopen("wrong bank feed"), common.ErrReconciliationNotLocked)
	})

	t.Run("requires a reason", func(t *testing.T) {
		recon := &BankReconciliation{Status: ReconciliationStatusLocked}
		assert.ErrorIs(t, recon.Reopen(""), common.ErrReopenReasonRequired)
	})

	t.Run("appends reason to notes and keeps locked timestamp", func(t *testing.T) {
		lockedAt := common.Now()
		recon := &BankReconciliation{
			Status:   ReconciliationStatusLocked,
			Notes:    "initial note",
			LockedAt: &lockedAt,
		}

		require.NoError(t, recon.Reopen("duplicate statement import"))
		assert.Equal(t, ReconciliationStatusReopened, recon.Status)
		assert.True(t, recon.CanBeEdited())
		assert.NotNil(t, recon.LockedAt)
		assert.True(t, strings.HasPrefix(recon.Notes, "initial note\n[reopened "))
		assert.Contains(t, recon.Notes, "duplicate statement import")
	})

	t.Run("full lifecycle including reopen and recomplete", func(t *testing.T) {
		recon := &BankReconciliation{Status: ReconciliationStatusDraft}

		require.NoError(t, recon.StartProgress("user-1"))
		require.NoError(t, recon.Complete("user-1"))
		require.NoError(t, recon.Lock())
		require.NoError(t, recon.Reopen("late fee arrived"))
		require.NoError(t, recon.Complete("user-2"))

		assert.Equal(t, ReconciliationStatusCompleted, recon.Status)
		assert.Equal(t, "user-2", recon.CompletedBy)
	})
}
