package services_test

import (
	"context"
	"testing"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconciliationService_CreateForStatement(t *testing.T) {
	testHelper := serviceTestHelper(t)

	statement := matchTestStatement()

	testHelper.expectAtomic()
	testHelper.mockStatementRepository.EXPECT().GetByID(gomock.Any(), "stmt-1").Return(statement, nil)
	testHelper.mockReconRepository.EXPECT().
		GetByStatementID(gomock.Any(), "stmt-1").
		Return(models.BankReconciliation{}, common.ErrReconciliationNotFound)
	testHelper.mockReconRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, recon models.BankReconciliation) error {
			assert.Equal(t, models.ReconciliationStatusDraft, recon.Status)
			assert.Equal(t, "company-1", recon.CompanyID)
			assert.Equal(t, "acct-bank", recon.LedgerAccountID)
			return nil
		})

	testHelper.mockStatementRepository.EXPECT().GetByID(gomock.Any(), "stmt-1").Return(statement, nil)
	testHelper.mockStatementRepository.EXPECT().ListLines(gomock.Any(), "stmt-1").Return(nil, nil)
	testHelper.mockMatchRepository.EXPECT().ListByReconciliation(gomock.Any(), gomock.Any()).Return(nil, nil)
	testHelper.mockAdjustmentRepository.EXPECT().ListByReconciliation(gomock.Any(), gomock.Any()).Return(nil, nil)
	testHelper.mockReconRepository.EXPECT().UpdateVariance(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := testHelper.reconciliationService.CreateForStatement(context.Background(), "stmt-1", "user-7")
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusDraft, result.Status)
	assert.Equal(t, "stmt-1", result.StatementID)
}

func TestReconciliationService_CreateForStatement_AlreadyReconciled(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.expectAtomic()
	testHelper.mockStatementRepository.EXPECT().GetByID(gomock.Any(), "stmt-1").Return(matchTestStatement(), nil)
	testHelper.mockReconRepository.EXPECT().
		GetByStatementID(gomock.Any(), "stmt-1").
		Return(models.BankReconciliation{ID: "recon-existing"}, nil)

	_, err := testHelper.reconciliationService.CreateForStatement(context.Background(), "stmt-1", "user-7")
	assert.ErrorIs(t, err, common.ErrStatementAlreadyReconciled)
}

func TestReconciliationService_StartProgress(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	recon.Status = models.ReconciliationStatusDraft

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockReconRepository.EXPECT().
		UpdateState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated models.BankReconciliation) error {
			assert.Equal(t, models.ReconciliationStatusInProgress, updated.Status)
			assert.Equal(t, "user-7", updated.StartedBy)
			return nil
		})

	result, err := testHelper.reconciliationService.StartProgress(context.Background(), "recon-1", "user-7")
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusInProgress, result.Status)
}

func TestReconciliationService_Complete(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	statement := matchTestStatement()

	// One line covering the whole 250 period movement, fully matched.
	line := models.BankStatementLine{
		ID:          "line-1",
		StatementID: "stmt-1",
		Amount:      decimal.NewFromInt(250),
	}
	match := models.BankReconciliationMatch{
		ID:              "match-1",
		StatementLineID: "line-1",
		Amount:          decimal.NewFromInt(250),
	}

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.expectRecompute(statement, []models.BankStatementLine{line}, []models.BankReconciliationMatch{match}, nil)
	testHelper.mockReconRepository.EXPECT().
		UpdateState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated models.BankReconciliation) error {
			assert.Equal(t, models.ReconciliationStatusCompleted, updated.Status)
			assert.Equal(t, "user-7", updated.CompletedBy)
			assert.NotNil(t, updated.CompletedAt)
			return nil
		})
	testHelper.mockStatementRepository.EXPECT().
		UpdateStatus(gomock.Any(), "stmt-1", models.StatementStatusReconciled).
		Return(nil)

	result, err := testHelper.reconciliationService.Complete(context.Background(), "recon-1", "user-7")
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusCompleted, result.Status)
}

func TestReconciliationService_Complete_NonZeroVariance(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	statement := matchTestStatement()

	// The only line is unmatched, so the variance cannot be zero.
	line := models.BankStatementLine{
		ID:          "line-1",
		StatementID: "stmt-1",
		Amount:      decimal.NewFromInt(250),
	}

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.expectRecompute(statement, []models.BankStatementLine{line}, nil, nil)

	_, err := testHelper.reconciliationService.Complete(context.Background(), "recon-1", "user-7")
	assert.ErrorIs(t, err, common.ErrVarianceNotZero)
}

func TestReconciliationService_Complete_FromDraft(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	recon.Status = models.ReconciliationStatusDraft

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.expectRecompute(matchTestStatement(), nil, nil, nil)

	_, err := testHelper.reconciliationService.Complete(context.Background(), "recon-1", "user-7")
	assert.ErrorIs(t, err, common.ErrReconciliationNotActive)
}

func TestReconciliationService_Lock(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	recon.Status = models.ReconciliationStatusCompleted

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockReconRepository.EXPECT().
		UpdateState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated models.BankReconciliation) error {
			assert.Equal(t, models.ReconciliationStatusLocked, updated.Status)
			assert.NotNil(t, updated.LockedAt)
			return nil
		})

	result, err := testHelper.reconciliationService.Lock(context.Background(), "recon-1")
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusLocked, result.Status)
}

func TestReconciliationService_Lock_NotCompleted(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)

	_, err := testHelper.reconciliationService.Lock(context.Background(), "recon-1")
	assert.ErrorIs(t, err, common.ErrReconciliationNotCompleted)
}

func TestReconciliationService_Reopen(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	recon.Status = models.ReconciliationStatusLocked

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockReconRepository.EXPECT().
		UpdateState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated models.BankReconciliation) error {
			assert.Equal(t, models.ReconciliationStatusReopened, updated.Status)
			return nil
		})

	result, err := testHelper.reconciliationService.Reopen(context.Background(), "recon-1", "missed bank fee")
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationStatusReopened, result.Status)
}

func TestReconciliationService_Reopen_WithoutReason(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	recon.Status = models.ReconciliationStatusLocked

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)

	_, err := testHelper.reconciliationService.Reopen(context.Background(), "recon-1", "")
	assert.ErrorIs(t, err, common.ErrReopenReasonRequired)
}
