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

func TestAdjustmentService_Create(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	feeAccount := models.ChartOfAccount{
		ID:        "acct-fee",
		CompanyID: "company-1",
		Name:      "Bank Fees",
		Type:      models.AccountTypeExpense,
		Subtype:   models.AccountSubtypeBankFee,
	}

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockAccountRepository.EXPECT().
		GetCachedByID(gomock.Any(), "acct-bank").
		Return(models.ChartOfAccount{ID: "acct-bank", CompanyID: "company-1"}, nil)
	testHelper.mockAccountRepository.EXPECT().
		FindByRole(gomock.Any(), "company-1", models.CounterAccountRole(models.AdjustmentTypeBankFee)).
		Return(feeAccount, nil)

	testHelper.mockJournalRepository.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry models.JournalEntry) error {
			assert.Equal(t, models.JournalSourceTypeRecon, entry.SourceType)
			assert.Equal(t, models.JournalEntryStatusPosted, entry.Status)
			return nil
		})

	var legs []models.JournalTransaction
	testHelper.mockJournalRepository.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trx models.JournalTransaction) error {
			legs = append(legs, trx)
			return nil
		}).Times(2)

	testHelper.mockAdjustmentRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adj models.BankReconciliationAdjustment) error {
			// Fees always reduce the bank balance regardless of input sign.
			assert.True(t, adj.Amount.Equal(decimal.NewFromInt(-25)))
			require.NotNil(t, adj.JournalEntryID)
			return nil
		})

	testHelper.expectRecompute(matchTestStatement(), nil, nil, nil)

	result, err := testHelper.adjustmentService.Create(context.Background(), models.CreateAdjustmentRequest{
		ReconciliationID: "recon-1",
		AdjustmentType:   "bank_fee",
		Amount:           decimal.NewFromInt(25),
		Description:      "monthly account fee",
		AdjustmentDate:   "2026-03-31",
		CreatedBy:        "user-7",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AdjustmentTypeBankFee, result.AdjustmentType)

	// Fee entry debits the expense account and credits the bank account,
	// both legs at the absolute amount.
	require.Len(t, legs, 2)
	assert.Equal(t, "acct-fee", legs[0].AccountID)
	assert.True(t, legs[0].Debit.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "acct-bank", legs[1].AccountID)
	assert.True(t, legs[1].Credit.Equal(decimal.NewFromInt(25)))
}

func TestAdjustmentService_Create_CreatesMissingCounterAccount(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockAccountRepository.EXPECT().
		GetCachedByID(gomock.Any(), "acct-bank").
		Return(models.ChartOfAccount{ID: "acct-bank", CompanyID: "company-1"}, nil)
	testHelper.mockAccountRepository.EXPECT().
		FindByRole(gomock.Any(), "company-1", models.CounterAccountRole(models.AdjustmentTypeInterest)).
		Return(models.ChartOfAccount{}, common.ErrDataNotFound)
	testHelper.mockAccountRepository.EXPECT().NextAccountNumber(gomock.Any(), "company-1").Return("5001", nil)
	testHelper.mockAccountRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account models.ChartOfAccount) error {
			assert.Equal(t, "5001", account.AccountNumber)
			assert.Equal(t, "Interest Income", account.Name)
			assert.Equal(t, models.AccountTypeRevenue, account.Type)
			assert.True(t, account.IsActive)
			return nil
		})

	testHelper.mockJournalRepository.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(nil)

	var legs []models.JournalTransaction
	testHelper.mockJournalRepository.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trx models.JournalTransaction) error {
			legs = append(legs, trx)
			return nil
		}).Times(2)

	testHelper.mockAdjustmentRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adj models.BankReconciliationAdjustment) error {
			assert.True(t, adj.Amount.Equal(decimal.NewFromFloat(12.5)))
			return nil
		})

	testHelper.expectRecompute(matchTestStatement(), nil, nil, nil)

	_, err := testHelper.adjustmentService.Create(context.Background(), models.CreateAdjustmentRequest{
		ReconciliationID: "recon-1",
		AdjustmentType:   "interest",
		Amount:           decimal.NewFromFloat(12.5),
		Description:      "interest earned",
		AdjustmentDate:   "2026-03-31",
		CreatedBy:        "user-7",
	})
	require.NoError(t, err)

	// Interest debits the bank account.
	require.Len(t, legs, 2)
	assert.Equal(t, "acct-bank", legs[0].AccountID)
	assert.True(t, legs[0].Debit.Equal(decimal.NewFromFloat(12.5)))
}

func TestAdjustmentService_Create_WithoutJournalEntry(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)

	// No account resolution and no journal writes when posting is off.
	testHelper.mockAdjustmentRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adj models.BankReconciliationAdjustment) error {
			assert.Nil(t, adj.JournalEntryID)
			return nil
		})

	testHelper.expectRecompute(matchTestStatement(), nil, nil, nil)

	postJournal := false
	result, err := testHelper.adjustmentService.Create(context.Background(), models.CreateAdjustmentRequest{
		ReconciliationID: "recon-1",
		AdjustmentType:   "timing",
		Amount:           decimal.NewFromInt(-90),
		Description:      "outstanding check",
		AdjustmentDate:   "2026-03-31",
		PostJournalEntry: &postJournal,
		CreatedBy:        "user-7",
	})
	require.NoError(t, err)
	assert.Nil(t, result.JournalEntryID)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(-90)))
}

func TestAdjustmentService_Create_LinkedStatementLine(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	lineID := "line-1"
	postJournal := false

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)

	testHelper.mockStatementRepository.EXPECT().
		GetLineByID(gomock.Any(), "line-1").
		Return(models.BankStatementLine{ID: "line-1", StatementID: "stmt-1", CompanyID: "company-1"}, nil)

	testHelper.mockAdjustmentRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adj models.BankReconciliationAdjustment) error {
			require.NotNil(t, adj.StatementLineID)
			assert.Equal(t, "line-1", *adj.StatementLineID)
			return nil
		})

	testHelper.expectRecompute(matchTestStatement(), nil, nil, nil)

	result, err := testHelper.adjustmentService.Create(context.Background(), models.CreateAdjustmentRequest{
		ReconciliationID: "recon-1",
		AdjustmentType:   "bank_fee",
		Amount:           decimal.NewFromInt(15),
		Description:      "wire fee on line",
		AdjustmentDate:   "2026-03-31",
		StatementLineID:  &lineID,
		PostJournalEntry: &postJournal,
		CreatedBy:        "user-7",
	})
	require.NoError(t, err)
	require.NotNil(t, result.StatementLineID)
	assert.Equal(t, "line-1", *result.StatementLineID)
}

func TestAdjustmentService_Create_LineFromOtherStatement(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	lineID := "line-9"

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockStatementRepository.EXPECT().
		GetLineByID(gomock.Any(), "line-9").
		Return(models.BankStatementLine{ID: "line-9", StatementID: "stmt-other"}, nil)

	_, err := testHelper.adjustmentService.Create(context.Background(), models.CreateAdjustmentRequest{
		ReconciliationID: "recon-1",
		AdjustmentType:   "bank_fee",
		Amount:           decimal.NewFromInt(15),
		Description:      "wire fee on line",
		AdjustmentDate:   "2026-03-31",
		StatementLineID:  &lineID,
		CreatedBy:        "user-7",
	})
	assert.ErrorIs(t, err, common.ErrStatementLineNotFound)
}

func TestAdjustmentService_Create_InvalidType(t *testing.T) {
	testHelper := serviceTestHelper(t)

	_, err := testHelper.adjustmentService.Create(context.Background(), models.CreateAdjustmentRequest{
		ReconciliationID: "recon-1",
		AdjustmentType:   "rounding",
		Amount:           decimal.NewFromInt(1),
		Description:      "x",
		AdjustmentDate:   "2026-03-31",
		CreatedBy:        "user-7",
	})
	assert.Error(t, err)
}

func TestAdjustmentService_Create_LockedReconciliation(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	recon.Status = models.ReconciliationStatusLocked

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)

	_, err := testHelper.adjustmentService.Create(context.Background(), models.CreateAdjustmentRequest{
		ReconciliationID: "recon-1",
		AdjustmentType:   "bank_fee",
		Amount:           decimal.NewFromInt(25),
		Description:      "monthly account fee",
		AdjustmentDate:   "2026-03-31",
		CreatedBy:        "user-7",
	})
	assert.ErrorIs(t, err, common.ErrReconciliationNotEditable)
}

func TestAdjustmentService_Update(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	journalEntryID := "je-1"
	current := models.BankReconciliationAdjustment{
		ID:               "adj-1",
		ReconciliationID: "recon-1",
		CompanyID:        "company-1",
		AdjustmentType:   models.AdjustmentTypeBankFee,
		Amount:           decimal.NewFromInt(-25),
		Description:      "monthly account fee",
		JournalEntryID:   &journalEntryID,
	}

	testHelper.expectAtomic()
	testHelper.mockAdjustmentRepository.EXPECT().GetByID(gomock.Any(), "adj-1").Return(current, nil)
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)

	testHelper.mockJournalRepository.EXPECT().GetEntryByID(gomock.Any(), "je-1").Return(models.JournalEntry{ID: "je-1"}, nil)
	testHelper.mockJournalRepository.EXPECT().UpdateEntry(gomock.Any(), gomock.Any()).Return(nil)
	testHelper.mockJournalRepository.EXPECT().ListTransactionsByEntry(gomock.Any(), "je-1").Return([]models.JournalTransaction{
		{ID: "jtx-1", JournalEntryID: "je-1", AccountID: "acct-fee", Debit: decimal.NewFromInt(25)},
		{ID: "jtx-2", JournalEntryID: "je-1", AccountID: "acct-bank", Credit: decimal.NewFromInt(25)},
	}, nil)

	var updatedLegs []models.JournalTransaction
	testHelper.mockJournalRepository.EXPECT().
		UpdateTransactionAmounts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trx models.JournalTransaction) error {
			updatedLegs = append(updatedLegs, trx)
			return nil
		}).Times(2)

	testHelper.mockAdjustmentRepository.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, adj models.BankReconciliationAdjustment) error {
			assert.True(t, adj.Amount.Equal(decimal.NewFromInt(-40)))
			return nil
		})

	testHelper.expectRecompute(matchTestStatement(), nil, nil, nil)

	newAmount := decimal.NewFromInt(40)
	result, err := testHelper.adjustmentService.Update(context.Background(), models.UpdateAdjustmentRequest{
		AdjustmentID: "adj-1",
		Amount:       &newAmount,
		UpdatedBy:    "user-7",
	})
	require.NoError(t, err)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(-40)))

	// Both legs move to the new absolute amount, sides unchanged.
	require.Len(t, updatedLegs, 2)
	assert.True(t, updatedLegs[0].Debit.Equal(decimal.NewFromInt(40)))
	assert.True(t, updatedLegs[1].Credit.Equal(decimal.NewFromInt(40)))
}

func TestAdjustmentService_Delete(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	journalEntryID := "je-1"
	current := models.BankReconciliationAdjustment{
		ID:               "adj-1",
		ReconciliationID: "recon-1",
		AdjustmentType:   models.AdjustmentTypeWriteOff,
		Amount:           decimal.NewFromInt(-75),
		JournalEntryID:   &journalEntryID,
	}

	testHelper.expectAtomic()
	testHelper.mockAdjustmentRepository.EXPECT().GetByID(gomock.Any(), "adj-1").Return(current, nil)
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockAdjustmentRepository.EXPECT().DeleteByID(gomock.Any(), "adj-1").Return(nil)
	testHelper.mockJournalRepository.EXPECT().DeleteEntryWithTransactions(gomock.Any(), "je-1").Return(nil)
	testHelper.expectRecompute(matchTestStatement(), nil, nil, nil)

	err := testHelper.adjustmentService.Delete(context.Background(), "adj-1", "user-7")
	assert.NoError(t, err)
}

func TestAdjustmentService_Delete_NotFound(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.expectAtomic()
	testHelper.mockAdjustmentRepository.EXPECT().
		GetByID(gomock.Any(), "adj-missing").
		Return(models.BankReconciliationAdjustment{}, common.ErrAdjustmentNotFound)

	err := testHelper.adjustmentService.Delete(context.Background(), "adj-missing", "user-7")
	assert.ErrorIs(t, err, common.ErrAdjustmentNotFound)
}
