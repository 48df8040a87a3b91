package services_test

import (
	"context"
	"testing"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSummaryService_RecalculateVariance(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	statement := matchTestStatement()
	line := models.BankStatementLine{
		ID:          "line-1",
		StatementID: "stmt-1",
		Amount:      decimal.NewFromInt(250),
	}

	testHelper.expectAtomic()
	testHelper.mockReconRepository.EXPECT().AcquireRowLock(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.expectRecompute(statement, []models.BankStatementLine{line}, nil, nil)
	testHelper.mockReconRepository.EXPECT().GetByID(gomock.Any(), "recon-1").Return(recon, nil)

	result, err := testHelper.summaryService.RecalculateVariance(context.Background(), "recon-1")
	require.NoError(t, err)
	assert.True(t, result.UnmatchedStatementTotal.Equal(decimal.NewFromInt(250)))
	assert.False(t, result.IsBalanced)
}

func TestSummaryService_GetSummaryStats(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	statement := matchTestStatement()
	lines := []models.BankStatementLine{
		{ID: "line-1", StatementID: "stmt-1", Amount: decimal.NewFromInt(250)},
		{ID: "line-2", StatementID: "stmt-1", Amount: decimal.NewFromInt(100)},
	}
	score := 0.92
	matches := []models.BankReconciliationMatch{
		{ID: "match-1", StatementLineID: "line-1", SourceType: models.SourceTypePayment, Amount: decimal.NewFromInt(250), AutoMatched: true, ConfidenceScore: &score},
	}

	testHelper.mockReconRepository.EXPECT().GetByID(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockStatementRepository.EXPECT().GetByID(gomock.Any(), "stmt-1").Return(statement, nil)
	testHelper.mockStatementRepository.EXPECT().ListLines(gomock.Any(), "stmt-1").Return(lines, nil)
	testHelper.mockMatchRepository.EXPECT().ListByReconciliation(gomock.Any(), "recon-1").Return(matches, nil)
	testHelper.mockAdjustmentRepository.EXPECT().ListByReconciliation(gomock.Any(), "recon-1").Return(nil, nil)

	result, err := testHelper.summaryService.GetSummaryStats(context.Background(), "recon-1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalLines)
	assert.Equal(t, 1, result.MatchedLines)
	assert.Equal(t, 1, result.AutoMatched)
	assert.Equal(t, 0, result.ManualMatched)
	assert.Equal(t, 1, result.MatchesByConfidence[models.ConfidenceBandHigh])
	assert.False(t, result.ReadyForCompletion)
}

func TestSummaryService_GetBreakdown(t *testing.T) {
	testHelper := serviceTestHelper(t)

	recon := activeReconciliation()
	statement := matchTestStatement()
	lines := []models.BankStatementLine{
		{ID: "line-1", StatementID: "stmt-1", Amount: decimal.NewFromInt(250)},
		{ID: "line-2", StatementID: "stmt-1", Amount: decimal.NewFromInt(100)},
	}
	matches := []models.BankReconciliationMatch{
		{ID: "match-1", StatementLineID: "line-1", SourceType: models.SourceTypePayment, Amount: decimal.NewFromInt(250)},
	}

	testHelper.mockReconRepository.EXPECT().GetByID(gomock.Any(), "recon-1").Return(recon, nil)
	testHelper.mockStatementRepository.EXPECT().GetByID(gomock.Any(), "stmt-1").Return(statement, nil)
	testHelper.mockStatementRepository.EXPECT().ListLines(gomock.Any(), "stmt-1").Return(lines, nil)
	testHelper.mockMatchRepository.EXPECT().ListByReconciliation(gomock.Any(), "recon-1").Return(matches, nil)
	testHelper.mockAdjustmentRepository.EXPECT().ListByReconciliation(gomock.Any(), "recon-1").Return(nil, nil)

	result, err := testHelper.summaryService.GetBreakdown(context.Background(), "recon-1")
	require.NoError(t, err)

	var payments *models.BreakdownBucket
	for i := range result.BySourceType {
		if result.BySourceType[i].Label == string(models.SourceTypePayment) {
			payments = &result.BySourceType[i]
		}
	}
	require.NotNil(t, payments)
	assert.Equal(t, 1, payments.Count)
	assert.True(t, payments.Amount.Equal(decimal.NewFromInt(250)))

	assert.Equal(t, 1, result.Unmatched.Count)
	assert.True(t, result.Unmatched.Amount.Equal(decimal.NewFromInt(100)))
}
