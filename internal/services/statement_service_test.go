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

func TestStatementService_IngestLines(t *testing.T) {
	testHelper := serviceTestHelper(t)

	statement := matchTestStatement()
	statement.Status = models.StatementStatusPending

	in := []models.CreateStatementLineIn{
		{
			TransactionDate: matchTestDate,
			Description:     "pos purchase grocery",
			Amount:          decimal.NewFromInt(-45),
		},
		{
			// Identical content: flagged as duplicate of the first row.
			TransactionDate: matchTestDate,
			Description:     "pos purchase grocery",
			Amount:          decimal.NewFromInt(-45),
		},
	}

	testHelper.expectAtomic()
	testHelper.mockStatementRepository.EXPECT().GetByID(gomock.Any(), "stmt-1").Return(statement, nil)

	var createdLines []models.BankStatementLine
	testHelper.mockStatementRepository.EXPECT().
		FindLineIDByHash(gomock.Any(), "stmt-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, lineHash string) (string, error) {
			for _, created := range createdLines {
				if created.LineHash == lineHash {
					return created.ID, nil
				}
			}
			return "", nil
		}).Times(2)
	testHelper.mockStatementRepository.EXPECT().
		CreateLine(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, line models.BankStatementLine) error {
			createdLines = append(createdLines, line)
			return nil
		}).Times(2)
	testHelper.mockStatementRepository.EXPECT().
		UpdateStatus(gomock.Any(), "stmt-1", models.StatementStatusProcessed).
		Return(nil)

	result, duplicates, err := testHelper.statementService.IngestLines(context.Background(), "stmt-1", in)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, duplicates)

	assert.Empty(t, result[0].DuplicateOfID)
	assert.Equal(t, result[0].ID, result[1].DuplicateOfID)
	assert.Equal(t, result[0].LineHash, result[1].LineHash)
}

func TestStatementService_IngestLines_StatementReconciled(t *testing.T) {
	testHelper := serviceTestHelper(t)

	statement := matchTestStatement()
	statement.Status = models.StatementStatusReconciled

	testHelper.expectAtomic()
	testHelper.mockStatementRepository.EXPECT().GetByID(gomock.Any(), "stmt-1").Return(statement, nil)

	_, _, err := testHelper.statementService.IngestLines(context.Background(), "stmt-1", []models.CreateStatementLineIn{
		{
			TransactionDate: matchTestDate,
			Description:     "pos purchase grocery",
			Amount:          decimal.NewFromInt(-45),
		},
	})
	assert.ErrorIs(t, err, common.ErrStatementAlreadyReconciled)
}

func TestStatementService_IngestLines_InvalidRow(t *testing.T) {
	testHelper := serviceTestHelper(t)

	_, _, err := testHelper.statementService.IngestLines(context.Background(), "stmt-1", []models.CreateStatementLineIn{
		{Amount: decimal.NewFromInt(-45)},
	})
	assert.Error(t, err)
}

func TestStatementService_GetStatement(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockStatementRepository.EXPECT().
		GetByID(gomock.Any(), "stmt-missing").
		Return(models.BankStatement{}, common.ErrStatementNotFound)

	_, err := testHelper.statementService.GetStatement(context.Background(), "stmt-missing")
	assert.ErrorIs(t, err, common.ErrStatementNotFound)
}
