package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/config"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestReconciliationRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(reconciliationRepoTestSuite))
}

type reconciliationRepoTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    ReconciliationRepository
}

func (suite *reconciliationRepoTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetReconciliationRepository()
}

func (suite *reconciliationRepoTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func reconciliationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "company_id", "statement_id", "ledger_account_id", "status",
		"unmatched_statement_total", "unmatched_internal_total", "variance",
		"notes", "started_by", "started_at", "completed_by", "completed_at",
		"locked_at", "created_at", "updated_at",
	})
}

func (suite *reconciliationRepoTestSuite) TestRepository_Create() {
	testCases := []struct {
		name    string
		in      models.BankReconciliation
		wantErr bool
		doMock  func(in models.BankReconciliation)
	}{
		{
			name: "happy path",
			in: models.BankReconciliation{
				ID:          "recon-1",
				CompanyID:   "co-1",
				StatementID: "stmt-1",
				Status:      models.ReconciliationStatusDraft,
			},
			doMock: func(in models.BankReconciliation) {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryReconciliationCreate)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantErr: false,
		},
		{
			name: "no rows affected",
			in:   models.BankReconciliation{ID: "recon-1"},
			doMock: func(in models.BankReconciliation) {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryReconciliationCreate)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
		},
		{
			name: "error db",
			in:   models.BankReconciliation{ID: "recon-1"},
			doMock: func(in models.BankReconciliation) {
				suite.mock.
					ExpectExec(regexp.QuoteMeta(queryReconciliationCreate)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.doMock(tc.in)

			err := suite.repo.Create(context.Background(), tc.in)
			if tc.wantErr {
				assert.Error(suite.t, err)
				return
			}
			assert.NoError(suite.t, err)
		})
	}
}

func (suite *reconciliationRepoTestSuite) TestRepository_GetByID() {
	now := time.Now()

	testCases := []struct {
		name    string
		id      string
		wantErr error
		doMock  func(id string)
	}{
		{
			name: "happy path",
			id:   "recon-1",
			doMock: func(id string) {
				rows := reconciliationRows().AddRow(
					id, "co-1", "stmt-1", "acct-1", models.ReconciliationStatusInProgress,
					"100.00", "50.00", "50.00",
					"", "user-1", now, "", nil,
					nil, now, now,
				)
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryReconciliationGetByID)).
					WithArgs(id).
					WillReturnRows(rows)
			},
		},
		{
			name:    "not found",
			id:      "recon-missing",
			wantErr: common.ErrReconciliationNotFound,
			doMock: func(id string) {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryReconciliationGetByID)).
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
		},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.doMock(tc.id)

			got, err := suite.repo.GetByID(context.Background(), tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(suite.t, err, tc.wantErr)
				return
			}

			require.NoError(suite.t, err)
			assert.Equal(suite.t, tc.id, got.ID)
			assert.Equal(suite.t, models.ReconciliationStatusInProgress, got.Status)
			assert.True(suite.t, got.Variance.Equal(decimal.NewFromInt(50)))
			assert.NotNil(suite.t, got.StartedAt)
			assert.Nil(suite.t, got.CompletedAt)
		})
	}
}

func (suite *reconciliationRepoTestSuite) TestRepository_AcquireRowLock() {
	now := time.Now()

	rows := reconciliationRows().AddRow(
		"recon-1", "co-1", "stmt-1", "acct-1", models.ReconciliationStatusInProgress,
		"0", "0", "0",
		"", "", nil, "", nil,
		nil, now, now,
	)
	suite.mock.
		ExpectQuery(regexp.QuoteMeta(queryReconciliationAcquireRowLock)).
		WithArgs("recon-1").
		WillReturnRows(rows)

	got, err := suite.repo.AcquireRowLock(context.Background(), "recon-1")
	require.NoError(suite.t, err)
	assert.Equal(suite.t, "recon-1", got.ID)
}

func (suite *reconciliationRepoTestSuite) TestRepository_UpdateState() {
	now := time.Now()
	recon := models.BankReconciliation{
		ID:        "recon-1",
		Status:    models.ReconciliationStatusCompleted,
		StartedBy: "user-1",
		StartedAt: &now,
	}

	suite.Run("happy path", func() {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryReconciliationUpdateState)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(suite.t, suite.repo.UpdateState(context.Background(), recon))
	})

	suite.Run("missing row", func() {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryReconciliationUpdateState)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(suite.t, suite.repo.UpdateState(context.Background(), recon), common.ErrReconciliationNotFound)
	})
}

func (suite *reconciliationRepoTestSuite) TestRepository_UpdateVariance() {
	result := models.VarianceResult{
		UnmatchedStatementTotal: decimal.NewFromInt(100),
		UnmatchedInternalTotal:  decimal.NewFromInt(40),
		Variance:                decimal.NewFromInt(60),
	}

	suite.mock.
		ExpectExec(regexp.QuoteMeta(queryReconciliationUpdateVariance)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(suite.t, suite.repo.UpdateVariance(context.Background(), "recon-1", result))
}
