package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"

	"github.com/shopspring/decimal"
)

type ReconciliationRepository interface {
	Create(ctx context.Context, recon models.BankReconciliation) (err error)
	GetByID(ctx context.Context, id string) (result models.BankReconciliation, err error)
	GetByStatementID(ctx context.Context, statementID string) (result models.BankReconciliation, err error)

	// AcquireRowLock loads the reconciliation with SELECT FOR UPDATE. Only
	// meaningful inside Atomic; the lock is released on commit or rollback.
	AcquireRowLock(ctx context.Context, id string) (result models.BankReconciliation, err error)

	UpdateState(ctx context.Context, recon models.BankReconciliation) (err error)
	UpdateVariance(ctx context.Context, id string, result models.VarianceResult) (err error)
}

type reconciliationRepository sqlRepo

var _ ReconciliationRepository = (*reconciliationRepository)(nil)

func (rr *reconciliationRepository) Create(ctx context.Context, recon models.BankReconciliation) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryReconciliationCreate,
		recon.ID,
		recon.CompanyID,
		recon.StatementID,
		recon.LedgerAccountID,
		recon.Status,
		recon.UnmatchedStatementTotal,
		recon.UnmatchedInternalTotal,
		recon.Variance,
		recon.Notes,
	)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func (rr *reconciliationRepository) GetByID(ctx context.Context, id string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxRead(ctx)

	return rr.scanOne(db.QueryRowContext(ctx, queryReconciliationGetByID, id))
}

func (rr *reconciliationRepository) GetByStatementID(ctx context.Context, statementID string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxRead(ctx)

	return rr.scanOne(db.QueryRowContext(ctx, queryReconciliationGetByStatementID, statementID))
}

func (rr *reconciliationRepository) AcquireRowLock(ctx context.Context, id string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	return rr.scanOne(db.QueryRowContext(ctx, queryReconciliationAcquireRowLock, id))
}

func (rr *reconciliationRepository) UpdateState(ctx context.Context, recon models.BankReconciliation) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryReconciliationUpdateState,
		recon.ID,
		recon.Status,
		recon.Notes,
		recon.StartedBy,
		recon.StartedAt,
		recon.CompletedBy,
		recon.CompletedAt,
		recon.LockedAt,
	)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrReconciliationNotFound
		return
	}

	return
}

func (rr *reconciliationRepository) UpdateVariance(ctx context.Context, id string, result models.VarianceResult) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := rr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryReconciliationUpdateVariance,
		id,
		result.UnmatchedStatementTotal,
		result.UnmatchedInternalTotal,
		result.Variance,
	)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrReconciliationNotFound
		return
	}

	return
}

func (rr *reconciliationRepository) scanOne(row rowScanner) (result models.BankReconciliation, err error) {
	var unmatchedStatement, unmatchedInternal, variance decimal.Decimal

	err = row.Scan(
		&result.ID,
		&result.CompanyID,
		&result.StatementID,
		&result.LedgerAccountID,
		&result.Status,
		&unmatchedStatement,
		&unmatchedInternal,
		&variance,
		&result.Notes,
		&result.StartedBy,
		&result.StartedAt,
		&result.CompletedBy,
		&result.CompletedAt,
		&result.LockedAt,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrReconciliationNotFound
		}
		return
	}

	result.UnmatchedStatementTotal = unmatchedStatement
	result.UnmatchedInternalTotal = unmatchedInternal
	result.Variance = variance

	return
}
