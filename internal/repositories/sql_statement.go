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

type StatementRepository interface {
	GetByID(ctx context.Context, id string) (result models.BankStatement, err error)
	UpdateStatus(ctx context.Context, id, status string) (err error)
	CreateLine(ctx context.Context, line models.BankStatementLine) (err error)
	GetLineByID(ctx context.Context, id string) (result models.BankStatementLine, err error)
	ListLines(ctx context.Context, statementID string) (result []models.BankStatementLine, err error)
	FindLineIDByHash(ctx context.Context, statementID, lineHash string) (id string, err error)

	// ListUnmatchedLines returns non-duplicate lines of the statement that
	// have no active match in the given reconciliation, oldest first.
	ListUnmatchedLines(ctx context.Context, statementID, reconciliationID string) (result []models.BankStatementLine, err error)
}

type statementRepository sqlRepo

var _ StatementRepository = (*statementRepository)(nil)

func (str *statementRepository) GetByID(ctx context.Context, id string) (result models.BankStatement, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := str.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryStatementGetByID, id).Scan(
		&result.ID,
		&result.CompanyID,
		&result.LedgerAccountID,
		&result.Currency,
		&result.OpeningBalance,
		&result.ClosingBalance,
		&result.PeriodStart,
		&result.PeriodEnd,
		&result.Status,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrStatementNotFound
		}
		return
	}

	return
}

func (str *statementRepository) UpdateStatus(ctx context.Context, id, status string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := str.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryStatementUpdateStatus, id, status)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrStatementNotFound
		return
	}

	return
}

func (str *statementRepository) CreateLine(ctx context.Context, line models.BankStatementLine) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := str.r.extractTxWrite(ctx)

	balanceAfter := decimal.NullDecimal{}
	if line.BalanceAfter != nil {
		balanceAfter = decimal.NullDecimal{Decimal: *line.BalanceAfter, Valid: true}
	}

	res, err := db.ExecContext(ctx, queryStatementLineCreate,
		line.ID,
		line.StatementID,
		line.CompanyID,
		line.TransactionDate,
		line.Description,
		line.ReferenceNumber,
		line.Amount,
		balanceAfter,
		line.ExternalID,
		line.LineHash,
		line.DuplicateOfID,
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

func (str *statementRepository) GetLineByID(ctx context.Context, id string) (result models.BankStatementLine, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := str.r.extractTxRead(ctx)

	err = scanStatementLine(db.QueryRowContext(ctx, queryStatementLineGetByID, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrStatementLineNotFound
		}
		return
	}

	return
}

func (str *statementRepository) ListLines(ctx context.Context, statementID string) (result []models.BankStatementLine, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := str.r.extractTxRead(ctx)

	return str.queryLines(ctx, db, queryStatementLineListByStatement, statementID)
}

func (str *statementRepository) FindLineIDByHash(ctx context.Context, statementID, lineHash string) (id string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := str.r.extractTxWrite(ctx)

	err = db.QueryRowContext(ctx, queryStatementLineFindByHash, statementID, lineHash).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return
	}

	return
}

func (str *statementRepository) ListUnmatchedLines(ctx context.Context, statementID, reconciliationID string) (result []models.BankStatementLine, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := str.r.extractTxWrite(ctx)

	return str.queryLines(ctx, db, queryStatementLineListUnmatched, statementID, reconciliationID)
}

func (str *statementRepository) queryLines(ctx context.Context, db querier, query string, args ...interface{}) (result []models.BankStatementLine, err error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var line models.BankStatementLine
		if err = scanStatementLine(rows, &line); err != nil {
			return
		}
		result = append(result, line)
	}

	err = rows.Err()
	return
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStatementLine(row rowScanner, line *models.BankStatementLine) error {
	var balanceAfter decimal.NullDecimal

	err := row.Scan(
		&line.ID,
		&line.StatementID,
		&line.CompanyID,
		&line.TransactionDate,
		&line.Description,
		&line.ReferenceNumber,
		&line.Amount,
		&balanceAfter,
		&line.ExternalID,
		&line.LineHash,
		&line.DuplicateOfID,
		&line.CreatedAt,
	)
	if err != nil {
		return err
	}

	if balanceAfter.Valid {
		line.BalanceAfter = &balanceAfter.Decimal
	}

	return nil
}
