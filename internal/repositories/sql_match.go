package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
)

type MatchRepository interface {
	Create(ctx context.Context, in models.CreateMatchIn) (err error)
	GetByID(ctx context.Context, id string) (result models.BankReconciliationMatch, err error)
	ListByReconciliation(ctx context.Context, reconciliationID string) (result []models.BankReconciliationMatch, err error)
	DeleteByID(ctx context.Context, id string) (err error)

	// DeleteByStatementLine removes any existing match on the line, keeping
	// the at-most-one-active-match rule when a replacement is created.
	DeleteByStatementLine(ctx context.Context, reconciliationID, statementLineID string) (deleted int64, err error)
}

type matchRepository sqlRepo

var _ MatchRepository = (*matchRepository)(nil)

func (mr *matchRepository) Create(ctx context.Context, in models.CreateMatchIn) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryMatchCreate,
		in.ID,
		in.ReconciliationID,
		in.StatementLineID,
		string(in.SourceType),
		in.SourceID,
		in.Amount,
		in.AutoMatched,
		in.ConfidenceScore,
		in.MatchedBy,
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

func (mr *matchRepository) GetByID(ctx context.Context, id string) (result models.BankReconciliationMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxRead(ctx)

	err = scanMatch(db.QueryRowContext(ctx, queryMatchGetByID, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrMatchNotFound
		}
		return
	}

	return
}

func (mr *matchRepository) ListByReconciliation(ctx context.Context, reconciliationID string) (result []models.BankReconciliationMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryMatchListByReconciliation, reconciliationID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var match models.BankReconciliationMatch
		if err = scanMatch(rows, &match); err != nil {
			return
		}
		result = append(result, match)
	}

	err = rows.Err()
	return
}

func (mr *matchRepository) DeleteByID(ctx context.Context, id string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryMatchDeleteByID, id)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrMatchNotFound
		return
	}

	return
}

func (mr *matchRepository) DeleteByStatementLine(ctx context.Context, reconciliationID, statementLineID string) (deleted int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := mr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryMatchDeleteByStatementLine, reconciliationID, statementLineID)
	if err != nil {
		return
	}

	return res.RowsAffected()
}

func scanMatch(row rowScanner, match *models.BankReconciliationMatch) error {
	var sourceType string
	var confidence sql.NullFloat64

	err := row.Scan(
		&match.ID,
		&match.ReconciliationID,
		&match.StatementLineID,
		&sourceType,
		&match.SourceID,
		&match.Amount,
		&match.AutoMatched,
		&confidence,
		&match.MatchedBy,
		&match.MatchedAt,
	)
	if err != nil {
		return err
	}

	match.SourceType = models.SourceType(sourceType)
	if confidence.Valid {
		match.ConfidenceScore = &confidence.Float64
	}

	return nil
}
