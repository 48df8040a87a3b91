package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
)

type JournalRepository interface {
	CreateEntry(ctx context.Context, entry models.JournalEntry) (err error)
	GetEntryByID(ctx context.Context, id string) (result models.JournalEntry, err error)
	CreateTransaction(ctx context.Context, trx models.JournalTransaction) (err error)
	ListTransactionsByEntry(ctx context.Context, entryID string) (result []models.JournalTransaction, err error)
	UpdateEntry(ctx context.Context, entry models.JournalEntry) (err error)
	UpdateTransactionAmounts(ctx context.Context, trx models.JournalTransaction) (err error)

	// DeleteEntryWithTransactions removes the entry and its legs. Intended to
	// run inside Atomic so a partial delete cannot survive.
	DeleteEntryWithTransactions(ctx context.Context, entryID string) (err error)
}

type journalRepository sqlRepo

var _ JournalRepository = (*journalRepository)(nil)

func (jr *journalRepository) CreateEntry(ctx context.Context, entry models.JournalEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryJournalEntryCreate,
		entry.ID,
		entry.CompanyID,
		entry.JournalDate,
		entry.Description,
		entry.SourceType,
		entry.SourceID,
		entry.Status,
		entry.CreatedBy,
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

func (jr *journalRepository) GetEntryByID(ctx context.Context, id string) (result models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryJournalEntryGetByID, id).Scan(
		&result.ID,
		&result.CompanyID,
		&result.JournalDate,
		&result.Description,
		&result.SourceType,
		&result.SourceID,
		&result.Status,
		&result.CreatedBy,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrJournalEntryNotFound
		}
		return
	}

	return
}

func (jr *journalRepository) CreateTransaction(ctx context.Context, trx models.JournalTransaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryJournalTransactionCreate,
		trx.ID,
		trx.JournalEntryID,
		trx.AccountID,
		trx.Debit,
		trx.Credit,
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

func (jr *journalRepository) ListTransactionsByEntry(ctx context.Context, entryID string) (result []models.JournalTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryJournalTransactionListByEntry, entryID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var trx models.JournalTransaction
		err = rows.Scan(
			&trx.ID,
			&trx.JournalEntryID,
			&trx.AccountID,
			&trx.Debit,
			&trx.Credit,
			&trx.CreatedAt,
		)
		if err != nil {
			return
		}
		result = append(result, trx)
	}

	err = rows.Err()
	return
}

func (jr *journalRepository) UpdateEntry(ctx context.Context, entry models.JournalEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryJournalEntryUpdate,
		entry.ID,
		entry.JournalDate,
		entry.Description,
	)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrJournalEntryNotFound
		return
	}

	return
}

func (jr *journalRepository) UpdateTransactionAmounts(ctx context.Context, trx models.JournalTransaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryJournalTransactionUpdateAmounts,
		trx.ID,
		trx.Debit,
		trx.Credit,
	)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrDataNotFound
		return
	}

	return
}

func (jr *journalRepository) DeleteEntryWithTransactions(ctx context.Context, entryID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxWrite(ctx)

	if _, err = db.ExecContext(ctx, queryJournalTransactionDeleteByEntry, entryID); err != nil {
		return
	}

	res, err := db.ExecContext(ctx, queryJournalEntryDeleteByID, entryID)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrJournalEntryNotFound
		return
	}

	return
}
