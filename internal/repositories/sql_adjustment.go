package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, adjustment models.BankReconciliationAdjustment) (err error)
	GetByID(ctx context.Context, id string) (result models.BankReconciliationAdjustment, err error)
	ListByReconciliation(ctx context.Context, reconciliationID string) (result []models.BankReconciliationAdjustment, err error)
	Update(ctx context.Context, adjustment models.BankReconciliationAdjustment) (err error)
	DeleteByID(ctx context.Context, id string) (err error)
}

type adjustmentRepository sqlRepo

var _ AdjustmentRepository = (*adjustmentRepository)(nil)

func (adr *adjustmentRepository) Create(ctx context.Context, adjustment models.BankReconciliationAdjustment) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := adr.r.extractTxWrite(ctx)

	statementLineID := ""
	if adjustment.StatementLineID != nil {
		statementLineID = *adjustment.StatementLineID
	}

	journalEntryID := ""
	if adjustment.JournalEntryID != nil {
		journalEntryID = *adjustment.JournalEntryID
	}

	res, err := db.ExecContext(ctx, queryAdjustmentCreate,
		adjustment.ID,
		adjustment.ReconciliationID,
		adjustment.CompanyID,
		string(adjustment.AdjustmentType),
		adjustment.Amount,
		adjustment.Description,
		adjustment.AdjustmentDate,
		statementLineID,
		journalEntryID,
		adjustment.CreatedBy,
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

func (adr *adjustmentRepository) GetByID(ctx context.Context, id string) (result models.BankReconciliationAdjustment, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := adr.r.extractTxRead(ctx)

	err = scanAdjustment(db.QueryRowContext(ctx, queryAdjustmentGetByID, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrAdjustmentNotFound
		}
		return
	}

	return
}

func (adr *adjustmentRepository) ListByReconciliation(ctx context.Context, reconciliationID string) (result []models.BankReconciliationAdjustment, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := adr.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryAdjustmentListByReconciliation, reconciliationID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var adjustment models.BankReconciliationAdjustment
		if err = scanAdjustment(rows, &adjustment); err != nil {
			return
		}
		result = append(result, adjustment)
	}

	err = rows.Err()
	return
}

func (adr *adjustmentRepository) Update(ctx context.Context, adjustment models.BankReconciliationAdjustment) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := adr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryAdjustmentUpdate,
		adjustment.ID,
		adjustment.Amount,
		adjustment.Description,
		adjustment.AdjustmentDate,
	)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrAdjustmentNotFound
		return
	}

	return
}

func (adr *adjustmentRepository) DeleteByID(ctx context.Context, id string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := adr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryAdjustmentDeleteByID, id)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrAdjustmentNotFound
		return
	}

	return
}

func scanAdjustment(row rowScanner, adjustment *models.BankReconciliationAdjustment) error {
	var adjustmentType string
	var statementLineID sql.NullString
	var journalEntryID sql.NullString

	err := row.Scan(
		&adjustment.ID,
		&adjustment.ReconciliationID,
		&adjustment.CompanyID,
		&adjustmentType,
		&adjustment.Amount,
		&adjustment.Description,
		&adjustment.AdjustmentDate,
		&statementLineID,
		&journalEntryID,
		&adjustment.CreatedBy,
		&adjustment.CreatedAt,
		&adjustment.UpdatedAt,
	)
	if err != nil {
		return err
	}

	adjustment.AdjustmentType = models.AdjustmentType(adjustmentType)
	if statementLineID.Valid {
		adjustment.StatementLineID = &statementLineID.String
	}
	if journalEntryID.Valid {
		adjustment.JournalEntryID = &journalEntryID.String
	}

	return nil
}
