package services

import (
	"context"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories"
)

type StatementService interface {
	// IngestLines stores the imported rows of a statement. Rows whose hash
	// collides with an earlier row are stored flagged as duplicates, never
	// rejected. Returns the stored lines in input order.
	IngestLines(ctx context.Context, statementID string, in []models.CreateStatementLineIn) (result []models.BankStatementLine, duplicates int, err error)

	GetStatement(ctx context.Context, statementID string) (result models.BankStatement, err error)
	ListLines(ctx context.Context, statementID string) (result []models.BankStatementLine, err error)
}

type statement service

var _ StatementService = (*statement)(nil)

func (sts *statement) IngestLines(ctx context.Context, statementID string, in []models.CreateStatementLineIn) (result []models.BankStatementLine, duplicates int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	for _, lineIn := range in {
		if err = common.ValidateStructToError(lineIn); err != nil {
			return nil, 0, err
		}
	}

	err = sts.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		stmt, stErr := r.GetStatementRepository().GetByID(ctx, statementID)
		if stErr != nil {
			return stErr
		}

		if stmt.Status == models.StatementStatusReconciled {
			return common.ErrStatementAlreadyReconciled
		}

		for _, lineIn := range in {
			line := models.BankStatementLine{
				ID:              sts.srv.idgenerator.Generate("stl"),
				StatementID:     stmt.ID,
				CompanyID:       stmt.CompanyID,
				TransactionDate: lineIn.TransactionDate,
				Description:     lineIn.Description,
				ReferenceNumber: lineIn.ReferenceNumber,
				Amount:          lineIn.Amount,
				BalanceAfter:    lineIn.BalanceAfter,
				ExternalID:      lineIn.ExternalID,
				LineHash:        models.ComputeLineHash(lineIn.TransactionDate, lineIn.Description, lineIn.Amount, lineIn.ReferenceNumber),
			}

			originalID, hashErr := r.GetStatementRepository().FindLineIDByHash(ctx, stmt.ID, line.LineHash)
			if hashErr != nil {
				return hashErr
			}
			if originalID != "" {
				line.DuplicateOfID = originalID
				duplicates++
			}

			if crErr := r.GetStatementRepository().CreateLine(ctx, line); crErr != nil {
				return crErr
			}

			result = append(result, line)
		}

		if stmt.Status == models.StatementStatusPending {
			return r.GetStatementRepository().UpdateStatus(ctx, stmt.ID, models.StatementStatusProcessed)
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return
}

func (sts *statement) GetStatement(ctx context.Context, statementID string) (result models.BankStatement, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = sts.srv.sqlRepo.GetStatementRepository().GetByID(ctx, statementID)
	if err != nil {
		err = checkDatabaseError(err, common.ErrStatementNotFound)
		return
	}

	return
}

func (sts *statement) ListLines(ctx context.Context, statementID string) (result []models.BankStatementLine, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return sts.srv.sqlRepo.GetStatementRepository().ListLines(ctx, statementID)
}
