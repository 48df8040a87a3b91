package services

import (
	"context"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories"
)

type SummaryService interface {
	RecalculateVariance(ctx context.Context, reconciliationID string) (result models.VarianceResult, err error)
	GetSummaryStats(ctx context.Context, reconciliationID string) (result models.SummaryStats, err error)
	GetBreakdown(ctx context.Context, reconciliationID string) (result models.Breakdown, err error)
}

type summary service

var _ SummaryService = (*summary)(nil)

func (ss *summary) RecalculateVariance(ctx context.Context, reconciliationID string) (result models.VarianceResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	err = ss.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		recon, lockErr := r.GetReconciliationRepository().AcquireRowLock(ctx, reconciliationID)
		if lockErr != nil {
			return lockErr
		}

		var calcErr error
		result, calcErr = ss.srv.recomputeVariance(ctx, r, recon)
		return calcErr
	})
	if err != nil {
		return
	}

	recon, err := ss.srv.sqlRepo.GetReconciliationRepository().GetByID(ctx, reconciliationID)
	if err != nil {
		return
	}

	ss.srv.publishEvent(ctx, models.EventTypeVarianceRecalculated, recon, models.VarianceEventPayload{
		Variance:                result.Variance,
		UnmatchedStatementTotal: result.UnmatchedStatementTotal,
		UnmatchedInternalTotal:  result.UnmatchedInternalTotal,
		IsBalanced:              result.IsBalanced,
	})

	return
}

func (ss *summary) GetSummaryStats(ctx context.Context, reconciliationID string) (result models.SummaryStats, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	recon, statement, lines, matches, adjustments, err := ss.loadReconciliationView(ctx, reconciliationID)
	if err != nil {
		return
	}

	variance := models.CalculateVariance(statement, lines, matches, adjustments)
	result = models.BuildSummaryStats(recon, lines, matches, adjustments, variance, ss.srv.matchingConfig())

	return
}

func (ss *summary) GetBreakdown(ctx context.Context, reconciliationID string) (result models.Breakdown, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	_, _, lines, matches, adjustments, err := ss.loadReconciliationView(ctx, reconciliationID)
	if err != nil {
		return
	}

	result = models.BuildBreakdown(lines, matches, adjustments)

	return
}

func (ss *summary) loadReconciliationView(ctx context.Context, reconciliationID string) (
	recon models.BankReconciliation,
	statement models.BankStatement,
	lines []models.BankStatementLine,
	matches []models.BankReconciliationMatch,
	adjustments []models.BankReconciliationAdjustment,
	err error,
) {
	recon, err = ss.srv.sqlRepo.GetReconciliationRepository().GetByID(ctx, reconciliationID)
	if err != nil {
		return
	}

	statement, err = ss.srv.sqlRepo.GetStatementRepository().GetByID(ctx, recon.StatementID)
	if err != nil {
		return
	}

	lines, err = ss.srv.sqlRepo.GetStatementRepository().ListLines(ctx, recon.StatementID)
	if err != nil {
		return
	}

	matches, err = ss.srv.sqlRepo.GetMatchRepository().ListByReconciliation(ctx, recon.ID)
	if err != nil {
		return
	}

	adjustments, err = ss.srv.sqlRepo.GetAdjustmentRepository().ListByReconciliation(ctx, recon.ID)
	if err != nil {
		return
	}

	return
}
