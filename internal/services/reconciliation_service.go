package services

import (
	"context"
	"errors"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories"
)

type ReconciliationService interface {
	CreateForStatement(ctx context.Context, statementID, userID string) (result models.BankReconciliation, err error)
	GetByID(ctx context.Context, reconciliationID string) (result models.BankReconciliation, err error)
	StartProgress(ctx context.Context, reconciliationID, userID string) (result models.BankReconciliation, err error)
	Complete(ctx context.Context, reconciliationID, userID string) (result models.BankReconciliation, err error)
	Lock(ctx context.Context, reconciliationID string) (result models.BankReconciliation, err error)
	Reopen(ctx context.Context, reconciliationID, reason string) (result models.BankReconciliation, err error)
}

type reconciliation service

var _ ReconciliationService = (*reconciliation)(nil)

// CreateForStatement opens a draft reconciliation for one statement. A
// statement carries at most one reconciliation for its whole lifetime.
func (rs *reconciliation) CreateForStatement(ctx context.Context, statementID, userID string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	err = rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		statement, stErr := r.GetStatementRepository().GetByID(ctx, statementID)
		if stErr != nil {
			return stErr
		}

		_, existErr := r.GetReconciliationRepository().GetByStatementID(ctx, statementID)
		if existErr == nil {
			return common.ErrStatementAlreadyReconciled
		}
		if !errors.Is(existErr, common.ErrReconciliationNotFound) {
			return existErr
		}

		result = models.BankReconciliation{
			ID:              rs.srv.idgenerator.Generate("recon"),
			CompanyID:       statement.CompanyID,
			StatementID:     statement.ID,
			LedgerAccountID: statement.LedgerAccountID,
			Status:          models.ReconciliationStatusDraft,
		}

		if crErr := r.GetReconciliationRepository().Create(ctx, result); crErr != nil {
			return crErr
		}

		variance, calcErr := rs.srv.recomputeVariance(ctx, r, result)
		if calcErr != nil {
			return calcErr
		}

		result.UnmatchedStatementTotal = variance.UnmatchedStatementTotal
		result.UnmatchedInternalTotal = variance.UnmatchedInternalTotal
		result.Variance = variance.Variance

		return nil
	})
	if err != nil {
		return
	}

	rs.srv.publishEvent(ctx, models.EventTypeStatusChanged, result, models.StatusChangedEventPayload{
		NewStatus: result.Status,
		ActorID:   userID,
	})

	return
}

func (rs *reconciliation) GetByID(ctx context.Context, reconciliationID string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = rs.srv.sqlRepo.GetReconciliationRepository().GetByID(ctx, reconciliationID)
	if err != nil {
		err = checkDatabaseError(err, common.ErrReconciliationNotFound)
		return
	}

	return
}

func (rs *reconciliation) StartProgress(ctx context.Context, reconciliationID, userID string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return rs.transition(ctx, reconciliationID, userID, "", func(recon *models.BankReconciliation) error {
		return recon.StartProgress(userID)
	}, nil)
}

// Complete recomputes the variance before applying the transition so the
// zero-variance guard always judges fresh numbers, not a stale cache.
func (rs *reconciliation) Complete(ctx context.Context, reconciliationID, userID string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return rs.transition(ctx, reconciliationID, userID, "", func(recon *models.BankReconciliation) error {
		return recon.Complete(userID)
	}, func(ctx context.Context, r repositories.SQLRepository, recon *models.BankReconciliation) error {
		variance, calcErr := rs.srv.recomputeVariance(ctx, r, *recon)
		if calcErr != nil {
			return calcErr
		}
		recon.Variance = variance.Variance
		recon.UnmatchedStatementTotal = variance.UnmatchedStatementTotal
		recon.UnmatchedInternalTotal = variance.UnmatchedInternalTotal
		return nil
	})
}

func (rs *reconciliation) Lock(ctx context.Context, reconciliationID string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return rs.transition(ctx, reconciliationID, "", "", func(recon *models.BankReconciliation) error {
		return recon.Lock()
	}, nil)
}

func (rs *reconciliation) Reopen(ctx context.Context, reconciliationID, reason string) (result models.BankReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return rs.transition(ctx, reconciliationID, "", reason, func(recon *models.BankReconciliation) error {
		return recon.Reopen(reason)
	}, nil)
}

type transitionPrep func(ctx context.Context, r repositories.SQLRepository, recon *models.BankReconciliation) error

func (rs *reconciliation) transition(
	ctx context.Context,
	reconciliationID, actorID, reason string,
	apply func(recon *models.BankReconciliation) error,
	prepare transitionPrep,
) (result models.BankReconciliation, err error) {
	var previousStatus string

	err = rs.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		recon, lockErr := r.GetReconciliationRepository().AcquireRowLock(ctx, reconciliationID)
		if lockErr != nil {
			return lockErr
		}

		previousStatus = recon.Status

		if prepare != nil {
			if prepErr := prepare(ctx, r, &recon); prepErr != nil {
				return prepErr
			}
		}

		if applyErr := apply(&recon); applyErr != nil {
			return applyErr
		}

		if updErr := r.GetReconciliationRepository().UpdateState(ctx, recon); updErr != nil {
			return updErr
		}

		// A completed reconciliation settles its statement.
		if recon.Status == models.ReconciliationStatusCompleted {
			if stErr := r.GetStatementRepository().UpdateStatus(ctx, recon.StatementID, models.StatementStatusReconciled); stErr != nil {
				return stErr
			}
		}

		result = recon
		return nil
	})
	if err != nil {
		return
	}

	rs.srv.publishEvent(ctx, models.EventTypeStatusChanged, result, models.StatusChangedEventPayload{
		PreviousStatus: previousStatus,
		NewStatus:      result.Status,
		ActorID:        actorID,
		Reason:         reason,
	})

	return
}
