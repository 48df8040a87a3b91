package services

import (
	"context"
	"fmt"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories"
)

func commonNotEditable(status string) error {
	return fmt.Errorf("%w: status is %s", common.ErrReconciliationNotEditable, status)
}

// recomputeVariance rebuilds the variance position from the current matches
// and adjustments and persists the cached totals on the reconciliation row.
// Callers run it inside Atomic, after any mutation of matches or adjustments.
func (s *Services) recomputeVariance(ctx context.Context, r repositories.SQLRepository, recon models.BankReconciliation) (result models.VarianceResult, err error) {
	statement, err := r.GetStatementRepository().GetByID(ctx, recon.StatementID)
	if err != nil {
		return
	}

	lines, err := r.GetStatementRepository().ListLines(ctx, recon.StatementID)
	if err != nil {
		return
	}

	matches, err := r.GetMatchRepository().ListByReconciliation(ctx, recon.ID)
	if err != nil {
		return
	}

	adjustments, err := r.GetAdjustmentRepository().ListByReconciliation(ctx, recon.ID)
	if err != nil {
		return
	}

	result = models.CalculateVariance(statement, lines, matches, adjustments)

	if err = r.GetReconciliationRepository().UpdateVariance(ctx, recon.ID, result); err != nil {
		return
	}

	return
}

// loadEditableReconciliation locks the reconciliation row and verifies it can
// still be mutated.
func loadEditableReconciliation(ctx context.Context, r repositories.SQLRepository, reconciliationID string) (models.BankReconciliation, error) {
	recon, err := r.GetReconciliationRepository().AcquireRowLock(ctx, reconciliationID)
	if err != nil {
		return models.BankReconciliation{}, err
	}

	if !recon.CanBeEdited() {
		return models.BankReconciliation{}, commonNotEditable(recon.Status)
	}

	return recon, nil
}
