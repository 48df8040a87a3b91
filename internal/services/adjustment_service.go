package services

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories"
)

type AdjustmentService interface {
	// Create records an adjustment, posts its balanced journal entry against
	// the reconciliation's bank account, and recalculates the variance. The
	// counter account is resolved by role and created when missing. Posting
	// can be switched off per request, and the adjustment can reference the
	// statement line that explains it.
	Create(ctx context.Context, req models.CreateAdjustmentRequest) (result models.BankReconciliationAdjustment, err error)

	// Update changes the amount, description or date of an adjustment and
	// keeps its journal entry in sync. The adjustment type is immutable.
	Update(ctx context.Context, req models.UpdateAdjustmentRequest) (result models.BankReconciliationAdjustment, err error)

	// Delete removes the adjustment together with its journal entry and
	// recalculates the variance.
	Delete(ctx context.Context, adjustmentID, userID string) (err error)

	ListByReconciliation(ctx context.Context, reconciliationID string) (result []models.BankReconciliationAdjustment, err error)
}

type adjustment service

var _ AdjustmentService = (*adjustment)(nil)

func (as *adjustment) Create(ctx context.Context, req models.CreateAdjustmentRequest) (result models.BankReconciliationAdjustment, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = common.ValidateStructToError(req); err != nil {
		return
	}

	adjType, err := models.ParseAdjustmentType(req.AdjustmentType)
	if err != nil {
		return
	}

	adjustmentDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.AdjustmentDate)
	if err != nil {
		return
	}

	var recon models.BankReconciliation

	postJournal := req.PostJournalEntry == nil || *req.PostJournalEntry

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var lockErr error
		recon, lockErr = loadEditableReconciliation(ctx, r, req.ReconciliationID)
		if lockErr != nil {
			return lockErr
		}

		if req.StatementLineID != nil {
			line, lineErr := r.GetStatementRepository().GetLineByID(ctx, *req.StatementLineID)
			if lineErr != nil {
				return checkDatabaseError(lineErr, common.ErrStatementLineNotFound)
			}
			if line.StatementID != recon.StatementID {
				return common.ErrStatementLineNotFound
			}
		}

		signed := adjType.ApplySign(req.Amount)
		adjustmentID := as.srv.idgenerator.Generate("adj")

		var journalEntryID *string
		if postJournal {
			bank, bankErr := r.GetAccountRepository().GetCachedByID(ctx, recon.LedgerAccountID)
			if bankErr != nil {
				return bankErr
			}

			counter, acctErr := as.resolveCounterAccount(ctx, r, recon.CompanyID, adjType)
			if acctErr != nil {
				return acctErr
			}

			entry := models.JournalEntry{
				ID:          as.srv.idgenerator.Generate("je"),
				CompanyID:   recon.CompanyID,
				JournalDate: adjustmentDate,
				Description: req.Description,
				SourceType:  models.JournalSourceTypeRecon,
				SourceID:    adjustmentID,
				Status:      models.JournalEntryStatusPosted,
				CreatedBy:   req.CreatedBy,
			}
			if jeErr := r.GetJournalRepository().CreateEntry(ctx, entry); jeErr != nil {
				return jeErr
			}

			for _, leg := range models.AdjustmentJournalLegs(adjType, signed, bank.ID, counter.ID) {
				trx := models.JournalTransaction{
					ID:             as.srv.idgenerator.Generate("jtx"),
					JournalEntryID: entry.ID,
					AccountID:      leg.AccountID,
					Debit:          leg.Debit,
					Credit:         leg.Credit,
				}
				if trxErr := r.GetJournalRepository().CreateTransaction(ctx, trx); trxErr != nil {
					return trxErr
				}
			}

			journalEntryID = &entry.ID
		}

		result = models.BankReconciliationAdjustment{
			ID:               adjustmentID,
			ReconciliationID: recon.ID,
			CompanyID:        recon.CompanyID,
			AdjustmentType:   adjType,
			Amount:           signed,
			Description:      req.Description,
			AdjustmentDate:   adjustmentDate,
			StatementLineID:  req.StatementLineID,
			JournalEntryID:   journalEntryID,
			CreatedBy:        req.CreatedBy,
		}
		if adjErr := r.GetAdjustmentRepository().Create(ctx, result); adjErr != nil {
			return adjErr
		}

		_, calcErr := as.srv.recomputeVariance(ctx, r, recon)
		return calcErr
	})
	if err != nil {
		return
	}

	as.srv.publishEvent(ctx, models.EventTypeAdjustmentCreated, recon, models.AdjustmentEventPayload{
		AdjustmentID:   result.ID,
		AdjustmentType: result.AdjustmentType,
		Amount:         result.Amount,
		JournalEntryID: result.JournalEntryID,
		ActorID:        req.CreatedBy,
	})

	return
}

func (as *adjustment) Update(ctx context.Context, req models.UpdateAdjustmentRequest) (result models.BankReconciliationAdjustment, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = common.ValidateStructToError(req); err != nil {
		return
	}

	var adjustmentDate *time.Time
	if req.AdjustmentDate != nil {
		parsed, parseErr := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, *req.AdjustmentDate)
		if parseErr != nil {
			err = parseErr
			return
		}
		adjustmentDate = &parsed
	}

	var recon models.BankReconciliation

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		current, getErr := r.GetAdjustmentRepository().GetByID(ctx, req.AdjustmentID)
		if getErr != nil {
			return checkDatabaseError(getErr, common.ErrAdjustmentNotFound)
		}

		var lockErr error
		recon, lockErr = loadEditableReconciliation(ctx, r, current.ReconciliationID)
		if lockErr != nil {
			return lockErr
		}

		if req.Amount != nil {
			current.Amount = current.AdjustmentType.ApplySign(*req.Amount)
		}
		if req.Description != nil {
			current.Description = *req.Description
		}
		if adjustmentDate != nil {
			current.AdjustmentDate = *adjustmentDate
		}

		if current.JournalEntryID != nil {
			if syncErr := as.syncJournalEntry(ctx, r, current); syncErr != nil {
				return syncErr
			}
		}

		if upErr := r.GetAdjustmentRepository().Update(ctx, current); upErr != nil {
			return upErr
		}

		result = current

		_, calcErr := as.srv.recomputeVariance(ctx, r, recon)
		return calcErr
	})
	if err != nil {
		return
	}

	as.srv.publishEvent(ctx, models.EventTypeAdjustmentUpdated, recon, models.AdjustmentEventPayload{
		AdjustmentID:   result.ID,
		AdjustmentType: result.AdjustmentType,
		Amount:         result.Amount,
		JournalEntryID: result.JournalEntryID,
		ActorID:        req.UpdatedBy,
	})

	return
}

func (as *adjustment) Delete(ctx context.Context, adjustmentID, userID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var recon models.BankReconciliation
	var removed models.BankReconciliationAdjustment

	err = as.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var getErr error
		removed, getErr = r.GetAdjustmentRepository().GetByID(ctx, adjustmentID)
		if getErr != nil {
			return checkDatabaseError(getErr, common.ErrAdjustmentNotFound)
		}

		var lockErr error
		recon, lockErr = loadEditableReconciliation(ctx, r, removed.ReconciliationID)
		if lockErr != nil {
			return lockErr
		}

		if delErr := r.GetAdjustmentRepository().DeleteByID(ctx, removed.ID); delErr != nil {
			return delErr
		}

		if removed.JournalEntryID != nil {
			if jeErr := r.GetJournalRepository().DeleteEntryWithTransactions(ctx, *removed.JournalEntryID); jeErr != nil {
				return jeErr
			}
		}

		_, calcErr := as.srv.recomputeVariance(ctx, r, recon)
		return calcErr
	})
	if err != nil {
		return
	}

	as.srv.publishEvent(ctx, models.EventTypeAdjustmentDeleted, recon, models.AdjustmentEventPayload{
		AdjustmentID:   removed.ID,
		AdjustmentType: removed.AdjustmentType,
		Amount:         removed.Amount,
		JournalEntryID: removed.JournalEntryID,
		ActorID:        userID,
	})

	return
}

func (as *adjustment) ListByReconciliation(ctx context.Context, reconciliationID string) (result []models.BankReconciliationAdjustment, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if _, err = as.srv.sqlRepo.GetReconciliationRepository().GetByID(ctx, reconciliationID); err != nil {
		return
	}

	return as.srv.sqlRepo.GetAdjustmentRepository().ListByReconciliation(ctx, reconciliationID)
}

// resolveCounterAccount finds the counter account for an adjustment type,
// creating it with the next free account number when none exists yet.
func (as *adjustment) resolveCounterAccount(ctx context.Context, r repositories.SQLRepository, companyID string, adjType models.AdjustmentType) (models.ChartOfAccount, error) {
	role := models.CounterAccountRole(adjType)

	account, err := r.GetAccountRepository().FindByRole(ctx, companyID, role)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, common.ErrDataNotFound) {
		return models.ChartOfAccount{}, err
	}

	number, err := r.GetAccountRepository().NextAccountNumber(ctx, companyID)
	if err != nil {
		return models.ChartOfAccount{}, err
	}

	account = models.ChartOfAccount{
		ID:            as.srv.idgenerator.Generate("acct"),
		CompanyID:     companyID,
		AccountNumber: number,
		Name:          role.DefaultName,
		Type:          role.Type,
		Subtype:       role.Subtype,
		IsActive:      true,
	}
	if err = r.GetAccountRepository().Create(ctx, account); err != nil {
		return models.ChartOfAccount{}, err
	}

	return account, nil
}

// syncJournalEntry rewrites the entry header and both leg amounts so the
// posted journal keeps mirroring the adjustment.
func (as *adjustment) syncJournalEntry(ctx context.Context, r repositories.SQLRepository, adj models.BankReconciliationAdjustment) error {
	entry, err := r.GetJournalRepository().GetEntryByID(ctx, *adj.JournalEntryID)
	if err != nil {
		return err
	}

	entry.JournalDate = adj.AdjustmentDate
	entry.Description = adj.Description
	if err = r.GetJournalRepository().UpdateEntry(ctx, entry); err != nil {
		return err
	}

	transactions, err := r.GetJournalRepository().ListTransactionsByEntry(ctx, entry.ID)
	if err != nil {
		return err
	}

	abs := adj.Amount.Abs()
	for _, trx := range transactions {
		if trx.Debit.IsPositive() {
			trx.Debit = abs
		} else {
			trx.Credit = abs
		}
		if err = r.GetJournalRepository().UpdateTransactionAmounts(ctx, trx); err != nil {
			return err
		}
	}

	return nil
}
