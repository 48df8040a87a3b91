package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common/similarity"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories"
	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type MatchingService interface {
	// RunAutoMatch scores candidates for every unmatched line of the
	// reconciliation and greedily matches each line to its best still-unused
	// candidate. Lines whose best candidate scores below the low threshold
	// stay unmatched.
	RunAutoMatch(ctx context.Context, reconciliationID string, overrides *models.MatchingOverrides) (result models.AutoMatchResult, err error)

	// FindCandidates scores all four source types for one statement line
	// without creating anything.
	FindCandidates(ctx context.Context, statementLineID string, overrides *models.MatchingOverrides) (result []models.MatchCandidate, err error)

	CreateManualMatch(ctx context.Context, req models.CreateManualMatchRequest) (result models.BankReconciliationMatch, err error)
	RemoveMatch(ctx context.Context, matchID, userID string) (err error)
}

type matching service

var _ MatchingService = (*matching)(nil)

func (ms *matching) RunAutoMatch(ctx context.Context, reconciliationID string, overrides *models.MatchingOverrides) (result models.AutoMatchResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	cfg := ms.srv.matchingConfig().Apply(overrides)

	var recon models.BankReconciliation
	var created []models.BankReconciliationMatch

	err = ms.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var lockErr error
		recon, lockErr = loadEditableReconciliation(ctx, r, reconciliationID)
		if lockErr != nil {
			return lockErr
		}

		lines, lineErr := r.GetStatementRepository().ListUnmatchedLines(ctx, recon.StatementID, recon.ID)
		if lineErr != nil {
			return lineErr
		}

		result.LinesConsidered = len(lines)

		existing, matchErr := r.GetMatchRepository().ListByReconciliation(ctx, recon.ID)
		if matchErr != nil {
			return matchErr
		}

		usedSources := make(map[string]struct{}, len(existing))
		for _, m := range existing {
			usedSources[sourceKey(m.SourceType, m.SourceID)] = struct{}{}
		}

		for _, line := range lines {
			candidates, candErr := ms.findCandidatesForLine(ctx, r, line, cfg)
			if candErr != nil {
				return candErr
			}

			match, ok := pickCandidate(candidates, usedSources)
			if !ok {
				continue
			}

			score := match.Confidence
			in := models.CreateMatchIn{
				ID:               ms.srv.idgenerator.Generate("match"),
				ReconciliationID: recon.ID,
				StatementLineID:  line.ID,
				SourceType:       match.SourceType,
				SourceID:         match.SourceID,
				Amount:           line.Amount,
				AutoMatched:      true,
				ConfidenceScore:  &score,
				MatchedBy:        "auto_match",
			}

			if crErr := r.GetMatchRepository().Create(ctx, in); crErr != nil {
				return crErr
			}

			usedSources[sourceKey(match.SourceType, match.SourceID)] = struct{}{}
			created = append(created, models.BankReconciliationMatch{
				ID:               in.ID,
				ReconciliationID: in.ReconciliationID,
				StatementLineID:  in.StatementLineID,
				SourceType:       in.SourceType,
				SourceID:         in.SourceID,
				Amount:           in.Amount,
				AutoMatched:      true,
				ConfidenceScore:  &score,
				MatchedBy:        in.MatchedBy,
			})
		}

		variance, calcErr := ms.srv.recomputeVariance(ctx, r, recon)
		if calcErr != nil {
			return calcErr
		}

		result.Matches = created
		result.Variance = variance
		return nil
	})
	if err != nil {
		return
	}

	xlog.Info(ctx, fmt.Sprintf("[AUTO-MATCH] matched %d of %d lines", len(created), result.LinesConsidered))

	for _, match := range created {
		ms.srv.publishEvent(ctx, models.EventTypeMatchCreated, recon, models.MatchEventPayload{
			MatchID:         match.ID,
			StatementLineID: match.StatementLineID,
			SourceType:      match.SourceType,
			SourceID:        match.SourceID,
			Amount:          match.Amount,
			AutoMatched:     true,
			ConfidenceScore: match.ConfidenceScore,
			ActorID:         match.MatchedBy,
		})
	}

	return
}

func (ms *matching) FindCandidates(ctx context.Context, statementLineID string, overrides *models.MatchingOverrides) (result []models.MatchCandidate, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	cfg := ms.srv.matchingConfig().Apply(overrides)

	line, err := ms.srv.sqlRepo.GetStatementRepository().GetLineByID(ctx, statementLineID)
	if err != nil {
		err = checkDatabaseError(err, common.ErrStatementLineNotFound)
		return
	}

	return ms.findCandidatesForLine(ctx, ms.srv.sqlRepo, line, cfg)
}

// findCandidatesForLine fans out to the four source searches concurrently
// and merges the scored results. The searches read ledger tables the
// reconciliation never writes, so they run outside any ambient transaction;
// a *sql.Tx serves one connection and cannot take concurrent queries.
func (ms *matching) findCandidatesForLine(ctx context.Context, r repositories.SQLRepository, line models.BankStatementLine, cfg models.MatchingConfig) (result []models.MatchCandidate, err error) {
	absAmount := line.Amount.Abs()
	dateFrom := line.TransactionDate.AddDate(0, 0, -cfg.DateToleranceDays)
	dateTo := line.TransactionDate.AddDate(0, 0, cfg.DateToleranceDays)

	var mu sync.Mutex
	var candidates []models.MatchCandidate

	appendCandidates := func(found []models.MatchCandidate) {
		mu.Lock()
		candidates = append(candidates, found...)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(repositories.DetachTx(ctx))

	g.Go(func() error {
		payments, searchErr := r.GetSourceRepository().SearchPayments(gctx, line.CompanyID, absAmount, dateFrom, dateTo)
		if searchErr != nil {
			return searchErr
		}
		appendCandidates(scorePayments(line, payments, cfg))
		return nil
	})

	g.Go(func() error {
		if !line.Amount.IsPositive() {
			return nil
		}
		invoices, searchErr := r.GetSourceRepository().SearchInvoices(gctx, line.CompanyID, line.Amount)
		if searchErr != nil {
			return searchErr
		}
		appendCandidates(scoreInvoices(line, invoices, cfg))
		return nil
	})

	g.Go(func() error {
		entries, searchErr := r.GetSourceRepository().SearchJournalEntries(gctx, line.CompanyID, absAmount, dateFrom, dateTo)
		if searchErr != nil {
			return searchErr
		}
		appendCandidates(scoreJournalEntries(line, entries, cfg))
		return nil
	})

	g.Go(func() error {
		if !line.Amount.IsNegative() {
			return nil
		}
		notes, searchErr := r.GetSourceRepository().SearchCreditNotes(gctx, line.CompanyID, absAmount)
		if searchErr != nil {
			return searchErr
		}
		appendCandidates(scoreCreditNotes(line, notes, cfg))
		return nil
	})

	if err = g.Wait(); err != nil {
		return
	}

	kept := candidates[:0]
	for _, c := range candidates {
		if c.Confidence >= cfg.LowConfidenceThreshold {
			kept = append(kept, c)
		}
	}

	result = models.DedupAndSortCandidates(kept)
	return
}

func (ms *matching) CreateManualMatch(ctx context.Context, req models.CreateManualMatchRequest) (result models.BankReconciliationMatch, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = common.ValidateStructToError(req); err != nil {
		return
	}

	sourceType, err := models.ParseSourceType(req.SourceType)
	if err != nil {
		return
	}

	var recon models.BankReconciliation
	var replaced int64

	err = ms.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		line, lineErr := r.GetStatementRepository().GetLineByID(ctx, req.StatementLineID)
		if lineErr != nil {
			return checkDatabaseError(lineErr, common.ErrStatementLineNotFound)
		}

		var lockErr error
		recon, lockErr = r.GetReconciliationRepository().GetByStatementID(ctx, line.StatementID)
		if lockErr != nil {
			return lockErr
		}

		recon, lockErr = loadEditableReconciliation(ctx, r, recon.ID)
		if lockErr != nil {
			return lockErr
		}

		source, srcErr := r.GetSourceRepository().GetSourceRef(ctx, sourceType, req.SourceID)
		if srcErr != nil {
			return srcErr
		}
		if source.CompanyID != line.CompanyID {
			return common.ErrSourceCompanyMismatch
		}

		var delErr error
		replaced, delErr = r.GetMatchRepository().DeleteByStatementLine(ctx, recon.ID, line.ID)
		if delErr != nil {
			return delErr
		}

		amount := req.Amount
		if amount.IsZero() {
			amount = line.Amount
		}

		in := models.CreateMatchIn{
			ID:               ms.srv.idgenerator.Generate("match"),
			ReconciliationID: recon.ID,
			StatementLineID:  line.ID,
			SourceType:       sourceType,
			SourceID:         req.SourceID,
			Amount:           amount,
			AutoMatched:      false,
			MatchedBy:        req.UserID,
		}

		if crErr := r.GetMatchRepository().Create(ctx, in); crErr != nil {
			return crErr
		}

		if _, calcErr := ms.srv.recomputeVariance(ctx, r, recon); calcErr != nil {
			return calcErr
		}

		result = models.BankReconciliationMatch{
			ID:               in.ID,
			ReconciliationID: in.ReconciliationID,
			StatementLineID:  in.StatementLineID,
			SourceType:       in.SourceType,
			SourceID:         in.SourceID,
			Amount:           in.Amount,
			MatchedBy:        in.MatchedBy,
		}
		return nil
	})
	if err != nil {
		return
	}

	if replaced > 0 {
		ms.srv.publishEvent(ctx, models.EventTypeMatchRemoved, recon, models.MatchEventPayload{
			StatementLineID: result.StatementLineID,
			ActorID:         req.UserID,
		})
	}

	ms.srv.publishEvent(ctx, models.EventTypeMatchCreated, recon, models.MatchEventPayload{
		MatchID:         result.ID,
		StatementLineID: result.StatementLineID,
		SourceType:      result.SourceType,
		SourceID:        result.SourceID,
		Amount:          result.Amount,
		ActorID:         req.UserID,
	})

	return
}

func (ms *matching) RemoveMatch(ctx context.Context, matchID, userID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var recon models.BankReconciliation
	var match models.BankReconciliationMatch

	err = ms.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var getErr error
		match, getErr = r.GetMatchRepository().GetByID(ctx, matchID)
		if getErr != nil {
			return getErr
		}

		var lockErr error
		recon, lockErr = loadEditableReconciliation(ctx, r, match.ReconciliationID)
		if lockErr != nil {
			return lockErr
		}

		if delErr := r.GetMatchRepository().DeleteByID(ctx, match.ID); delErr != nil {
			return delErr
		}

		_, calcErr := ms.srv.recomputeVariance(ctx, r, recon)
		return calcErr
	})
	if err != nil {
		return
	}

	ms.srv.publishEvent(ctx, models.EventTypeMatchRemoved, recon, models.MatchEventPayload{
		MatchID:         match.ID,
		StatementLineID: match.StatementLineID,
		SourceType:      match.SourceType,
		SourceID:        match.SourceID,
		Amount:          match.Amount,
		ActorID:         userID,
	})

	return
}

func sourceKey(sourceType models.SourceType, sourceID string) string {
	return string(sourceType) + ":" + sourceID
}

// pickCandidate returns the best candidate not yet consumed by an earlier
// line. Candidates arrive sorted by confidence descending.
func pickCandidate(candidates []models.MatchCandidate, usedSources map[string]struct{}) (models.MatchCandidate, bool) {
	for _, c := range candidates {
		if _, used := usedSources[sourceKey(c.SourceType, c.SourceID)]; !used {
			return c, true
		}
	}
	return models.MatchCandidate{}, false
}

func scorePayments(line models.BankStatementLine, payments []models.PaymentSource, cfg models.MatchingConfig) []models.MatchCandidate {
	absAmount := line.Amount.Abs()
	candidates := make([]models.MatchCandidate, 0, len(payments))

	for _, payment := range payments {
		score := 0.0

		absPayment := payment.Amount.Abs()
		diff := absPayment.Sub(absAmount).Abs()
		switch {
		case diff.LessThanOrEqual(cfg.ExactAmountThreshold):
			score += 0.5
		case !absPayment.IsZero() && diff.Div(absPayment).LessThanOrEqual(decimal.RequireFromString("0.05")):
			score += 0.3
		}

		days := common.DaysBetween(line.TransactionDate, payment.PaymentDate)
		switch {
		case days == 0:
			score += 0.3
		case days <= 3:
			score += 0.2
		case days <= cfg.DateToleranceDays:
			score += 0.1
		}

		if line.ReferenceNumber != "" && payment.Reference != "" {
			sim := similarity.Ratio(line.ReferenceNumber, payment.Reference)
			switch {
			case sim >= 0.9:
				score += 0.2
			case sim >= 0.7:
				score += 0.1
			}
		}

		candidates = append(candidates, models.MatchCandidate{
			SourceType: models.SourceTypePayment,
			SourceID:   payment.ID,
			Confidence: capScore(score),
		})
	}

	return candidates
}

func scoreInvoices(line models.BankStatementLine, invoices []models.InvoiceSource, cfg models.MatchingConfig) []models.MatchCandidate {
	description := strings.ToLower(line.Description)
	candidates := make([]models.MatchCandidate, 0, len(invoices))

	for _, invoice := range invoices {
		// The search already guarantees an exact total and an open status.
		score := 0.5

		customer := strings.ToLower(strings.TrimSpace(invoice.CustomerName))
		if customer != "" {
			if strings.Contains(description, customer) {
				score += 0.3
			} else if similarity.Ratio(description, customer) >= 0.7 {
				score += 0.2
			}
		}

		number := strings.ToLower(strings.TrimSpace(invoice.InvoiceNumber))
		if number != "" && strings.Contains(description, number) {
			score += 0.2
		}

		if common.DaysBetween(line.TransactionDate, invoice.InvoiceDate) <= 30 {
			score += 0.1
		}

		candidates = append(candidates, models.MatchCandidate{
			SourceType: models.SourceTypeInvoice,
			SourceID:   invoice.ID,
			Confidence: capScore(score),
		})
	}

	return candidates
}

func scoreJournalEntries(line models.BankStatementLine, entries []models.JournalEntrySource, cfg models.MatchingConfig) []models.MatchCandidate {
	candidates := make([]models.MatchCandidate, 0, len(entries))

	for _, entry := range entries {
		// A leg equal to the line amount within the date window scored the base.
		score := 0.4

		days := common.DaysBetween(line.TransactionDate, entry.JournalDate)
		switch {
		case days == 0:
			score += 0.3
		case days <= cfg.DateToleranceDays:
			score += 0.2
		}

		if line.Description != "" && entry.Description != "" {
			sim := similarity.Ratio(line.Description, entry.Description)
			switch {
			case sim >= 0.8:
				score += 0.3
			case sim >= 0.6:
				score += 0.1
			}
		}

		candidates = append(candidates, models.MatchCandidate{
			SourceType: models.SourceTypeJournalEntry,
			SourceID:   entry.ID,
			Confidence: capScore(score),
		})
	}

	return candidates
}

func scoreCreditNotes(line models.BankStatementLine, notes []models.CreditNoteSource, cfg models.MatchingConfig) []models.MatchCandidate {
	description := strings.ToLower(line.Description)
	candidates := make([]models.MatchCandidate, 0, len(notes))

	for _, note := range notes {
		score := 0.4

		customer := strings.ToLower(strings.TrimSpace(note.CustomerName))
		if customer != "" && strings.Contains(description, customer) {
			score += 0.3
		}

		number := strings.ToLower(strings.TrimSpace(note.CreditNoteNumber))
		if number != "" && strings.Contains(description, number) {
			score += 0.2
		}

		candidates = append(candidates, models.MatchCandidate{
			SourceType: models.SourceTypeCreditNote,
			SourceID:   note.ID,
			Confidence: capScore(score),
		})
	}

	return candidates
}

func capScore(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}
