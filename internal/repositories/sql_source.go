package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"

	"github.com/shopspring/decimal"
)

type SourceRepository interface {
	SearchPayments(ctx context.Context, companyID string, amount decimal.Decimal, dateFrom, dateTo time.Time) (result []models.PaymentSource, err error)
	SearchInvoices(ctx context.Context, companyID string, amount decimal.Decimal) (result []models.InvoiceSource, err error)
	SearchJournalEntries(ctx context.Context, companyID string, legAmount decimal.Decimal, dateFrom, dateTo time.Time) (result []models.JournalEntrySource, err error)
	SearchCreditNotes(ctx context.Context, companyID string, amount decimal.Decimal) (result []models.CreditNoteSource, err error)

	// GetSourceRef loads the identity of any matchable source regardless of
	// type, for manual match validation.
	GetSourceRef(ctx context.Context, sourceType models.SourceType, sourceID string) (result models.SourceRef, err error)
}

type sourceRepository sqlRepo

var _ SourceRepository = (*sourceRepository)(nil)

func (sr *sourceRepository) SearchPayments(ctx context.Context, companyID string, amount decimal.Decimal, dateFrom, dateTo time.Time) (result []models.PaymentSource, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	query, args, err := buildPaymentCandidateQuery(companyID, amount, dateFrom, dateTo)
	if err != nil {
		err = fmt.Errorf("failed to build query: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var payment models.PaymentSource
		err = rows.Scan(
			&payment.ID,
			&payment.CompanyID,
			&payment.Amount,
			&payment.PaymentDate,
			&payment.Reference,
		)
		if err != nil {
			return
		}
		result = append(result, payment)
	}

	err = rows.Err()
	return
}

func (sr *sourceRepository) SearchInvoices(ctx context.Context, companyID string, amount decimal.Decimal) (result []models.InvoiceSource, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	query, args, err := buildInvoiceCandidateQuery(companyID, amount)
	if err != nil {
		err = fmt.Errorf("failed to build query: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var invoice models.InvoiceSource
		err = rows.Scan(
			&invoice.ID,
			&invoice.CompanyID,
			&invoice.Total,
			&invoice.InvoiceNumber,
			&invoice.InvoiceDate,
			&invoice.CustomerName,
			&invoice.Status,
		)
		if err != nil {
			return
		}
		result = append(result, invoice)
	}

	err = rows.Err()
	return
}

func (sr *sourceRepository) SearchJournalEntries(ctx context.Context, companyID string, legAmount decimal.Decimal, dateFrom, dateTo time.Time) (result []models.JournalEntrySource, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	query, args, err := buildJournalCandidateQuery(companyID, legAmount, dateFrom, dateTo)
	if err != nil {
		err = fmt.Errorf("failed to build query: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var entry models.JournalEntrySource
		err = rows.Scan(
			&entry.ID,
			&entry.CompanyID,
			&entry.JournalDate,
			&entry.Description,
		)
		if err != nil {
			return
		}
		result = append(result, entry)
	}

	err = rows.Err()
	return
}

func (sr *sourceRepository) SearchCreditNotes(ctx context.Context, companyID string, amount decimal.Decimal) (result []models.CreditNoteSource, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	query, args, err := buildCreditNoteCandidateQuery(companyID, amount)
	if err != nil {
		err = fmt.Errorf("failed to build query: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var note models.CreditNoteSource
		err = rows.Scan(
			&note.ID,
			&note.CompanyID,
			&note.Total,
			&note.CreditNoteNumber,
			&note.CustomerName,
			&note.Status,
		)
		if err != nil {
			return
		}
		result = append(result, note)
	}

	err = rows.Err()
	return
}

func (sr *sourceRepository) GetSourceRef(ctx context.Context, sourceType models.SourceType, sourceID string) (result models.SourceRef, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	var query string
	switch sourceType {
	case models.SourceTypePayment:
		query = querySourcePaymentRef
	case models.SourceTypeInvoice:
		query = querySourceInvoiceRef
	case models.SourceTypeJournalEntry:
		query = querySourceJournalEntryRef
	case models.SourceTypeCreditNote:
		query = querySourceCreditNoteRef
	default:
		err = fmt.Errorf("%w: %s", common.ErrInvalidSourceType, sourceType)
		return
	}

	err = db.QueryRowContext(ctx, query, sourceID).Scan(&result.ID, &result.CompanyID, &result.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrSourceNotFound
		}
		return
	}

	return
}
