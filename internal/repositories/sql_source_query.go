package repositories

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

var (
	querySourcePaymentRef = `SELECT id, company_id, amount
		FROM payment
		WHERE id = $1;`

	querySourceInvoiceRef = `SELECT id, company_id, total
		FROM invoice
		WHERE id = $1;`

	querySourceJournalEntryRef = `SELECT e.id, e.company_id, COALESCE(SUM(t.debit), 0)
		FROM journal_entry e
		LEFT JOIN journal_transaction t ON t.journal_entry_id = e.id
		WHERE e.id = $1
		GROUP BY e.id, e.company_id;`

	querySourceCreditNoteRef = `SELECT id, company_id, total
		FROM credit_note
		WHERE id = $1;`
)

// Candidate searches filter amounts exactly; the scorer grades the softer
// signals (dates, references, names) on whatever the filters let through.

func buildPaymentCandidateQuery(companyID string, amount decimal.Decimal, dateFrom, dateTo time.Time) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select(
		"id",
		"company_id",
		"amount",
		"payment_date",
		"COALESCE(reference, '') as reference",
	).
		From("payment").
		Where(sq.Eq{"company_id": companyID}).
		Where(sq.Eq{"amount": amount}).
		Where(sq.GtOrEq{"payment_date": dateFrom}).
		Where(sq.LtOrEq{"payment_date": dateTo}).
		OrderBy("payment_date ASC").
		ToSql()
}

func buildInvoiceCandidateQuery(companyID string, amount decimal.Decimal) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select(
		"id",
		"company_id",
		"total",
		"COALESCE(invoice_number, '') as invoice_number",
		"invoice_date",
		"COALESCE(customer_name, '') as customer_name",
		"COALESCE(status, '') as status",
	).
		From("invoice").
		Where(sq.Eq{"company_id": companyID}).
		Where(sq.Eq{"total": amount}).
		Where(sq.NotEq{"status": []string{"paid", "void"}}).
		OrderBy("invoice_date ASC").
		ToSql()
}

func buildJournalCandidateQuery(companyID string, legAmount decimal.Decimal, dateFrom, dateTo time.Time) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select(
		"DISTINCT e.id",
		"e.company_id",
		"e.journal_date",
		"COALESCE(e.description, '') as description",
	).
		From("journal_entry e").
		Join("journal_transaction t ON t.journal_entry_id = e.id").
		Where(sq.Eq{"e.company_id": companyID}).
		Where(sq.Or{sq.Eq{"t.debit": legAmount}, sq.Eq{"t.credit": legAmount}}).
		Where(sq.GtOrEq{"e.journal_date": dateFrom}).
		Where(sq.LtOrEq{"e.journal_date": dateTo}).
		Where(sq.NotEq{"e.source_type": "bank_reconciliation_adjustment"}).
		OrderBy("e.id ASC").
		ToSql()
}

func buildCreditNoteCandidateQuery(companyID string, amount decimal.Decimal) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select(
		"id",
		"company_id",
		"total",
		"COALESCE(credit_note_number, '') as credit_note_number",
		"COALESCE(customer_name, '') as customer_name",
		"COALESCE(status, '') as status",
	).
		From("credit_note").
		Where(sq.Eq{"company_id": companyID}).
		Where(sq.Eq{"total": amount}).
		Where(sq.NotEq{"status": "void"}).
		OrderBy("id ASC").
		ToSql()
}
