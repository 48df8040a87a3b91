package repositories

var (
	queryStatementGetByID = `SELECT
		  id,
		  company_id,
		  ledger_account_id,
		  COALESCE(currency, '') as currency,
		  opening_balance,
		  closing_balance,
		  period_start,
		  period_end,
		  COALESCE(status, '') as status,
		  created_at,
		  updated_at
		FROM bank_statement
		WHERE id = $1;`

	queryStatementUpdateStatus = `UPDATE bank_statement
		SET
		  status = $2,
		  updated_at = NOW()
		WHERE id = $1;`

	queryStatementLineCreate = `
		INSERT INTO bank_statement_line(
			id, statement_id, company_id, transaction_date, description, reference_number,
			amount, balance_after, external_id, line_hash, duplicate_of_id, created_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NOW()
		);
	`

	queryStatementLineGetByID = `SELECT
		  id,
		  statement_id,
		  company_id,
		  transaction_date,
		  COALESCE(description, '') as description,
		  COALESCE(reference_number, '') as reference_number,
		  amount,
		  balance_after,
		  COALESCE(external_id, '') as external_id,
		  COALESCE(line_hash, '') as line_hash,
		  COALESCE(duplicate_of_id, '') as duplicate_of_id,
		  created_at
		FROM bank_statement_line
		WHERE id = $1;`

	queryStatementLineListByStatement = `SELECT
		  id,
		  statement_id,
		  company_id,
		  transaction_date,
		  COALESCE(description, '') as description,
		  COALESCE(reference_number, '') as reference_number,
		  amount,
		  balance_after,
		  COALESCE(external_id, '') as external_id,
		  COALESCE(line_hash, '') as line_hash,
		  COALESCE(duplicate_of_id, '') as duplicate_of_id,
		  created_at
		FROM bank_statement_line
		WHERE statement_id = $1
		ORDER BY transaction_date ASC, created_at ASC;`

	queryStatementLineFindByHash = `SELECT id
		FROM bank_statement_line
		WHERE statement_id = $1 AND line_hash = $2
		ORDER BY created_at ASC
		LIMIT 1;`

	queryStatementLineListUnmatched = `SELECT
		  l.id,
		  l.statement_id,
		  l.company_id,
		  l.transaction_date,
		  COALESCE(l.description, '') as description,
		  COALESCE(l.reference_number, '') as reference_number,
		  l.amount,
		  l.balance_after,
		  COALESCE(l.external_id, '') as external_id,
		  COALESCE(l.line_hash, '') as line_hash,
		  COALESCE(l.duplicate_of_id, '') as duplicate_of_id,
		  l.created_at
		FROM bank_statement_line l
		LEFT JOIN bank_reconciliation_match m
		  ON m.statement_line_id = l.id AND m.reconciliation_id = $2
		WHERE l.statement_id = $1
		  AND l.duplicate_of_id IS NULL
		  AND m.id IS NULL
		ORDER BY l.transaction_date ASC, l.created_at ASC;`
)
