package repositories

var (
	queryReconciliationCreate = `
		INSERT INTO bank_reconciliation(
			id, company_id, statement_id, ledger_account_id, status,
			unmatched_statement_total, unmatched_internal_total, variance,
			notes, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		);
	`

	queryReconciliationColumns = `
		  id,
		  company_id,
		  statement_id,
		  ledger_account_id,
		  COALESCE(status, '') as status,
		  unmatched_statement_total,
		  unmatched_internal_total,
		  variance,
		  COALESCE(notes, '') as notes,
		  COALESCE(started_by, '') as started_by,
		  started_at,
		  COALESCE(completed_by, '') as completed_by,
		  completed_at,
		  locked_at,
		  created_at,
		  updated_at`

	queryReconciliationGetByID = `SELECT` + queryReconciliationColumns + `
		FROM bank_reconciliation
		WHERE id = $1;`

	queryReconciliationGetByStatementID = `SELECT` + queryReconciliationColumns + `
		FROM bank_reconciliation
		WHERE statement_id = $1;`

	queryReconciliationAcquireRowLock = `SELECT` + queryReconciliationColumns + `
		FROM bank_reconciliation
		WHERE id = $1
		FOR UPDATE;`

	queryReconciliationUpdateState = `UPDATE bank_reconciliation
		SET
		  status = $2,
		  notes = $3,
		  started_by = NULLIF($4, ''),
		  started_at = $5,
		  completed_by = NULLIF($6, ''),
		  completed_at = $7,
		  locked_at = $8,
		  updated_at = NOW()
		WHERE id = $1;`

	queryReconciliationUpdateVariance = `UPDATE bank_reconciliation
		SET
		  unmatched_statement_total = $2,
		  unmatched_internal_total = $3,
		  variance = $4,
		  updated_at = NOW()
		WHERE id = $1;`
)
