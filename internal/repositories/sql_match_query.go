package repositories

var (
	queryMatchCreate = `
		INSERT INTO bank_reconciliation_match(
			id, reconciliation_id, statement_line_id, source_type, source_id,
			amount, auto_matched, confidence_score, matched_by, matched_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		);
	`

	queryMatchColumns = `
		  id,
		  reconciliation_id,
		  statement_line_id,
		  source_type,
		  source_id,
		  amount,
		  auto_matched,
		  confidence_score,
		  COALESCE(matched_by, '') as matched_by,
		  matched_at`

	queryMatchGetByID = `SELECT` + queryMatchColumns + `
		FROM bank_reconciliation_match
		WHERE id = $1;`

	queryMatchListByReconciliation = `SELECT` + queryMatchColumns + `
		FROM bank_reconciliation_match
		WHERE reconciliation_id = $1
		ORDER BY matched_at ASC, id ASC;`

	queryMatchDeleteByID = `DELETE FROM bank_reconciliation_match WHERE id = $1;`

	queryMatchDeleteByStatementLine = `DELETE FROM bank_reconciliation_match
		WHERE reconciliation_id = $1 AND statement_line_id = $2;`
)
