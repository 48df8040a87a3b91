package repositories

var (
	queryAdjustmentCreate = `
		INSERT INTO bank_reconciliation_adjustment(
			id, reconciliation_id, company_id, adjustment_type, amount,
			description, adjustment_date, statement_line_id, journal_entry_id,
			created_by, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, NOW(), NOW()
		);
	`

	queryAdjustmentColumns = `
		  id,
		  reconciliation_id,
		  company_id,
		  adjustment_type,
		  amount,
		  COALESCE(description, '') as description,
		  adjustment_date,
		  statement_line_id,
		  journal_entry_id,
		  COALESCE(created_by, '') as created_by,
		  created_at,
		  updated_at`

	queryAdjustmentGetByID = `SELECT` + queryAdjustmentColumns + `
		FROM bank_reconciliation_adjustment
		WHERE id = $1;`

	queryAdjustmentListByReconciliation = `SELECT` + queryAdjustmentColumns + `
		FROM bank_reconciliation_adjustment
		WHERE reconciliation_id = $1
		ORDER BY adjustment_date ASC, created_at ASC;`

	queryAdjustmentUpdate = `UPDATE bank_reconciliation_adjustment
		SET
		  amount = $2,
		  description = $3,
		  adjustment_date = $4,
		  updated_at = NOW()
		WHERE id = $1;`

	queryAdjustmentDeleteByID = `DELETE FROM bank_reconciliation_adjustment WHERE id = $1;`
)
