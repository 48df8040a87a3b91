package repositories

var (
	queryJournalEntryCreate = `
		INSERT INTO journal_entry(
			id, company_id, journal_date, description, source_type, source_id,
			status, created_by, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		);
	`

	queryJournalEntryGetByID = `SELECT
		  id,
		  company_id,
		  journal_date,
		  COALESCE(description, '') as description,
		  COALESCE(source_type, '') as source_type,
		  COALESCE(source_id, '') as source_id,
		  COALESCE(status, '') as status,
		  COALESCE(created_by, '') as created_by,
		  created_at,
		  updated_at
		FROM journal_entry
		WHERE id = $1;`

	queryJournalTransactionCreate = `
		INSERT INTO journal_transaction(
			id, journal_entry_id, account_id, debit, credit, created_at
		)
		VALUES(
			$1, $2, $3, $4, $5, NOW()
		);
	`

	queryJournalTransactionListByEntry = `SELECT
		  id,
		  journal_entry_id,
		  account_id,
		  debit,
		  credit,
		  created_at
		FROM journal_transaction
		WHERE journal_entry_id = $1
		ORDER BY created_at ASC, id ASC;`

	queryJournalEntryUpdate = `UPDATE journal_entry
		SET
		  journal_date = $2,
		  description = $3,
		  updated_at = NOW()
		WHERE id = $1;`

	queryJournalTransactionUpdateAmounts = `UPDATE journal_transaction
		SET
		  debit = $2,
		  credit = $3
		WHERE id = $1;`

	queryJournalTransactionDeleteByEntry = `DELETE FROM journal_transaction WHERE journal_entry_id = $1;`

	queryJournalEntryDeleteByID = `DELETE FROM journal_entry WHERE id = $1;`
)
