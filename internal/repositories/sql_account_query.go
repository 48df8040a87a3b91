package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
)

var (
	queryAccountCreate = `
		INSERT INTO chart_of_account(
			id, company_id, account_number, name, type, subtype, is_active,
			created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, NULLIF($6, ''), $7, NOW(), NOW()
		);
	`

	queryAccountColumns = `
		  id,
		  company_id,
		  account_number,
		  COALESCE(name, '') as name,
		  COALESCE(type, '') as type,
		  COALESCE(subtype, '') as subtype,
		  is_active,
		  created_at,
		  updated_at`

	queryAccountGetByID = `SELECT` + queryAccountColumns + `
		FROM chart_of_account
		WHERE id = $1;`

	queryAccountNextNumber = `SELECT COALESCE(MAX(account_number::int), $2 - 1) + 1
		FROM chart_of_account
		WHERE company_id = $1 AND account_number ~ '^[0-9]+$';`
)

func buildAccountSubtypeQuery(companyID string, role models.AccountRole) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	return psql.Select(accountColumnList()...).
		From("chart_of_account").
		Where(sq.Eq{"company_id": companyID}).
		Where(sq.Eq{"type": role.Type}).
		Where(sq.Eq{"subtype": role.Subtype}).
		Where(sq.Eq{"is_active": true}).
		OrderBy("account_number ASC").
		Limit(1).
		ToSql()
}

func buildAccountNamePatternQuery(companyID string, role models.AccountRole) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	patterns := make(sq.Or, 0, len(role.NamePatterns))
	for _, pattern := range role.NamePatterns {
		patterns = append(patterns, sq.ILike{"name": pattern})
	}

	return psql.Select(accountColumnList()...).
		From("chart_of_account").
		Where(sq.Eq{"company_id": companyID}).
		Where(sq.Eq{"type": role.Type}).
		Where(sq.Eq{"is_active": true}).
		Where(patterns).
		OrderBy("account_number ASC").
		Limit(1).
		ToSql()
}

func accountColumnList() []string {
	return []string{
		"id",
		"company_id",
		"account_number",
		"COALESCE(name, '') as name",
		"COALESCE(type, '') as type",
		"COALESCE(subtype, '') as subtype",
		"is_active",
		"created_at",
		"updated_at",
	}
}
