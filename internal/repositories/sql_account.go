package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common/cache"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/monitoring"
)

type AccountRepository interface {
	Create(ctx context.Context, account models.ChartOfAccount) (err error)
	GetByID(ctx context.Context, id string) (result models.ChartOfAccount, err error)
	GetCachedByID(ctx context.Context, id string) (result models.ChartOfAccount, err error)

	// FindByRole resolves the counter account for an adjustment role. It
	// tries type plus subtype first, then the role's name patterns. A miss
	// returns ErrDataNotFound so callers can fall back to creation.
	FindByRole(ctx context.Context, companyID string, role models.AccountRole) (result models.ChartOfAccount, err error)

	NextAccountNumber(ctx context.Context, companyID string) (number string, err error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (ar *accountRepository) Create(ctx context.Context, account models.ChartOfAccount) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryAccountCreate,
		account.ID,
		account.CompanyID,
		account.AccountNumber,
		account.Name,
		account.Type,
		account.Subtype,
		account.IsActive,
	)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func (ar *accountRepository) GetByID(ctx context.Context, id string) (result models.ChartOfAccount, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	err = scanAccount(db.QueryRowContext(ctx, queryAccountGetByID, id), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrDataNotFound
		}
		return
	}

	return
}

func (ar *accountRepository) GetCachedByID(ctx context.Context, id string) (result models.ChartOfAccount, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return ar.r.cacheAccount.GetOrSet(ctx, cache.GetOrSetOpts[models.ChartOfAccount]{
		Key: fmt.Sprintf("account:%s", id),
		TTL: ar.r.config.Reconciliation.AccountCacheTTL,
		Callback: func() (models.ChartOfAccount, error) {
			return ar.GetByID(ctx, id)
		},
	})
}

func (ar *accountRepository) FindByRole(ctx context.Context, companyID string, role models.AccountRole) (result models.ChartOfAccount, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	if role.Subtype != "" {
		query, args, buildErr := buildAccountSubtypeQuery(companyID, role)
		if buildErr != nil {
			err = fmt.Errorf("failed to build query: %w", buildErr)
			return
		}

		err = scanAccount(db.QueryRowContext(ctx, query, args...), &result)
		if err == nil {
			return
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return
		}
	}

	query, args, buildErr := buildAccountNamePatternQuery(companyID, role)
	if buildErr != nil {
		err = fmt.Errorf("failed to build query: %w", buildErr)
		return
	}

	err = scanAccount(db.QueryRowContext(ctx, query, args...), &result)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = common.ErrDataNotFound
		}
		return
	}

	return
}

func (ar *accountRepository) NextAccountNumber(ctx context.Context, companyID string) (number string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	var next int
	err = db.QueryRowContext(ctx, queryAccountNextNumber, companyID, ar.r.config.Reconciliation.DefaultAccountNumberStart).Scan(&next)
	if err != nil {
		return
	}

	number = strconv.Itoa(next)
	return
}

func scanAccount(row rowScanner, account *models.ChartOfAccount) error {
	return row.Scan(
		&account.ID,
		&account.CompanyID,
		&account.AccountNumber,
		&account.Name,
		&account.Type,
		&account.Subtype,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
}
