package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common/cache"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/config"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	xlog "bitbucket.org/Amartha/go-x/log"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	str *statementRepository
	rr  *reconciliationRepository
	mr  *matchRepository
	adr *adjustmentRepository
	jr  *journalRepository
	ar  *accountRepository
	sr  *sourceRepository

	cacheAccount cache.Client[models.ChartOfAccount]
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.str = (*statementRepository)(&rtx.common)
	rtx.rr = (*reconciliationRepository)(&rtx.common)
	rtx.mr = (*matchRepository)(&rtx.common)
	rtx.adr = (*adjustmentRepository)(&rtx.common)
	rtx.jr = (*journalRepository)(&rtx.common)
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.sr = (*sourceRepository)(&rtx.common)

	rtx.cacheAccount = cache.NewInMemoryClient[models.ChartOfAccount]()

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetStatementRepository() StatementRepository
	GetReconciliationRepository() ReconciliationRepository
	GetMatchRepository() MatchRepository
	GetAdjustmentRepository() AdjustmentRepository
	GetJournalRepository() JournalRepository
	GetAccountRepository() AccountRepository
	GetSourceRepository() SourceRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
				}
			}

			xlog.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetStatementRepository() StatementRepository {
	return r.str
}

func (r *Repository) GetReconciliationRepository() ReconciliationRepository {
	return r.rr
}

func (r *Repository) GetMatchRepository() MatchRepository {
	return r.mr
}

func (r *Repository) GetAdjustmentRepository() AdjustmentRepository {
	return r.adr
}

func (r *Repository) GetJournalRepository() JournalRepository {
	return r.jr
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetSourceRepository() SourceRepository {
	return r.sr
}
