package services

import (
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common/idgenerator"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common/publisher"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/config"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo     repositories.SQLRepository
	eventPub    publisher.Publisher
	idgenerator idgenerator.Generator

	common service

	Statement      *statement
	Reconciliation *reconciliation
	Matching       *matching
	Adjustment     *adjustment
	Summary        *summary
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	eventPub publisher.Publisher,
	idgenerator idgenerator.Generator,
) *Services {
	srv := &Services{
		conf:        conf,
		sqlRepo:     sqlRepo,
		eventPub:    eventPub,
		idgenerator: idgenerator,
	}
	srv.common.srv = srv
	srv.Statement = (*statement)(&srv.common)
	srv.Reconciliation = (*reconciliation)(&srv.common)
	srv.Matching = (*matching)(&srv.common)
	srv.Adjustment = (*adjustment)(&srv.common)
	srv.Summary = (*summary)(&srv.common)

	return srv
}
