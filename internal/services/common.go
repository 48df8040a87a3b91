package services

import (
	"context"
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common/publisher"
	"bitbucket.org/Amartha/go-fp-reconciliation/internal/models"
	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/shopspring/decimal"
)

func checkDatabaseError(err error, notFound ...error) error {
	if errors.Is(err, common.ErrNoRows) {
		if len(notFound) > 0 {
			return notFound[0]
		}
		return common.ErrDataNotFound
	}

	return err
}

// matchingConfig merges the app level thresholds over the hard defaults.
// Zero values in the config keep the default.
func (s *Services) matchingConfig() models.MatchingConfig {
	cfg := models.DefaultMatchingConfig()
	appCfg := s.conf.Matching

	if appCfg.ExactAmountThreshold > 0 {
		cfg.ExactAmountThreshold = decimal.NewFromFloat(appCfg.ExactAmountThreshold)
	}
	if appCfg.DateToleranceDays > 0 {
		cfg.DateToleranceDays = appCfg.DateToleranceDays
	}
	if appCfg.HighConfidenceThreshold > 0 {
		cfg.HighConfidenceThreshold = appCfg.HighConfidenceThreshold
	}
	if appCfg.MediumConfidenceThreshold > 0 {
		cfg.MediumConfidenceThreshold = appCfg.MediumConfidenceThreshold
	}
	if appCfg.LowConfidenceThreshold > 0 {
		cfg.LowConfidenceThreshold = appCfg.LowConfidenceThreshold
	}

	return cfg
}

// publishEvent sends one reconciliation event, keyed by reconciliation so
// consumers see per-reconciliation ordering. Publish failures are logged and
// swallowed; the state change already committed.
func (s *Services) publishEvent(ctx context.Context, eventType string, recon models.BankReconciliation, payload interface{}) {
	event := models.ReconciliationEvent{
		EventID:          s.idgenerator.Generate("evt"),
		EventType:        eventType,
		ReconciliationID: recon.ID,
		CompanyID:        recon.CompanyID,
		OccurredAt:       common.Now(),
		Payload:          payload,
	}

	err := s.eventPub.Publish(ctx, event,
		publisher.WithKey(recon.ID),
		publisher.WithHeaders(map[string]string{"event_type": eventType}),
	)
	if err != nil {
		xlog.Warn(ctx, fmt.Sprintf("[RECON-EVENT] failed to publish %s", eventType), xlog.Err(err))
	}
}
