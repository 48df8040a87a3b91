package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		MessageBroker  MessageBroker        `json:"message_broker"`
		Matching       MatchingConfig       `json:"matching"`
		Reconciliation ReconciliationConfig `json:"reconciliation"`
	}

	App struct {
		Env             string        `json:"env"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	MessageBroker struct {
		KafkaBrokers     []string `json:"kafka_brokers"`
		ReconEventsTopic string   `json:"recon_events_topic"`
	}

	// MatchingConfig carries the default thresholds of the matching engine.
	// All values can be overridden per auto-match invocation.
	MatchingConfig struct {
		ExactAmountThreshold      float64 `json:"exact_amount_threshold"`
		DateToleranceDays         int     `json:"date_tolerance_days"`
		HighConfidenceThreshold   float64 `json:"high_confidence_threshold"`
		MediumConfidenceThreshold float64 `json:"medium_confidence_threshold"`
		LowConfidenceThreshold    float64 `json:"low_confidence_threshold"`
	}

	ReconciliationConfig struct {
		// DefaultAccountNumberStart is the first account number handed out when
		// the adjustment poster has to synthesize a missing chart-of-accounts
		// entry for a company.
		DefaultAccountNumberStart int `json:"default_account_number_start"`

		// AccountCacheTTL bounds how long resolved chart-of-accounts entries
		// are reused before hitting the database again.
		AccountCacheTTL time.Duration `json:"account_cache_ttl"`
	}
)
