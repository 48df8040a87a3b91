package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MatchingConfig carries the matching engine thresholds. The zero value is
// not usable; start from DefaultMatchingConfig and apply overrides.
type MatchingConfig struct {
	ExactAmountThreshold      decimal.Decimal
	DateToleranceDays         int
	HighConfidenceThreshold   float64
	MediumConfidenceThreshold float64
	LowConfidenceThreshold    float64
}

func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		ExactAmountThreshold:      decimal.RequireFromString("0.01"),
		DateToleranceDays:         7,
		HighConfidenceThreshold:   0.9,
		MediumConfidenceThreshold: 0.7,
		LowConfidenceThreshold:    0.5,
	}
}

// MatchingOverrides are optional per-invocation replacements of the config
// defaults. Nil fields keep the default.
type MatchingOverrides struct {
	ExactAmountThreshold      *decimal.Decimal
	DateToleranceDays         *int
	HighConfidenceThreshold   *float64
	MediumConfidenceThreshold *float64
	LowConfidenceThreshold    *float64
}

func (c MatchingConfig) Apply(overrides *MatchingOverrides) MatchingConfig {
	if overrides == nil {
		return c
	}

	if overrides.ExactAmountThreshold != nil {
		c.ExactAmountThreshold = *overrides.ExactAmountThreshold
	}
	if overrides.DateToleranceDays != nil {
		c.DateToleranceDays = *overrides.DateToleranceDays
	}
	if overrides.HighConfidenceThreshold != nil {
		c.HighConfidenceThreshold = *overrides.HighConfidenceThreshold
	}
	if overrides.MediumConfidenceThreshold != nil {
		c.MediumConfidenceThreshold = *overrides.MediumConfidenceThreshold
	}
	if overrides.LowConfidenceThreshold != nil {
		c.LowConfidenceThreshold = *overrides.LowConfidenceThreshold
	}

	return c
}

// MatchCandidate is one scored candidate source for a statement line.
type MatchCandidate struct {
	SourceType SourceType
	SourceID   string
	Confidence float64
}

// DedupAndSortCandidates removes duplicate (source_type, source_id) pairs,
// keeping the highest confidence, and orders the result by confidence
// descending. Ordering between equal confidences is stable.
func DedupAndSortCandidates(candidates []MatchCandidate) []MatchCandidate {
	best := make(map[string]MatchCandidate, len(candidates))
	order := make([]string, 0, len(candidates))

	for _, c := range candidates {
		key := string(c.SourceType) + ":" + c.SourceID
		existing, seen := best[key]
		if !seen {
			order = append(order, key)
			best[key] = c
			continue
		}
		if c.Confidence > existing.Confidence {
			best[key] = c
		}
	}

	result := make([]MatchCandidate, 0, len(best))
	for _, key := range order {
		result = append(result, best[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Confidence > result[j].Confidence
	})

	return result
}

// AutoMatchResult summarizes one auto-match run.
type AutoMatchResult struct {
	LinesConsidered int
	Matches         []BankReconciliationMatch
	Variance        VarianceResult
}

// SourceRef is the minimal projection of any matchable source, used to
// validate manual matches against existence and company ownership.
type SourceRef struct {
	ID        string
	CompanyID string
	Amount    decimal.Decimal
}

// Candidate source projections returned by the source repository. Only the
// fields the confidence calculators consume are loaded.

type PaymentSource struct {
	ID          string
	CompanyID   string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Reference   string
}

type InvoiceSource struct {
	ID            string
	CompanyID     string
	Total         decimal.Decimal
	InvoiceNumber string
	InvoiceDate   time.Time
	CustomerName  string
	Status        string
}

type JournalEntrySource struct {
	ID          string
	CompanyID   string
	JournalDate time.Time
	Description string
}

type CreditNoteSource struct {
	ID               string
	CompanyID        string
	Total            decimal.Decimal
	CreditNoteNumber string
	CustomerName     string
	Status           string
}
