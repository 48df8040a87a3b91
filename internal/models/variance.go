package models

import "github.com/shopspring/decimal"

var varianceBalancedThreshold = decimal.RequireFromString("0.01")

type VarianceResult struct {
	PeriodAmount            decimal.Decimal `json:"period_amount"`
	MatchedTotal            decimal.Decimal `json:"matched_total"`
	AdjustmentTotal         decimal.Decimal `json:"adjustment_total"`
	UnmatchedStatementTotal decimal.Decimal `json:"unmatched_statement_total"`
	UnmatchedInternalTotal  decimal.Decimal `json:"unmatched_internal_total"`
	Variance                decimal.Decimal `json:"variance"`
	VariancePercentage      decimal.Decimal `json:"variance_percentage"`
	IsBalanced              bool            `json:"is_balanced"`
}

// CalculateVariance derives the reconciliation position from the statement
// period and the current set of matches and adjustments. The matched total is
// the sum of match amounts, which can differ from the underlying line amounts
// for manual matches. Internal activity is approximated from that total: it
// stands in for the internal transactions the lines were matched against.
func CalculateVariance(
	statement BankStatement,
	lines []BankStatementLine,
	matches []BankReconciliationMatch,
	adjustments []BankReconciliationAdjustment,
) VarianceResult {
	periodAmount := statement.PeriodAmount()

	matchedTotal := decimal.Zero
	matchedLineIDs := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		matchedTotal = matchedTotal.Add(m.Amount)
		matchedLineIDs[m.StatementLineID] = struct{}{}
	}

	unmatchedStatement := decimal.Zero
	for _, line := range lines {
		if _, ok := matchedLineIDs[line.ID]; !ok {
			unmatchedStatement = unmatchedStatement.Add(line.Amount)
		}
	}

	adjustmentTotal := decimal.Zero
	for _, adj := range adjustments {
		adjustmentTotal = adjustmentTotal.Add(adj.Amount)
	}

	unmatchedInternal := periodAmount.Sub(matchedTotal).Sub(adjustmentTotal)
	variance := unmatchedStatement.Sub(unmatchedInternal).Add(adjustmentTotal)

	variancePct := decimal.Zero
	if !periodAmount.IsZero() {
		variancePct = variance.Div(periodAmount.Abs()).Mul(decimal.NewFromInt(100))
	}

	return VarianceResult{
		PeriodAmount:            periodAmount,
		MatchedTotal:            matchedTotal,
		AdjustmentTotal:         adjustmentTotal,
		UnmatchedStatementTotal: unmatchedStatement,
		UnmatchedInternalTotal:  unmatchedInternal,
		Variance:                variance,
		VariancePercentage:      variancePct,
		IsBalanced:              variance.Abs().LessThanOrEqual(varianceBalancedThreshold),
	}
}

type SummaryStats struct {
	ReconciliationID    string          `json:"reconciliation_id"`
	Status              string          `json:"status"`
	TotalLines          int             `json:"total_lines"`
	MatchedLines        int             `json:"matched_lines"`
	UnmatchedLines      int             `json:"unmatched_lines"`
	DuplicateLines      int             `json:"duplicate_lines"`
	AutoMatched         int             `json:"auto_matched"`
	ManualMatched       int             `json:"manual_matched"`
	AutoMatchPercentage decimal.Decimal `json:"auto_match_percentage"`
	MatchesByConfidence map[string]int  `json:"matches_by_confidence"`
	AdjustmentCount     int             `json:"adjustment_count"`
	MatchedPercentage   decimal.Decimal `json:"matched_percentage"`
	Variance            VarianceResult  `json:"variance"`
	Recommendations     []string        `json:"recommendations"`
	ReadyForCompletion  bool            `json:"ready_for_completion"`
}

// BuildSummaryStats combines line counts, the auto versus manual match split
// and the variance position into the operator-facing progress view.
func BuildSummaryStats(
	recon BankReconciliation,
	lines []BankStatementLine,
	matches []BankReconciliationMatch,
	adjustments []BankReconciliationAdjustment,
	variance VarianceResult,
	cfg MatchingConfig,
) SummaryStats {
	var duplicates int
	for _, line := range lines {
		if line.DuplicateOfID != "" {
			duplicates++
		}
	}

	var auto int
	byConfidence := make(map[string]int, 4)
	for _, m := range matches {
		if m.AutoMatched {
			auto++
		}
		byConfidence[m.ConfidenceBand(cfg)]++
	}

	matched := len(matches)
	unmatched := len(lines) - matched

	matchedPct := decimal.Zero
	if len(lines) > 0 {
		matchedPct = decimal.NewFromInt(int64(matched)).
			Div(decimal.NewFromInt(int64(len(lines)))).
			Mul(decimal.NewFromInt(100))
	}

	autoPct := decimal.Zero
	if matched > 0 {
		autoPct = decimal.NewFromInt(int64(auto)).
			Div(decimal.NewFromInt(int64(matched))).
			Mul(decimal.NewFromInt(100))
	}

	stats := SummaryStats{
		ReconciliationID:    recon.ID,
		Status:              recon.Status,
		TotalLines:          len(lines),
		MatchedLines:        matched,
		UnmatchedLines:      unmatched,
		DuplicateLines:      duplicates,
		AutoMatched:         auto,
		ManualMatched:       matched - auto,
		AutoMatchPercentage: autoPct,
		MatchesByConfidence: byConfidence,
		AdjustmentCount:     len(adjustments),
		MatchedPercentage:   matchedPct,
		Variance:            variance,
		ReadyForCompletion:  recon.IsActive() && variance.Variance.IsZero(),
	}
	stats.Recommendations = buildRecommendations(stats)

	return stats
}

func buildRecommendations(stats SummaryStats) []string {
	var recs []string

	if stats.UnmatchedLines > 0 {
		recs = append(recs, "Match or adjust the remaining unmatched statement lines.")
	}
	if !stats.Variance.Variance.IsZero() {
		if stats.Variance.IsBalanced {
			recs = append(recs, "Variance is within tolerance but must be exactly zero before completion. Consider a timing adjustment.")
		} else {
			recs = append(recs, "Investigate the outstanding variance before completing the reconciliation.")
		}
	}
	if stats.DuplicateLines > 0 {
		recs = append(recs, "Review lines flagged as duplicates; they are excluded from matching.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Reconciliation is balanced and ready to complete.")
	}

	return recs
}

// BreakdownBucket groups statement lines for the summary breakdown view.
type BreakdownBucket struct {
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type Breakdown struct {
	BySourceType []BreakdownBucket `json:"by_source_type"`
	Adjustments  []BreakdownBucket `json:"adjustments"`
	Unmatched    BreakdownBucket   `json:"unmatched"`
}

func BuildBreakdown(
	lines []BankStatementLine,
	matches []BankReconciliationMatch,
	adjustments []BankReconciliationAdjustment,
) Breakdown {
	matchedLineIDs := make(map[string]struct{}, len(matches))
	bySource := make(map[SourceType]*BreakdownBucket, len(AllSourceTypes))
	for _, m := range matches {
		matchedLineIDs[m.StatementLineID] = struct{}{}

		bucket, ok := bySource[m.SourceType]
		if !ok {
			bucket = &BreakdownBucket{Label: string(m.SourceType), Amount: decimal.Zero}
			bySource[m.SourceType] = bucket
		}
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(m.Amount)
	}

	var breakdown Breakdown
	for _, st := range AllSourceTypes {
		if bucket, ok := bySource[st]; ok {
			breakdown.BySourceType = append(breakdown.BySourceType, *bucket)
		}
	}

	byAdjType := make(map[AdjustmentType]*BreakdownBucket, len(AllAdjustmentTypes))
	for _, adj := range adjustments {
		bucket, ok := byAdjType[adj.AdjustmentType]
		if !ok {
			bucket = &BreakdownBucket{Label: string(adj.AdjustmentType), Amount: decimal.Zero}
			byAdjType[adj.AdjustmentType] = bucket
		}
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(adj.Amount)
	}
	for _, at := range AllAdjustmentTypes {
		if bucket, ok := byAdjType[at]; ok {
			breakdown.Adjustments = append(breakdown.Adjustments, *bucket)
		}
	}

	breakdown.Unmatched = BreakdownBucket{Label: "unmatched", Amount: decimal.Zero}
	for _, line := range lines {
		if _, ok := matchedLineIDs[line.ID]; ok {
			continue
		}
		breakdown.Unmatched.Count++
		breakdown.Unmatched.Amount = breakdown.Unmatched.Amount.Add(line.Amount)
	}

	return breakdown
}
