package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/Amartha/go-fp-reconciliation/internal/common"
)

func TestAdjustmentType_ApplySign(t *testing.T) {
	tests := []struct {
		name    string
		adjType AdjustmentType
		input   string
		want    string
	}{
		{name: "bank fee positive input", adjType: AdjustmentTypeBankFee, input: "25.50", want: "-25.5"},
		{name: "bank fee negative input", adjType: AdjustmentTypeBankFee, input: "-25.50", want: "-25.5"},
		{name: "interest positive input", adjType: AdjustmentTypeInterest, input: "12.75", want: "12.75"},
		{name: "interest negative input", adjType: AdjustmentTypeInterest, input: "-12.75", want: "12.75"},
		{name: "write off positive input", adjType: AdjustmentTypeWriteOff, input: "100", want: "-100"},
		{name: "write off negative input", adjType: AdjustmentTypeWriteOff, input: "-100", want: "-100"},
		{name: "timing keeps positive", adjType: AdjustmentTypeTiming, input: "40", want: "40"},
		{name: "timing keeps negative", adjType: AdjustmentTypeTiming, input: "-40", want: "-40"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.adjType.ApplySign(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAdjustmentType(t *testing.T) {
	for _, at := range AllAdjustmentTypes {
		got, err := ParseAdjustmentType(string(at))
		require.NoError(t, err)
		assert.Equal(t, at, got)
	}

	_, err := ParseAdjustmentType("refund")
	assert.ErrorIs(t, err, common.ErrInvalidAdjustmentType)
}

func TestAdjustmentJournalLegs(t *testing.T) {
	const bankID = "acct-bank"
	const counterID = "acct-counter"

	tests := []struct {
		name        string
		adjType     AdjustmentType
		signed      string
		wantDebitOn string
	}{
		{name: "bank fee debits expense", adjType: AdjustmentTypeBankFee, signed: "-25.50", wantDebitOn: counterID},
		{name: "write off debits expense", adjType: AdjustmentTypeWriteOff, signed: "-100", wantDebitOn: counterID},
		{name: "interest debits bank", adjType: AdjustmentTypeInterest, signed: "12.75", wantDebitOn: bankID},
		{name: "positive timing debits bank", adjType: AdjustmentTypeTiming, signed: "40", wantDebitOn: bankID},
		{name: "negative timing credits bank", adjType: AdjustmentTypeTiming, signed: "-40", wantDebitOn: counterID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legs := AdjustmentJournalLegs(tt.adjType, decimal.RequireFromString(tt.signed), bankID, counterID)
			require.Len(t, legs, 2)

			abs := decimal.RequireFromString(tt.signed).Abs()
			totalDebit := legs[0].Debit.Add(legs[1].Debit)
			totalCredit := legs[0].Credit.Add(legs[1].Credit)
			assert.True(t, totalDebit.Equal(totalCredit), "entry must balance")
			assert.True(t, totalDebit.Equal(abs))

			var debitAccount string
			for _, leg := range legs {
				if leg.Debit.IsPositive() {
					debitAccount = leg.AccountID
				}
			}
			assert.Equal(t, tt.wantDebitOn, debitAccount)
		})
	}
}

func TestCounterAccountRole(t *testing.T) {
	feeRole := CounterAccountRole(AdjustmentTypeBankFee)
	assert.Equal(t, AccountTypeExpense, feeRole.Type)
	assert.Equal(t, AccountSubtypeBankFee, feeRole.Subtype)
	assert.Contains(t, feeRole.NamePatterns, "%bank charges%")

	interestRole := CounterAccountRole(AdjustmentTypeInterest)
	assert.Equal(t, AccountTypeRevenue, interestRole.Type)
	assert.Equal(t, "Interest Income", interestRole.DefaultName)

	timingRole := CounterAccountRole(AdjustmentTypeTiming)
	assert.Equal(t, AccountTypeAsset, timingRole.Type)
	assert.Equal(t, AccountSubtypeTimingAdjustment, timingRole.Subtype)
	assert.Equal(t, "Bank Timing Adjustments", timingRole.DefaultName)
	assert.Contains(t, timingRole.NamePatterns, "%suspense%")
}
