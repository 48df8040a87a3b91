package models

import "time"

const (
	AccountTypeAsset   = "asset"
	AccountTypeExpense = "expense"
	AccountTypeRevenue = "revenue"

	AccountSubtypeBankFee          = "bank_fee"
	AccountSubtypeInterestIncome   = "interest_income"
	AccountSubtypeBadDebt          = "bad_debt"
	AccountSubtypeTimingAdjustment = "timing_adjustment"
)

type ChartOfAccount struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	AccountNumber string    `json:"account_number"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Subtype       string    `json:"subtype"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccountRole identifies the counter account needed to post one adjustment
// type. Resolution first tries type+subtype, then the name patterns, then
// falls back to creating the account with the default name.
type AccountRole struct {
	Type         string
	Subtype      string
	NamePatterns []string
	DefaultName  string
}

func CounterAccountRole(adjType AdjustmentType) AccountRole {
	switch adjType {
	case AdjustmentTypeBankFee:
		return AccountRole{
			Type:         AccountTypeExpense,
			Subtype:      AccountSubtypeBankFee,
			NamePatterns: []string{"%bank fee%", "%bank charges%"},
			DefaultName:  "Bank Fees",
		}
	case AdjustmentTypeInterest:
		return AccountRole{
			Type:         AccountTypeRevenue,
			Subtype:      AccountSubtypeInterestIncome,
			NamePatterns: []string{"%interest income%", "%interest earned%"},
			DefaultName:  "Interest Income",
		}
	case AdjustmentTypeWriteOff:
		return AccountRole{
			Type:         AccountTypeExpense,
			Subtype:      AccountSubtypeBadDebt,
			NamePatterns: []string{"%bad debt%", "%write-off%"},
			DefaultName:  "Bad Debt Expense",
		}
	default:
		return AccountRole{
			Type:         AccountTypeAsset,
			Subtype:      AccountSubtypeTimingAdjustment,
			NamePatterns: []string{"%timing adjustment%", "%bank clearing%", "%suspense%"},
			DefaultName:  "Bank Timing Adjustments",
		}
	}
}
