package model

// Semantic categories assigned by the engine itself. Spending categories
// (Groceries, Dining, ...) come from the merchant pattern table.
const (
	CategoryIncome   = "Income"
	CategoryExpense  = "Expense"
	CategoryTransfer = "Transfer"
)

// RuleType is the semantic type a user rule assigns to matching transactions.
type RuleType string

// Rule type constants.
const (
	RuleTypeIncome   RuleType = "income"
	RuleTypeExpense  RuleType = "expense"
	RuleTypeTransfer RuleType = "transfer"
	RuleTypeIgnored  RuleType = "ignored"
)

// Valid reports whether the rule type is one of the known values.
func (t RuleType) Valid() bool {
	switch t {
	case RuleTypeIncome, RuleTypeExpense, RuleTypeTransfer, RuleTypeIgnored:
		return true
	}
	return false
}
