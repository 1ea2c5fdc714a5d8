package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rule is a user-authored override that matches transactions by payee
// substring. Rules are never auto-deleted; inactive rules are skipped.
type Rule struct {
	CreatedAt time.Time
	ID        string
	Payee     string // case-insensitive substring, matched against payee and description
	Category  string
	Type      RuleType
	Active    bool
}

// Matches reports whether the rule's payee pattern is contained in the
// transaction's payee or description.
func (r *Rule) Matches(txn Transaction) bool {
	if !r.Active || r.Payee == "" {
		return false
	}
	pattern := strings.ToLower(r.Payee)
	return strings.Contains(strings.ToLower(txn.Payee), pattern) ||
		strings.Contains(strings.ToLower(txn.Description), pattern)
}

// NewRule creates an active rule with a fresh identifier.
func NewRule(payee, category string, ruleType RuleType) (*Rule, error) {
	payee = strings.TrimSpace(payee)
	if payee == "" {
		return nil, fmt.Errorf("rule payee pattern is required")
	}
	if category == "" {
		return nil, fmt.Errorf("rule category is required")
	}
	if !ruleType.Valid() {
		return nil, fmt.Errorf("invalid rule type: %q", ruleType)
	}
	return &Rule{
		ID:        uuid.NewString(),
		Payee:     payee,
		Category:  category,
		Type:      ruleType,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewRuleFromTransaction synthesizes a rule from a user correction, taking
// the payee from the transaction's payee field or, when that is absent, the
// first word of at least three characters from its description.
func NewRuleFromTransaction(txn Transaction, category string, ruleType RuleType) (*Rule, error) {
	payee := strings.TrimSpace(txn.Payee)
	if payee == "" {
		for _, word := range strings.Fields(txn.Description) {
			if len(word) >= 3 {
				payee = word
				break
			}
		}
	}
	if payee == "" {
		return nil, fmt.Errorf("transaction %s has no usable payee or description", txn.ID)
	}
	return NewRule(payee, category, ruleType)
}
