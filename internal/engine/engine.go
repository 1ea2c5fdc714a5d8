// Package engine implements the rule engine that classifies transaction
// batches through the priority chain: user rule, manual, transfer link,
// credit card payment, income pattern, merchant category, default.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tallyhq/tally/internal/classify"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/internal/transfer"
)

// Engine orchestrates batch classification. It is the single entry point:
// the transfer pass runs over the whole batch first, then every transaction
// walks the detector chain in priority order.
type Engine struct {
	store    service.RuleStore
	matcher  *transfer.Matcher
	income   *classify.IncomeDetector
	ccPay    *classify.CCPaymentDetector
	category *classify.CategoryMatcher
}

// Config holds configuration options for the engine.
type Config struct {
	IncomePatterns     []classify.IncomePattern
	CCPaymentPhrases   []string
	CategoryPatterns   []classify.CategoryPattern
	TransferWindowDays int
}

// DefaultConfig returns the built-in pattern tables and transfer window.
func DefaultConfig() Config {
	return Config{
		IncomePatterns:     classify.DefaultIncomePatterns(),
		CCPaymentPhrases:   classify.DefaultCCPaymentPhrases(),
		CategoryPatterns:   classify.DefaultCategoryPatterns(),
		TransferWindowDays: transfer.DefaultWindowDays,
	}
}

// New creates an engine with the default configuration.
func New(store service.RuleStore) (*Engine, error) {
	return NewWithConfig(store, DefaultConfig())
}

// NewWithConfig creates an engine with custom pattern tables. Caller-input
// violations fail here, not per record.
func NewWithConfig(store service.RuleStore, config Config) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("rule store is required")
	}
	matcher, err := transfer.NewMatcher(config.TransferWindowDays)
	if err != nil {
		return nil, err
	}
	return &Engine{
		store:    store,
		matcher:  matcher,
		income:   classify.NewIncomeDetector(config.IncomePatterns),
		ccPay:    classify.NewCCPaymentDetector(config.CCPaymentPhrases),
		category: classify.NewCategoryMatcher(config.CategoryPatterns),
	}, nil
}

// Stats summarizes a classification run.
type Stats struct {
	ByKind        map[model.ReasonKind]int
	Total         int
	TransferPairs int
}

// ClassifyBatch classifies every transaction in the batch in place. It is
// idempotent: re-running over already-classified data changes nothing.
func (e *Engine) ClassifyBatch(ctx context.Context, txns []model.Transaction) (*Stats, error) {
	rules, err := e.store.ActiveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user rules: %w", err)
	}

	pairs := e.matcher.Match(txns)
	e.matcher.Link(txns, pairs)

	stats := &Stats{
		ByKind:        make(map[model.ReasonKind]int),
		Total:         len(txns),
		TransferPairs: len(pairs),
	}
	for i := range txns {
		kind := e.classifyOne(&txns[i], rules)
		stats.ByKind[kind]++
	}

	slog.Info("Classified batch",
		"transactions", stats.Total,
		"transfer_pairs", stats.TransferPairs,
		"rules", len(rules))
	return stats, nil
}

// classifyOne walks a single transaction through the priority chain and
// returns the priority level that decided it. Each step short-circuits.
func (e *Engine) classifyOne(txn *model.Transaction, rules []model.Rule) model.ReasonKind {
	// User rules are the ceiling of the priority order, so no overwrite
	// check is needed; a rule replaces even a manual classification.
	for i := range rules {
		if rules[i].Matches(*txn) {
			applyRule(txn, &rules[i])
			return model.ReasonPayeeRule
		}
	}

	if txn.Reason.Kind == model.ReasonManual {
		return model.ReasonManual
	}

	// Transfer classification was already written by the batch-wide pass.
	if txn.Linked() {
		return model.ReasonAutoTransfer
	}

	if match := e.ccPay.Detect(*txn); match != nil {
		txn.Category = match.Category
		txn.Reason = match.Reason
		return model.ReasonAutoCCPayment
	}

	if match := e.income.Detect(*txn); match != nil {
		txn.Category = match.Category
		txn.Reason = match.Reason
		return model.ReasonPattern
	}

	if match := e.category.Detect(*txn); match != nil {
		txn.Category = match.Category
		txn.Reason = match.Reason
		return model.ReasonPattern
	}

	if txn.Category == "" {
		if txn.Amount.IsNegative() {
			txn.Category = model.CategoryExpense
		} else {
			txn.Category = model.CategoryIncome
		}
		txn.Reason = model.Reason{Kind: model.ReasonDefault}
		return model.ReasonDefault
	}

	// Already classified on a previous run; nothing to change.
	return txn.Reason.Kind
}

func applyRule(txn *model.Transaction, rule *model.Rule) {
	txn.Category = rule.Category
	txn.Reason = model.Reason{Kind: model.ReasonPayeeRule, Detail: rule.Payee}
	txn.Ignored = rule.Type == model.RuleTypeIgnored
}

// SetManual records an explicit user category choice on the transaction.
func (e *Engine) SetManual(txn *model.Transaction, category string) {
	txn.Category = category
	txn.Reason = model.Reason{Kind: model.ReasonManual}
}

// ApplyCorrection applies a user correction to the identified transaction.
// With applyToAll set it synthesizes a persistent rule from the
// transaction's payee, saves it, and applies it across the batch; otherwise
// the correction stays a one-off manual classification.
func (e *Engine) ApplyCorrection(ctx context.Context, txns []model.Transaction, txnID, category string, ruleType model.RuleType, applyToAll bool) (*model.Rule, error) {
	idx := -1
	for i := range txns {
		if txns[i].ID == txnID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("transaction %s not found in batch", txnID)
	}

	if !applyToAll {
		e.SetManual(&txns[idx], category)
		return nil, nil
	}

	rule, err := model.NewRuleFromTransaction(txns[idx], category, ruleType)
	if err != nil {
		return nil, err
	}
	if err := e.store.SaveRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to save synthesized rule: %w", err)
	}
	slog.Info("Synthesized rule from correction",
		"rule_id", rule.ID,
		"payee", rule.Payee,
		"category", rule.Category)

	for i := range txns {
		if rule.Matches(txns[i]) {
			applyRule(&txns[i], rule)
		}
	}
	return rule, nil
}
