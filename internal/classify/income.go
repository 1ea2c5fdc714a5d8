// Package classify provides the pattern-based transaction detectors: income
// regex detection, credit-card-payment phrase detection, and merchant
// category matching.
package classify

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/tallyhq/tally/internal/model"
)

// Match is a detector's proposed classification for a single transaction.
type Match struct {
	Category string
	Reason   model.Reason
}

type compiledIncomePattern struct {
	regex *regexp.Regexp
	label string
}

// IncomeDetector scans positive-amount transactions against an ordered list
// of income patterns.
type IncomeDetector struct {
	patterns []compiledIncomePattern
}

// NewIncomeDetector compiles the given patterns, preserving declared order.
// Patterns that fail to compile are skipped rather than failing the detector.
func NewIncomeDetector(patterns []IncomePattern) *IncomeDetector {
	compiled := make([]compiledIncomePattern, 0, len(patterns))
	for _, p := range patterns {
		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}
		regex, err := regexp.Compile(regexStr)
		if err != nil {
			slog.Debug("Skipping invalid income pattern",
				"label", p.Label,
				"error", err)
			continue
		}
		compiled = append(compiled, compiledIncomePattern{
			regex: regex,
			label: p.Label,
		})
	}
	return &IncomeDetector{patterns: compiled}
}

// Detect proposes an income classification for the transaction, or nil when
// no pattern matches or the transaction is out of scope for this detector.
func (d *IncomeDetector) Detect(txn model.Transaction) *Match {
	if !txn.Amount.IsPositive() || txn.Ignored {
		return nil
	}
	if strings.EqualFold(txn.Category, model.CategoryTransfer) {
		return nil
	}

	searchText := txn.SearchText()
	for _, p := range d.patterns {
		if p.regex.MatchString(searchText) {
			return &Match{
				Category: model.CategoryIncome,
				Reason:   model.Reason{Kind: model.ReasonPattern, Detail: p.label},
			}
		}
	}
	return nil
}

// PatternCount returns the number of successfully compiled patterns.
func (d *IncomeDetector) PatternCount() int {
	return len(d.patterns)
}
