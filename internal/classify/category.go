package classify

import (
	"strings"

	"github.com/tallyhq/tally/internal/model"
)

// CategoryMatcher assigns spending categories to outgoing transactions by
// merchant-name substring containment.
type CategoryMatcher struct {
	table []CategoryPattern
}

// NewCategoryMatcher creates a matcher over the given category table.
func NewCategoryMatcher(table []CategoryPattern) *CategoryMatcher {
	return &CategoryMatcher{table: table}
}

// Detect proposes a spending category for the transaction. It never fires on
// positive amounts, on classifications at or above manual priority, or on
// transactions already categorized as transfer, income, or salary.
func (m *CategoryMatcher) Detect(txn model.Transaction) *Match {
	if !txn.Amount.IsNegative() {
		return nil
	}
	if txn.Reason.Kind.Priority() >= model.ReasonManual.Priority() {
		return nil
	}
	switch strings.ToLower(txn.Category) {
	case "transfer", "income", "salary":
		return nil
	}

	searchText := txn.SearchText()
	for _, cat := range m.table {
		for _, keyword := range cat.Keywords {
			if strings.Contains(searchText, strings.ToLower(keyword)) {
				return &Match{
					Category: cat.Name,
					Reason: model.Reason{
						Kind:   model.ReasonPattern,
						Detail: capitalizeWords(keyword),
					},
				}
			}
		}
	}
	return nil
}

// capitalizeWords uppercases the first letter of each space-separated word.
func capitalizeWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
