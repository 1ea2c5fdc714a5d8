// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single financial transaction from the aggregation feed.
// The feed owns every field except the classification fields (Category, Reason,
// Ignored, TransferID), which are written by the rule engine.
type Transaction struct {
	Posted      time.Time
	ID          string
	AccountID   string
	Description string // Raw transaction description
	Payee       string
	Memo        string
	Category    string
	TransferID  string // ID of the matched transfer counterpart, empty if unlinked
	Reason      Reason
	Amount      decimal.Decimal // Signed; negative for outgoing money
	Pending     bool
	Ignored     bool
}

// Linked reports whether the transaction carries a transfer link.
func (t *Transaction) Linked() bool {
	return t.TransferID != ""
}

// SearchText returns the lowercased concatenation of the transaction's
// free-text fields, the haystack every pattern detector scans.
func (t *Transaction) SearchText() string {
	return strings.ToLower(strings.TrimSpace(
		t.Description + " " + t.Payee + " " + t.Memo))
}

// GenerateHash creates a unique hash for duplicate detection across imports.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s",
		t.Posted.Format("2006-01-02"),
		t.Amount.String(),
		t.Description,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
