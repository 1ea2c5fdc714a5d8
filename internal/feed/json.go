// Package feed parses exported aggregation-feed documents into transaction
// batches. Only local documents are handled here; talking to the feed itself
// (auth, rate limits, date-range caps) belongs to the ingestion collaborator.
package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// Feed export wire types (account-set shape).
type accountSet struct {
	Accounts []account `json:"accounts"`
}

type account struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Balance      string        `json:"balance"`
	Transactions []transaction `json:"transactions"`
}

type transaction struct {
	ID          string `json:"id"`
	Posted      int64  `json:"posted"` // unix seconds
	Amount      string `json:"amount"` // exact decimal string
	Description string `json:"description"`
	Payee       string `json:"payee"`
	Memo        string `json:"memo"`
	Category    string `json:"category"`
	Reason      string `json:"reason"`
	TransferID  string `json:"transfer_id"`
	Pending     bool   `json:"pending"`
	Ignored     bool   `json:"ignored"`
}

// ParseJSON decodes a feed account-set export into a transaction batch,
// preserving batch order (accounts in document order, transactions in
// per-account order). Amounts are parsed with zero precision loss; a
// transaction whose amount cannot be parsed is carried with a zero amount.
func ParseJSON(r io.Reader) ([]model.Transaction, error) {
	var set accountSet
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedFeed, err)
	}

	var txns []model.Transaction
	for _, acct := range set.Accounts {
		for _, raw := range acct.Transactions {
			amount, err := decimal.NewFromString(raw.Amount)
			if err != nil {
				slog.Warn("Unparseable amount, treating as zero",
					"transaction_id", raw.ID,
					"amount", raw.Amount)
				amount = decimal.Zero
			}
			txns = append(txns, model.Transaction{
				ID:          raw.ID,
				AccountID:   acct.ID,
				Posted:      time.Unix(raw.Posted, 0).UTC(),
				Amount:      amount,
				Description: raw.Description,
				Payee:       raw.Payee,
				Memo:        raw.Memo,
				Category:    raw.Category,
				Reason:      model.ParseReason(raw.Reason),
				TransferID:  raw.TransferID,
				Pending:     raw.Pending,
				Ignored:     raw.Ignored,
			})
		}
	}

	slog.Info("Parsed feed export",
		"accounts", len(set.Accounts),
		"transactions", len(txns))
	return txns, nil
}

// classifiedTransaction is the output shape written back for the
// persistence collaborator.
type classifiedTransaction struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Posted      int64  `json:"posted"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Payee       string `json:"payee,omitempty"`
	Memo        string `json:"memo,omitempty"`
	Category    string `json:"category"`
	Reason      string `json:"reason"`
	TransferID  string `json:"transfer_id,omitempty"`
	Pending     bool   `json:"pending"`
	Ignored     bool   `json:"ignored"`
}

// WriteJSON writes the classified batch for downstream persistence, amounts
// rendered as exact decimal strings.
func WriteJSON(w io.Writer, txns []model.Transaction) error {
	out := make([]classifiedTransaction, len(txns))
	for i, txn := range txns {
		out[i] = classifiedTransaction{
			ID:          txn.ID,
			AccountID:   txn.AccountID,
			Posted:      txn.Posted.Unix(),
			Amount:      txn.Amount.String(),
			Description: txn.Description,
			Payee:       txn.Payee,
			Memo:        txn.Memo,
			Category:    txn.Category,
			Reason:      txn.Reason.String(),
			TransferID:  txn.TransferID,
			Pending:     txn.Pending,
			Ignored:     txn.Ignored,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write classified batch: %w", err)
	}
	return nil
}
