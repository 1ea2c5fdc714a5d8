// Package transfer pairs outgoing and incoming transactions across accounts
// that represent the same internal movement of money.
package transfer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tallyhq/tally/internal/model"
)

// DefaultWindowDays is the maximum posted-date spread between two legs of a
// transfer, in calendar days.
const DefaultWindowDays = 3

// Pair holds the batch indexes of one matched (outgoing, incoming) leg pair.
type Pair struct {
	Out int
	In  int
}

// Matcher finds transfer pairs within a batch of transactions.
type Matcher struct {
	windowDays int
}

// NewMatcher creates a matcher with the given date window. A negative window
// is a caller error and fails at construction.
func NewMatcher(windowDays int) (*Matcher, error) {
	if windowDays < 0 {
		return nil, fmt.Errorf("transfer window must not be negative, got %d", windowDays)
	}
	return &Matcher{windowDays: windowDays}, nil
}

// Match returns disjoint (outgoing, incoming) pairs without mutating the
// batch. Pending and already-linked transactions are excluded up front, so
// re-running over a correctly linked batch yields no pairs. Matching is
// greedy first-fit in batch order: each outgoing leg takes the earliest
// eligible incoming leg.
func (m *Matcher) Match(txns []model.Transaction) []Pair {
	var outgoing, incoming []int
	for i := range txns {
		if txns[i].Pending || txns[i].Linked() {
			continue
		}
		switch {
		case txns[i].Amount.IsNegative():
			outgoing = append(outgoing, i)
		case txns[i].Amount.IsPositive():
			incoming = append(incoming, i)
		}
	}

	var pairs []Pair
	consumed := make(map[int]bool, len(incoming))
	for _, oi := range outgoing {
		out := &txns[oi]
		for _, ii := range incoming {
			if consumed[ii] {
				continue
			}
			in := &txns[ii]
			if in.AccountID == out.AccountID {
				continue
			}
			if !out.Amount.Neg().Equal(in.Amount) {
				continue
			}
			if daysApart(out.Posted, in.Posted) > m.windowDays {
				continue
			}
			pairs = append(pairs, Pair{Out: oi, In: ii})
			consumed[ii] = true
			break
		}
	}
	return pairs
}

// Link writes the mutual transfer links for each pair, setting both legs to
// the transfer category. Any prior classification on a matched leg is
// overwritten.
func (m *Matcher) Link(txns []model.Transaction, pairs []Pair) {
	for _, p := range pairs {
		out, in := &txns[p.Out], &txns[p.In]
		out.TransferID = in.ID
		in.TransferID = out.ID
		for _, txn := range []*model.Transaction{out, in} {
			txn.Category = model.CategoryTransfer
			txn.Reason = model.Reason{Kind: model.ReasonAutoTransfer}
		}
		slog.Debug("Linked transfer pair",
			"out", out.ID,
			"in", in.ID,
			"amount", in.Amount.String())
	}
}

// daysApart returns the whole calendar days between two timestamps,
// ignoring time of day.
func daysApart(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}
