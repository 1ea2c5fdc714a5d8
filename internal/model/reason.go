package model

import (
	"encoding/json"
	"strings"
)

// ReasonKind enumerates how a classification was produced. The zero value
// means no classification has been applied yet.
type ReasonKind int

// Reason kinds, in ascending priority order.
const (
	ReasonNone ReasonKind = iota
	ReasonDefault
	ReasonPattern
	ReasonAutoTransfer
	ReasonAutoCCPayment
	ReasonManual
	ReasonPayeeRule
)

// Priority returns the overwrite rank of the kind. An unclassified
// transaction ranks with the default, the floor of the order.
func (k ReasonKind) Priority() int {
	switch k {
	case ReasonPayeeRule:
		return 5
	case ReasonManual:
		return 4
	case ReasonAutoCCPayment:
		return 3
	case ReasonAutoTransfer:
		return 2
	case ReasonPattern:
		return 1
	default:
		return 0
	}
}

// Reason records how a transaction was classified: the kind drives priority
// decisions, the detail carries the human-readable specifics (the matched
// pattern label or rule payee). Priority is never recovered by re-parsing
// the rendered string.
type Reason struct {
	Detail string
	Kind   ReasonKind
}

// String renders the tagged reason label stored alongside the transaction.
func (r Reason) String() string {
	switch r.Kind {
	case ReasonPayeeRule:
		return "Payee Rule: " + r.Detail
	case ReasonManual:
		return "Manual"
	case ReasonAutoCCPayment:
		return "Auto-CC Payment"
	case ReasonAutoTransfer:
		return "Auto-Transfer"
	case ReasonPattern:
		return "Pattern: " + r.Detail
	case ReasonDefault:
		return "Default"
	default:
		return ""
	}
}

// ParseReason recovers a Reason from its rendered label. Unrecognized
// non-empty labels rank as default, matching the floor of the priority order.
func ParseReason(s string) Reason {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case lower == "":
		return Reason{}
	case strings.HasPrefix(lower, "payee rule"):
		return Reason{Kind: ReasonPayeeRule, Detail: detailAfterColon(s)}
	case lower == "manual":
		return Reason{Kind: ReasonManual}
	case strings.Contains(lower, "auto-cc"), strings.Contains(lower, "cc payment"):
		return Reason{Kind: ReasonAutoCCPayment}
	case strings.Contains(lower, "auto-transfer"):
		return Reason{Kind: ReasonAutoTransfer}
	case strings.HasPrefix(lower, "pattern"):
		return Reason{Kind: ReasonPattern, Detail: detailAfterColon(s)}
	default:
		return Reason{Kind: ReasonDefault, Detail: s}
	}
}

func detailAfterColon(s string) string {
	if idx := strings.Index(s, ":"); idx >= 0 {
		return strings.TrimSpace(s[idx+1:])
	}
	return ""
}

// MarshalJSON renders the reason as its tagged label.
func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON parses a tagged label back into kind and detail.
func (r *Reason) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseReason(s)
	return nil
}
