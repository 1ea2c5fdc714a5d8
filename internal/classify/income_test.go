package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

func amt(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestIncomeDetector(t *testing.T) {
	detector := NewIncomeDetector(DefaultIncomePatterns())

	tests := []struct {
		name      string
		txn       model.Transaction
		wantLabel string
		wantMatch bool
	}{
		{
			name: "payroll direct deposit",
			txn: model.Transaction{
				Amount:      decimal.RequireFromString("2500.00"),
				Description: "ACME CORP DIRECT DEPOSIT PAYROLL",
			},
			wantMatch: true,
			wantLabel: "Payroll",
		},
		{
			name: "tax refund",
			txn: model.Transaction{
				Amount:      decimal.RequireFromString("840.00"),
				Description: "IRS TREAS 310",
			},
			wantMatch: true,
			wantLabel: "Tax Refund",
		},
		{
			name: "dividend via memo",
			txn: model.Transaction{
				Amount: decimal.RequireFromString("12.34"),
				Memo:   "quarterly dividend",
			},
			wantMatch: true,
			wantLabel: "Dividend",
		},
		{
			name: "negative amount never fires",
			txn: model.Transaction{
				Amount:      decimal.RequireFromString("-2500.00"),
				Description: "PAYROLL REVERSAL",
			},
			wantMatch: false,
		},
		{
			name: "zero amount never fires",
			txn: model.Transaction{
				Amount:      decimal.Zero,
				Description: "PAYROLL",
			},
			wantMatch: false,
		},
		{
			name: "ignored transaction skipped",
			txn: model.Transaction{
				Amount:      decimal.RequireFromString("2500.00"),
				Description: "PAYROLL",
				Ignored:     true,
			},
			wantMatch: false,
		},
		{
			name: "transfer category skipped",
			txn: model.Transaction{
				Amount:      decimal.RequireFromString("2500.00"),
				Description: "PAYROLL",
				Category:    "Transfer",
			},
			wantMatch: false,
		},
		{
			name: "no pattern",
			txn: model.Transaction{
				Amount:      decimal.RequireFromString("10.00"),
				Description: "SOMETHING UNRELATED",
			},
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := detector.Detect(tt.txn)
			if !tt.wantMatch {
				assert.Nil(t, match)
				return
			}
			require.NotNil(t, match)
			assert.Equal(t, model.CategoryIncome, match.Category)
			assert.Equal(t, model.ReasonPattern, match.Reason.Kind)
			assert.Equal(t, tt.wantLabel, match.Reason.Detail)
			assert.Equal(t, "Pattern: "+tt.wantLabel, match.Reason.String())
		})
	}
}

func TestIncomeDetectorFirstMatchWins(t *testing.T) {
	// "DIRECT DEPOSIT PAYROLL" matches both Payroll and Direct Deposit;
	// declared order decides, with no scoring.
	detector := NewIncomeDetector(DefaultIncomePatterns())
	match := detector.Detect(model.Transaction{
		Amount:      amt(t, "100.00"),
		Description: "DIRECT DEPOSIT PAYROLL",
	})
	require.NotNil(t, match)
	assert.Equal(t, "Payroll", match.Reason.Detail)
}

func TestIncomeDetectorSkipsInvalidPatterns(t *testing.T) {
	detector := NewIncomeDetector([]IncomePattern{
		{Label: "Broken", Regex: `[invalid`},
		{Label: "Payroll", Regex: `\bPAYROLL\b`},
	})
	assert.Equal(t, 1, detector.PatternCount())

	match := detector.Detect(model.Transaction{
		Amount:      amt(t, "100.00"),
		Description: "PAYROLL",
	})
	require.NotNil(t, match)
	assert.Equal(t, "Payroll", match.Reason.Detail)
}
