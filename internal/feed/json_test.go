package feed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

const sampleExport = `{
  "accounts": [
    {
      "id": "checking",
      "name": "Everyday Checking",
      "currency": "USD",
      "balance": "1204.55",
      "transactions": [
        {
          "id": "t1",
          "posted": 1709290800,
          "amount": "-45.00",
          "description": "WHOLE FOODS #123",
          "payee": "Whole Foods",
          "memo": "card 1234",
          "pending": false
        },
        {
          "id": "t2",
          "posted": 1709377200,
          "amount": "2500.00",
          "description": "ACME CORP DIRECT DEPOSIT PAYROLL",
          "pending": true
        }
      ]
    },
    {
      "id": "savings",
      "name": "Savings",
      "currency": "USD",
      "balance": "9000.10",
      "transactions": [
        {
          "id": "t3",
          "posted": 1709290800,
          "amount": "100.10",
          "description": "TRANSFER FROM CHECKING",
          "category": "Transfer",
          "reason": "Auto-Transfer",
          "transfer_id": "t9"
        }
      ]
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	txns, err := ParseJSON(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "t1", txns[0].ID)
	assert.Equal(t, "checking", txns[0].AccountID)
	assert.Equal(t, "-45.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "Whole Foods", txns[0].Payee)
	assert.Equal(t, "card 1234", txns[0].Memo)
	assert.Equal(t, time.Unix(1709290800, 0).UTC(), txns[0].Posted)
	assert.False(t, txns[0].Pending)

	assert.True(t, txns[1].Pending)

	// Prior classification round-trips into kind and detail.
	assert.Equal(t, "savings", txns[2].AccountID)
	assert.Equal(t, model.ReasonAutoTransfer, txns[2].Reason.Kind)
	assert.Equal(t, "t9", txns[2].TransferID)
}

func TestParseJSONExactDecimal(t *testing.T) {
	// A value famously unrepresentable in binary floating point survives
	// the round trip exactly.
	export := `{"accounts":[{"id":"a","transactions":[
		{"id":"t1","posted":1709290800,"amount":"0.10","description":"x"},
		{"id":"t2","posted":1709290800,"amount":"-0.30","description":"y"}
	]}]}`

	txns, err := ParseJSON(strings.NewReader(export))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "0.1", txns[0].Amount.String())
	assert.Equal(t, "-0.3", txns[1].Amount.String())
	assert.True(t, txns[0].Amount.Add(txns[0].Amount).Add(txns[0].Amount).Equal(txns[1].Amount.Neg()))
}

func TestParseJSONBadAmount(t *testing.T) {
	export := `{"accounts":[{"id":"a","transactions":[
		{"id":"t1","posted":1709290800,"amount":"not-a-number","description":"x"}
	]}]}`

	txns, err := ParseJSON(strings.NewReader(export))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Amount.IsZero(), "unparseable amounts are carried as zero")
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	txns, err := ParseJSON(strings.NewReader(sampleExport))
	require.NoError(t, err)

	txns[0].Category = "Groceries"
	txns[0].Reason = model.Reason{Kind: model.ReasonPattern, Detail: "Whole Foods"}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, txns))
	assert.Contains(t, buf.String(), `"reason": "Pattern: Whole Foods"`)
	assert.Contains(t, buf.String(), `"amount": "-45"`)
}
