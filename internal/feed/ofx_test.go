package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-45.00
<FITID>2024011501
<NAME>WHOLE FOODS #123
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>2500.00
<FITID>2024012001
<NAME>ACME CORP PAYROLL
<MEMO>DIRECT DEPOSIT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestOFXParserParse(t *testing.T) {
	parser := NewOFXParser()

	txns, err := parser.Parse(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "2024011501", txns[0].ID)
	assert.Equal(t, "1234567890", txns[0].AccountID)
	assert.Equal(t, "WHOLE FOODS #123", txns[0].Description)
	assert.Equal(t, "-45.00", txns[0].Amount.StringFixed(2))
	assert.True(t, txns[0].Amount.IsNegative())

	assert.Equal(t, "ACME CORP PAYROLL", txns[1].Description)
	assert.Equal(t, "DIRECT DEPOSIT", txns[1].Memo)
	assert.Equal(t, "2500.00", txns[1].Amount.StringFixed(2))
	assert.Equal(t, 2024, txns[1].Posted.Year())
}

func TestOFXParserInvalidInput(t *testing.T) {
	parser := NewOFXParser()

	_, err := parser.Parse(strings.NewReader("this is not an OFX document"))
	assert.Error(t, err)
}

func TestPreprocessOFX(t *testing.T) {
	parser := NewOFXParser()

	t.Run("fixes mixed-case severity", func(t *testing.T) {
		got := parser.preprocessOFX("<SEVERITY>Info</SEVERITY>")
		assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", got)
	})

	t.Run("closes unterminated tags", func(t *testing.T) {
		got := parser.preprocessOFX("<STMTTRN\n")
		assert.Equal(t, "<STMTTRN>\n", got)
	})

	t.Run("trims leading blank lines", func(t *testing.T) {
		got := parser.preprocessOFX("\n\n  OFXHEADER:100")
		assert.Equal(t, "OFXHEADER:100", got)
	})
}
