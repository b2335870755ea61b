package statement

import (
	"regexp"
	"time"

	"github.com/lachdavey/ledgerdoc/parser/common"
)

var periodPattern = regexp.MustCompile(`(?i)Statement Period:\s*(\d{1,2}/\d{1,2}/\d{4})\s*to\s*(\d{1,2}/\d{1,2}/\d{4})`)

// Assemble wraps a transaction list with statement-level metadata. The
// statement month and year come from an explicit "Statement Period" anchor
// when the document prints one, otherwise from the most recent transaction
// date.
func Assemble(text, bankName string, txs []common.Transaction) common.ParsedStatement {
	end := periodEnd(text)
	if end.IsZero() {
		end = latestDate(txs)
	}

	return common.ParsedStatement{
		Month:        int(end.Month()),
		Year:         end.Year(),
		BankName:     bankName,
		Transactions: txs,
	}
}

func periodEnd(text string) time.Time {
	m := periodPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}
	}
	end, err := common.ParseDate("2/1/2006", m[2])
	if err != nil {
		return time.Time{}
	}
	return end
}

func latestDate(txs []common.Transaction) time.Time {
	var latest time.Time
	for _, tx := range txs {
		if tx.Date.After(latest) {
			latest = tx.Date
		}
	}
	return latest
}
