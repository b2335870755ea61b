// Package payslip turns payslip text into structured pay data. Unlike
// statements there is no line accumulation; scalar fields are pulled from
// keyword-anchored lines and tabular sections from the rows between two
// anchor lines.
package payslip

import (
	"regexp"
	"strings"
	"time"

	"github.com/lachdavey/ledgerdoc/parser/common"
	"github.com/shopspring/decimal"
)

// payslipDate tolerates single-digit days and months; payslip layouts are
// less consistent than statement lines.
var payslipDate = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)

// document is payslip text normalized into whitespace-collapsed lines.
// Line order is preserved so section anchors keep their positions.
type document struct {
	lines []string
}

func newDocument(text string) document {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	return document{lines: lines}
}

// findLine returns the first line containing keyword, case-insensitively,
// or "" when no line matches.
func (d document) findLine(keyword string) string {
	i := d.lineIndex(0, keyword)
	if i == -1 {
		return ""
	}
	return d.lines[i]
}

// lineIndex returns the index of the first line at or after from that
// contains keyword case-insensitively, or -1.
func (d document) lineIndex(from int, keyword string) int {
	keyword = strings.ToLower(keyword)
	for i := from; i < len(d.lines); i++ {
		if strings.Contains(strings.ToLower(d.lines[i]), keyword) {
			return i
		}
	}
	return -1
}

// section collects the rows strictly between the start anchor and the
// nearest of the end anchors after it that carry a positive amount.
// Accepting several end anchors keeps a section from swallowing the next
// one when its own total line is missing. A missing anchor yields an
// empty list, not an error; sections are routinely absent.
func (d document) section(startKey string, endKeys ...string) []common.LineItem {
	items := []common.LineItem{}
	start := d.lineIndex(0, startKey)
	if start == -1 {
		return items
	}
	end := -1
	for _, key := range endKeys {
		if i := d.lineIndex(start+1, key); i != -1 && (end == -1 || i < end) {
			end = i
		}
	}
	if end == -1 {
		return items
	}

	for i := start + 1; i < end; i++ {
		line := d.lines[i]
		amount := amountOn(line)
		if !amount.IsPositive() {
			continue
		}
		items = append(items, common.LineItem{
			Description: strings.TrimSpace(common.StripAmounts(line)),
			Amount:      amount,
		})
	}
	return items
}

// amountOn returns the first money token on line as a decimal, or zero
// when the line is empty or carries no amount.
func amountOn(line string) decimal.Decimal {
	tokens := common.FindAllAmounts(line)
	if len(tokens) == 0 {
		return decimal.Zero
	}
	amount, err := common.ParseAmount(tokens[0])
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// dateOn returns the first date on line, defaulting to today. A missing
// scalar date is common across payslip layouts and is not a failure.
func dateOn(line string) time.Time {
	m := payslipDate.FindString(line)
	if m == "" {
		return common.Midday(time.Now())
	}
	date, err := common.ParseDate("2/1/2006", m)
	if err != nil {
		return common.Midday(time.Now())
	}
	return date
}
