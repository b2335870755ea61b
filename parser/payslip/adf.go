package payslip

import (
	"strings"
	"time"

	"github.com/lachdavey/ledgerdoc/parser/common"
)

// ADF parses Australian Defence Force pay advices.
type ADF struct{}

// NewADF returns the ADF payslip parser.
func NewADF() *ADF {
	return &ADF{}
}

func (p *ADF) Name() string {
	return "ADF Payslip"
}

// CanParse claims documents carrying the force identifier.
func (p *ADF) CanParse(text string) bool {
	return strings.Contains(text, "ADF") ||
		strings.Contains(text, "Australian Defence Force")
}

// Parse extracts scalar pay figures by label and the earnings/deductions
// sections by their anchor lines. Earnings end at whichever of the
// deductions header or a "Total" line comes first, so a missing total
// cannot fold deduction rows into earnings; deductions end at the next
// "Total" line. Absent labels and anchors produce zero values and empty
// sections rather than failures.
func (p *ADF) Parse(text string) common.PaySlipData {
	doc := newDocument(text)

	return common.PaySlipData{
		Employer:    "Department of Defence",
		PaymentDate: dateOn(doc.findLine("Payment Date")),
		PayPeriod:   payPeriod(doc.findLine("Pay Period")),
		GrossPay:    amountOn(doc.findLine("Gross Pay")),
		NetPay:      amountOn(doc.findLine("Net Pay")),
		Earnings:    doc.section("earnings", "deductions", "total"),
		Deductions:  doc.section("deductions", "total"),
		TaxWithheld: amountOn(doc.findLine("Tax Withheld")),
		YearToDate: common.YearToDate{
			GrossPay:       amountOn(doc.findLine("YTD Gross")),
			TaxWithheld:    amountOn(doc.findLine("YTD Tax")),
			Superannuation: amountOn(doc.findLine("YTD Superannuation")),
		},
	}
}

func payPeriod(line string) common.PayPeriod {
	period := common.PayPeriod{
		Start: common.Midday(time.Now()),
		End:   common.Midday(time.Now()),
	}

	dates := payslipDate.FindAllString(line, -1)
	if len(dates) > 0 {
		if start, err := common.ParseDate("2/1/2006", dates[0]); err == nil {
			period.Start = start
		}
	}
	if len(dates) > 1 {
		if end, err := common.ParseDate("2/1/2006", dates[1]); err == nil {
			period.End = end
		}
	}
	return period
}
