package common

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of money movement.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Transaction is a single statement entry. The amount is always
// non-negative; Type carries the direction. Balance is zero when the
// source line did not print one.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
}

// ParsedStatement is the final output for a bank statement document.
// Transactions preserve their order of appearance in the source text and
// are non-empty on a successful parse.
type ParsedStatement struct {
	Month        int           `json:"month"`
	Year         int           `json:"year"`
	BankName     string        `json:"bank_name"`
	Transactions []Transaction `json:"transactions"`
}

// LineItem is one row of a payslip earnings or deductions section.
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// PayPeriod is the span a payslip covers.
type PayPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// YearToDate holds the cumulative figures printed on a payslip.
type YearToDate struct {
	GrossPay       decimal.Decimal `json:"gross_pay"`
	TaxWithheld    decimal.Decimal `json:"tax_withheld"`
	Superannuation decimal.Decimal `json:"superannuation"`
}

// PaySlipData is the final output for a payslip document. Fields the
// source document does not print default to zero values and empty lists.
type PaySlipData struct {
	Employer    string          `json:"employer"`
	PaymentDate time.Time       `json:"payment_date"`
	PayPeriod   PayPeriod       `json:"pay_period"`
	GrossPay    decimal.Decimal `json:"gross_pay"`
	NetPay      decimal.Decimal `json:"net_pay"`
	Earnings    []LineItem      `json:"earnings"`
	Deductions  []LineItem      `json:"deductions"`
	TaxWithheld decimal.Decimal `json:"tax_withheld"`
	YearToDate  YearToDate      `json:"year_to_date"`
}
