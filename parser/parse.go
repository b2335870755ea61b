package parser

import (
	"fmt"

	"github.com/lachdavey/ledgerdoc/parser/common"
	"github.com/lachdavey/ledgerdoc/parser/statement"
)

// MaxInputBytes caps how much text a single parse will scan. Extracted
// statement text runs to tens of kilobytes; anything past this is not a
// real document.
const MaxInputBytes = 8 << 20

// Kind is the document class a parse resolved to.
type Kind string

const (
	KindStatement Kind = "statement"
	KindPayslip   Kind = "payslip"
)

// Result is the output of a successful parse: exactly one of Statement or
// Payslip is set, per Kind.
type Result struct {
	Kind      Kind                    `json:"kind"`
	Statement *common.ParsedStatement `json:"statement,omitempty"`
	Payslip   *common.PaySlipData     `json:"payslip,omitempty"`
}

// ParseDocument classifies text against the registry and runs the winning
// parser. Statement parsers probe before payslip parsers; a document that
// could satisfy both is treated as a statement. Returns
// ErrNoParserMatched or ErrEmptyParseResult so callers can tell an
// unrecognized format from a recognized-but-empty one.
func ParseDocument(reg *Registry, text string) (*Result, error) {
	if len(text) > MaxInputBytes {
		return nil, ErrInputTooLarge
	}

	var matchedEmpty error

	if p := reg.FindStatementParser(text); p != nil {
		txs := p.Parse(text)
		if len(txs) > 0 {
			stmt := statement.Assemble(text, p.Name(), txs)
			return &Result{Kind: KindStatement, Statement: &stmt}, nil
		}
		// Payslips also carry dates and amounts, so the generic statement
		// fallback can claim one and find no transaction lines. Give the
		// payslip parsers their turn before reporting an empty result.
		matchedEmpty = fmt.Errorf("%s: %w", p.Name(), ErrEmptyParseResult)
	}

	if p := reg.FindPayslipParser(text); p != nil {
		data := p.Parse(text)
		if !emptyPayslip(data) {
			return &Result{Kind: KindPayslip, Payslip: &data}, nil
		}
		if matchedEmpty == nil {
			matchedEmpty = fmt.Errorf("%s: %w", p.Name(), ErrEmptyParseResult)
		}
	}

	if matchedEmpty != nil {
		return nil, matchedEmpty
	}
	return nil, ErrNoParserMatched
}

// emptyPayslip is the payslip analog of a zero-transaction statement: no
// pay figures and no line items means nothing was extracted.
func emptyPayslip(d common.PaySlipData) bool {
	return d.GrossPay.IsZero() && d.NetPay.IsZero() &&
		len(d.Earnings) == 0 && len(d.Deductions) == 0
}
