// Package parser classifies document text against an ordered registry of
// format-specific parsers and runs the winner. Parsing is pure and
// synchronous; the registry is built once at startup and read-only
// afterwards, so independent documents may be parsed concurrently.
package parser

import "github.com/lachdavey/ledgerdoc/parser/common"

// StatementParser extracts an ordered transaction list from bank
// statement text. Parse never fails on individual malformed lines; an
// empty result is the caller's signal that nothing usable was found.
type StatementParser interface {
	Name() string
	CanParse(text string) bool
	Parse(text string) []common.Transaction
}

// PayslipParser extracts structured pay data from payslip text. Missing
// fields come back as zero values, not errors.
type PayslipParser interface {
	Name() string
	CanParse(text string) bool
	Parse(text string) common.PaySlipData
}

// Registry holds two separately ordered parser lists, one per document
// class. Registration order is the probe order: more specific parsers must
// be registered before generic ones.
type Registry struct {
	statement []StatementParser
	payslip   []PayslipParser
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterStatement appends a bank statement parser.
func (r *Registry) RegisterStatement(p StatementParser) {
	r.statement = append(r.statement, p)
}

// RegisterPayslip appends a payslip parser.
func (r *Registry) RegisterPayslip(p PayslipParser) {
	r.payslip = append(r.payslip, p)
}

// FindStatementParser returns the first statement parser claiming text,
// or nil when none does.
func (r *Registry) FindStatementParser(text string) StatementParser {
	for _, p := range r.statement {
		if p.CanParse(text) {
			return p
		}
	}
	return nil
}

// FindPayslipParser returns the first payslip parser claiming text, or
// nil when none does.
func (r *Registry) FindPayslipParser(text string) PayslipParser {
	for _, p := range r.payslip {
		if p.CanParse(text) {
			return p
		}
	}
	return nil
}
