package parser

import (
	"github.com/lachdavey/ledgerdoc/parser/payslip"
	"github.com/lachdavey/ledgerdoc/parser/statement"
)

// NewDefaultRegistry builds the registry used at startup. Order matters:
// the credit card parser probes before the savings parser because the
// plain ING marker also appears on card statements, and the generic
// fallback goes last.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterStatement(statement.NewINGCredit())
	r.RegisterStatement(statement.NewINGSavings())
	r.RegisterStatement(statement.NewGeneric())
	r.RegisterPayslip(payslip.NewADF())
	return r
}
