// Package statement turns bank statement text into ordered transaction
// lists. One shared line-accumulation engine does the work; each issuer
// variant supplies a small Rules value (identifiers, date layout,
// description cleanup) instead of its own implementation.
package statement

import (
	"regexp"
	"strings"

	"github.com/lachdavey/ledgerdoc/parser/common"
)

// Rules parameterizes the shared engine for one issuer/product variant.
type Rules struct {
	// Name is the display identity reported on the parsed statement.
	Name string
	// Identifiers are brand or product markers probed case-insensitively
	// by CanParse. An empty list disables the brand check (generic
	// fallback).
	Identifiers []string
	// DateLayout is the Go reference layout of a transaction date token.
	DateLayout string
	// DatePattern matches a transaction date token anywhere in the text;
	// Parse additionally requires it at the start of a line.
	DatePattern *regexp.Regexp
	// Noise lists substrings of boilerplate lines discarded before parsing.
	Noise []string
	// Cleanup patterns are stripped from descriptions after money tokens.
	Cleanup []*regexp.Regexp
}

// Engine is the accumulation state machine shared by all statement
// variants. A leading date token opens a transaction; following lines
// without one extend its description until the next date or end of input.
type Engine struct {
	rules Rules
}

// New builds an engine from a variant's rules.
func New(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Name returns the variant's display identity.
func (e *Engine) Name() string {
	return e.rules.Name
}

// CanParse reports whether the document carries this variant's brand
// identifiers plus the structural shape of a statement: at least one date
// token and one money token. Requiring both keeps stray dates or numbers
// in unrelated documents from producing a false claim.
func (e *Engine) CanParse(text string) bool {
	if len(e.rules.Identifiers) > 0 && !containsAny(text, e.rules.Identifiers) {
		return false
	}
	return e.rules.DatePattern.MatchString(text) && common.HasAmount(text)
}

// Parse runs the accumulation state machine over text. Malformed lines
// are skipped, never fatal; the result may be empty, which the caller
// classifies as a whole-document failure.
func (e *Engine) Parse(text string) []common.Transaction {
	transactions := []common.Transaction{}
	var open *common.Transaction
	haveAmount := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || e.isNoise(line) {
			continue
		}

		loc := e.rules.DatePattern.FindStringIndex(line)
		if loc != nil && loc[0] == 0 {
			date, err := common.ParseDate(e.rules.DateLayout, line[:loc[1]])
			if err != nil {
				// Shape matched but the value is nonsense, e.g. 45/13/2024.
				continue
			}
			if open != nil {
				transactions = append(transactions, e.finalize(*open))
			}
			open = &common.Transaction{
				Date:        date,
				Description: strings.TrimSpace(line[loc[1]:]),
				Type:        common.Credit,
			}
			haveAmount = false
			e.applyAmounts(open, &haveAmount, line[loc[1]:])
			continue
		}

		if open != nil {
			// Wrapped description spilling onto the next physical line.
			open.Description += " " + line
			e.applyAmounts(open, &haveAmount, line)
		}
	}

	if open != nil {
		transactions = append(transactions, e.finalize(*open))
	}

	return transactions
}

// applyAmounts assigns amount and balance from the first line that carries
// money tokens, whether that is the date line or a continuation: the first
// token is the amount, the last token the balance when two or more appear.
// A single token leaves the balance at zero. A raw token with a leading
// minus is a debit; ING prints debits signed, so sign beats column here.
func (e *Engine) applyAmounts(tx *common.Transaction, haveAmount *bool, segment string) {
	if *haveAmount {
		return
	}
	tokens := common.FindAllAmounts(segment)
	if len(tokens) == 0 {
		return
	}

	amount, err := common.ParseAmount(tokens[0])
	if err != nil {
		return
	}
	tx.Amount = amount.Abs()
	tx.Type = common.Credit
	if amount.IsNegative() {
		tx.Type = common.Debit
	}

	if len(tokens) > 1 {
		if balance, err := common.ParseAmount(tokens[len(tokens)-1]); err == nil {
			tx.Balance = balance
		}
	}
	*haveAmount = true
}

func (e *Engine) finalize(tx common.Transaction) common.Transaction {
	tx.Description = e.cleanDescription(tx.Description)
	return tx
}

// cleanDescription strips money tokens and variant boilerplate, then
// collapses whitespace runs.
func (e *Engine) cleanDescription(s string) string {
	s = common.StripAmounts(s)
	for _, pattern := range e.rules.Cleanup {
		s = pattern.ReplaceAllString(s, "")
	}
	return strings.Join(strings.Fields(s), " ")
}

func (e *Engine) isNoise(line string) bool {
	for _, marker := range e.rules.Noise {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// containsAny probes case-insensitively; PDF text layers routinely
// uppercase whole statements.
func containsAny(text string, needles []string) bool {
	text = strings.ToLower(text)
	for _, needle := range needles {
		if strings.Contains(text, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}
