package statement

import "regexp"

// slashDate matches the DD/MM/YYYY tokens ING prints on transaction lines.
var slashDate = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

// NewINGSavings parses ING savings products (Savings Maximiser and the
// linked everyday account). Debits carry a leading minus on the amount
// token; there are no separate money in/out columns on these statements.
func NewINGSavings() *Engine {
	return New(Rules{
		Name: "ING",
		Identifiers: []string{
			"ING",
			"Savings Maximiser",
			"Savings Account",
			"Orange Everyday",
		},
		DateLayout:  "02/01/2006",
		DatePattern: slashDate,
		Noise:       []string{"Interest rate"},
	})
}
