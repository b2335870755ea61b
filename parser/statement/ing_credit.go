package statement

import "regexp"

// NewINGCredit parses ING credit card statements (Orange One). Register it
// ahead of the savings parser so the card-specific identifiers win the
// probe. Card statements repeat the purchase date and card number inside
// descriptions; both are stripped during cleanup.
func NewINGCredit() *Engine {
	return New(Rules{
		Name:        "ING Credit Card",
		Identifiers: []string{"Orange One", "Rewards Platinum", "Credit Card"},
		DateLayout:  "02/01/2006",
		DatePattern: slashDate,
		Cleanup: []*regexp.Regexp{
			regexp.MustCompile(`Date \d{2}/\d{2}/\d{2}`),
			regexp.MustCompile(`Card \d+`),
		},
	})
}
