package statement

// NewGeneric is the fallback for unrecognized but structurally similar
// statements: no brand identifiers, so CanParse reduces to the structural
// date-plus-amount check. Must be registered last.
func NewGeneric() *Engine {
	return New(Rules{
		Name:        "Generic",
		DateLayout:  "02/01/2006",
		DatePattern: slashDate,
	})
}
