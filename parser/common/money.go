package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// moneyPattern matches currency amounts with or without thousand grouping,
// e.g. "2,335.02", "-$2500.00", "1.06". Two decimal places are required so
// that receipt numbers and dates never read as money.
var moneyPattern = regexp.MustCompile(`-?\$?(?:\d{1,3}(?:,\d{3})+|\d+)\.\d{2}`)

// FindAllAmounts returns every raw money token in text, in order of
// appearance.
func FindAllAmounts(text string) []string {
	return moneyPattern.FindAllString(text, -1)
}

// HasAmount reports whether text contains at least one money token.
func HasAmount(text string) bool {
	return moneyPattern.MatchString(text)
}

// ParseAmount converts a raw money token into a decimal, dropping the
// currency symbol and thousand separators. The sign is preserved.
func ParseAmount(token string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(token))
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", token, err)
	}
	return amount, nil
}

// StripAmounts removes every money token from text.
func StripAmounts(text string) string {
	return moneyPattern.ReplaceAllString(text, "")
}
