package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseBR converts a Brazilian-locale decimal string into a decimal value.
// "1.234,56" parses to 1234.56: '.' is the thousands separator and is
// stripped, ',' is the decimal separator and becomes '.'.
// Empty or malformed input returns an error; callers exclude the row from
// aggregation instead of failing the whole result set.
func ParseBR(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty decimal value")
	}

	normalized := strings.ReplaceAll(trimmed, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed decimal value %q: %w", s, err)
	}
	return d, nil
}

// ParseBROrZero is the lenient variant used where a missing or malformed
// value contributes nothing to a sum.
func ParseBROrZero(s string) decimal.Decimal {
	d, err := ParseBR(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
