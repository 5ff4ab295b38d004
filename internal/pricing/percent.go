package pricing

import (
	"strconv"
	"strings"
)

// MetaKeyDiscountPercent is the metadata key that stores a product's or
// variation's supplier discount percentage as decimal text.
const MetaKeyDiscountPercent = "supplier_discount_percent"

// ParsePercent validates a stored or submitted discount percentage. Only whole
// numbers between 1 and 100 inclusive are accepted; everything else (empty,
// non-numeric, fractional, zero, negative, above 100) reports absent. Stored
// values that fail validation are skipped at pricing time, never clamped.
func ParsePercent(raw string) (int64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, false
	}
	if value < 1 || value > 100 {
		return 0, false
	}
	return value, true
}
