package lead

import (
	"math"
	"strconv"
	"strings"
)

// NormalizePhone canonicalizes a raw identity value into a stable comparison
// key. Numeric input is rounded and rendered as decimal digits, covering
// spreadsheet-style float coercion of phone numbers (7.0 -> "7"). String
// input keeps only digits and '+', then drops a single leading '+'. The
// result is a match key, not a validated phone number.
func NormalizePhone(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		var b strings.Builder
		for _, r := range CellValue(raw) {
			if (r >= '0' && r <= '9') || r == '+' {
				b.WriteRune(r)
			}
		}
		return strings.TrimPrefix(b.String(), "+")
	}
}
