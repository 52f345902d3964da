package cart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ClampQuantity coerces an untrusted quantity into a safe integer. Fractions
// truncate toward zero; negative, non-finite and non-numeric input becomes 0.
// With a stock ceiling the result never exceeds it.
func ClampQuantity(quantity any, stock *int) int {
	n := toInt(quantity)

	if stock != nil {
		n = min(n, max(*stock, 0))
	}

	return max(n, 0)
}

func toInt(v any) int {
	switch q := v.(type) {
	case int:
		return q
	case int8:
		return int(q)
	case int16:
		return int(q)
	case int32:
		return int(q)
	case int64:
		return truncate(float64(q))
	case uint:
		return truncate(float64(q))
	case uint8:
		return int(q)
	case uint16:
		return int(q)
	case uint32:
		return truncate(float64(q))
	case uint64:
		return truncate(float64(q))
	case float32:
		return truncate(float64(q))
	case float64:
		return truncate(q)
	case json.Number:
		return parse(string(q))
	case string:
		return parse(q)
	case bool:
		if q {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func parse(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return truncate(f)
}

func truncate(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}

	if f >= math.MaxInt32 {
		return math.MaxInt32
	}

	return int(f)
}
