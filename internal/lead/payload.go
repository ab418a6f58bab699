package lead

import (
	"fmt"
	"math"
	"strconv"
)

// Payload is the flat key/value mapping produced by the request-dispatch
// layer. Shape is untrusted: keys are arbitrary, values are strings, JSON
// numbers or nil.
type Payload map[string]any

// First returns the value of the first alias present in the payload. A key
// mapped to nil still counts as present, matching how the webhook treats an
// explicit null.
func (p Payload) First(aliases []string) (any, bool) {
	for _, alias := range aliases {
		if v, ok := p[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

// CellValue renders a payload scalar to its sheet cell string. JSON numbers
// arrive as float64; integral ones render without a fractional part so user
// ids like 555 do not become "555.000000".
func CellValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
