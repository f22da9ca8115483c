package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// normalizeTree rewrites a decoded JSON or YAML tree into one shape:
// mapping keys become strings (YAML allows `200:` or `true:` as keys),
// integers that fit become int64, other numbers become float64 and
// timestamps become strings. Other values are returned as-is.
func normalizeTree(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			val[k] = normalizeTree(child)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[keyString(k)] = normalizeTree(child)
		}
		return out
	case []any:
		for i, child := range val {
			val[i] = normalizeTree(child)
		}
		return val
	case int:
		return int64(val)
	case uint64:
		if val <= math.MaxInt64 {
			return int64(val)
		}
		return val
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return v
	}
}

func keyString(k any) string {
	switch key := k.(type) {
	case string:
		return key
	case nil:
		return "null"
	default:
		return fmt.Sprint(key)
	}
}
