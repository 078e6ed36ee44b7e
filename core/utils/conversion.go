package utils

import (
	"fmt"
	"math"
)

// NormalizeScalar converts a decoded setting value to the types used by the defaults.
// Integers of any width become int and booleans stay bool. Any other value
// (strings, floats, lists, tables) is rejected with ok=false.
func NormalizeScalar(val any) (out any, ok bool) {
	switch v := val.(type) {
	case bool:
		return v, true
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case int16:
		return int(v), true
	case int8:
		return int(v), true
	case uint:
		if uint64(v) > math.MaxInt {
			return nil, false
		}
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return nil, false
		}
		return int(v), true
	case uint32:
		return int(v), true
	case uint16:
		return int(v), true
	case uint8:
		return int(v), true
	default:
		return nil, false
	}
}

// TypeName returns a short human readable name for the type of val.
func TypeName(val any) string {
	switch val.(type) {
	case nil:
		return "null"
	case string, []byte:
		return "string"
	case float32, float64:
		return "float"
	case []any:
		return "list"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", val)
	}
}
