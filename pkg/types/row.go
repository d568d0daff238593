package types

import "time"

// Row decode helpers. Backends return Row values as primitives, time.Time,
// or []string; the FromRow constructors below tolerate the loose shapes a
// generic backend may hand back (int64 for counters, []any for tags).

func rowString(r Row, key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

func rowInt(r Row, key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func rowInt64(r Row, key string) int64 {
	switch v := r[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func rowBool(r Row, key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	}
	return false
}

func rowTime(r Row, key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func rowStrings(r Row, key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
