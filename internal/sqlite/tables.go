package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stride-careers/stride/pkg/types"
)

// colKind is the logical type of a column, driving value conversion
// between types.Row and SQLite storage.
type colKind int

const (
	colText colKind = iota
	colInt
	colBool
	colTime // stored as RFC 3339 text; empty text means unset
	colJSON // ordered string sequence stored as a JSON array
)

// column describes one column of a collection.
type column struct {
	name string
	kind colKind
}

// stamps are the columns every collection carries and the backend assigns.
var stamps = []column{
	{"id", colText},
	{"created_at", colTime},
	{"updated_at", colTime},
}

// collections enumerates the fixed schema of every collection the backend
// serves. Order matches schema.sql.
var collections = map[string][]column{
	types.ProfilesCollection: withStamps(
		column{"user_id", colText},
		column{"full_name", colText},
	),
	types.PostsCollection: withStamps(
		column{"user_id", colText},
		column{"author_name", colText},
		column{"title", colText},
		column{"content", colText},
		column{"category", colText},
		column{"tags", colJSON},
		column{"likes_count", colInt},
		column{"comments_count", colInt},
		column{"is_pinned", colBool},
	),
	types.CommentsCollection: withStamps(
		column{"post_id", colText},
		column{"user_id", colText},
		column{"author_name", colText},
		column{"content", colText},
		column{"likes_count", colInt},
	),
	types.LikesCollection: withStamps(
		column{"post_id", colText},
		column{"user_id", colText},
	),
	types.DocumentsCollection: withStamps(
		column{"user_id", colText},
		column{"name", colText},
		column{"document_type", colText},
		column{"file_path", colText},
		column{"file_size", colInt},
		column{"mime_type", colText},
		column{"description", colText},
		column{"tags", colJSON},
		column{"is_primary", colBool},
	),
	types.GoalsCollection: withStamps(
		column{"user_id", colText},
		column{"title", colText},
		column{"description", colText},
		column{"category", colText},
		column{"priority", colText},
		column{"target_date", colTime},
		column{"progress_percentage", colInt},
		column{"status", colText},
	),
	types.RemindersCollection: withStamps(
		column{"user_id", colText},
		column{"title", colText},
		column{"description", colText},
		column{"reminder_type", colText},
		column{"priority", colText},
		column{"due_date", colTime},
		column{"is_completed", colBool},
	),
	types.TemplatesCollection: withStamps(
		column{"user_id", colText},
		column{"name", colText},
		column{"template_type", colText},
		column{"subject", colText},
		column{"content", colText},
		column{"placeholders", colJSON},
		column{"usage_count", colInt},
	),
}

func withStamps(cols ...column) []column {
	return append(cols, stamps...)
}

// lookupColumn finds a column by name within a collection's schema.
func lookupColumn(cols []column, name string) (column, bool) {
	for _, c := range cols {
		if c.name == name {
			return c, true
		}
	}
	return column{}, false
}

// encodeValue converts a Row value to its SQLite representation.
func encodeValue(c column, v any) (any, error) {
	switch c.kind {
	case colText:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("column %s: want string, got %T", c.name, v)
		}
		return s, nil
	case colInt:
		switch n := v.(type) {
		case int:
			return int64(n), nil
		case int64:
			return n, nil
		case float64:
			return int64(n), nil
		}
		return nil, fmt.Errorf("column %s: want integer, got %T", c.name, v)
	case colBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("column %s: want bool, got %T", c.name, v)
		}
		if b {
			return int64(1), nil
		}
		return int64(0), nil
	case colTime:
		switch t := v.(type) {
		case time.Time:
			if t.IsZero() {
				return "", nil
			}
			return t.UTC().Format(time.RFC3339Nano), nil
		case string:
			return t, nil
		}
		return nil, fmt.Errorf("column %s: want time, got %T", c.name, v)
	case colJSON:
		ss, ok := v.([]string)
		if !ok {
			if v == nil {
				ss = []string{}
			} else {
				return nil, fmt.Errorf("column %s: want []string, got %T", c.name, v)
			}
		}
		if ss == nil {
			ss = []string{}
		}
		raw, err := json.Marshal(ss)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.name, err)
		}
		return string(raw), nil
	}
	return nil, fmt.Errorf("column %s: unknown kind", c.name)
}

// decodeValue converts a scanned SQLite value back to its Row shape.
func decodeValue(c column, v any) any {
	switch c.kind {
	case colText:
		return asString(v)
	case colInt:
		if n, ok := v.(int64); ok {
			return n
		}
		return int64(0)
	case colBool:
		if n, ok := v.(int64); ok {
			return n != 0
		}
		return false
	case colTime:
		s := asString(v)
		if s == "" {
			return time.Time{}
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.UTC()
		}
		return time.Time{}
	case colJSON:
		var ss []string
		if err := json.Unmarshal([]byte(asString(v)), &ss); err != nil {
			return []string{}
		}
		return ss
	}
	return nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}
