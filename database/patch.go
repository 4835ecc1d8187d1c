package database

import (
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// translatePatch maps application field names onto storage column names,
// dropping anything not in the whitelist. Partial updates go through this
// so callers never address raw storage columns directly.
func translatePatch(fields map[string]interface{}, allowed map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		if column, ok := allowed[name]; ok {
			out[column] = value
		}
	}
	return out
}

// asInt converts a decoded JSON number to an int for integer columns.
func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	}
	return 0, false
}

// asStringArray converts a decoded JSON array into a text[] value.
func asStringArray(value interface{}) (pq.StringArray, bool) {
	switch v := value.(type) {
	case []string:
		return pq.StringArray(v), true
	case []interface{}:
		out := make(pq.StringArray, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// asJSONB re-marshals a decoded JSON value for a jsonb column.
func asJSONB(value interface{}) (datatypes.JSON, bool) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	return datatypes.JSON(raw), true
}
