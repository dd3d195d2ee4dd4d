package processors

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FirstNonEmpty returns the trimmed value of the first key in keys whose
// value in record is a non-empty string, number or boolean. Maps, lists and nulls
// count as empty, so a malformed field falls through to the next alias.
func FirstNonEmpty(record map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		value, ok := scalarString(record[key])
		if !ok {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}

// FirstNonEmptyOr is FirstNonEmpty with a fallback for when no alias is set.
func FirstNonEmptyOr(record map[string]interface{}, fallback string, keys ...string) string {
	if value := FirstNonEmpty(record, keys...); value != "" {
		return value
	}
	return fallback
}

func scalarString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return formatNumber(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// formatNumber prints integral JSON numbers without a decimal part.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func asMap(value interface{}) (map[string]interface{}, bool) {
	m, ok := value.(map[string]interface{})
	return m, ok
}

func asList(value interface{}) []interface{} {
	list, _ := value.([]interface{})
	return list
}
