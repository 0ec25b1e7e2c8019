package models

import "time"

// isoTimeLayout is the layout used for every date field in projections.
const isoTimeLayout = "2006-01-02T15:04:05"

// isoTime converts an optional timestamp to its ISO-8601 string form,
// or nil when absent. Projections never expose time.Time values.
func isoTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(isoTimeLayout)
}

// ParseISOTime parses an ISO-8601 timestamp, accepting both date-only
// and date-time forms.
func ParseISOTime(value string) (time.Time, error) {
	if t, err := time.Parse(isoTimeLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// The as* helpers coerce values decoded from JSON (json.Unmarshal into
// map[string]any yields string, float64, bool and nil) into the field
// types used by the entities. A failed coercion reports false and the
// field is left untouched, matching the ignore-unknown-keys contract
// for partial updates.

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asStringPtr(v any) (*string, bool) {
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}

func asFloatPtr(v any) (*float64, bool) {
	if v == nil {
		return nil, true
	}
	f, ok := v.(float64)
	if !ok {
		return nil, false
	}
	return &f, true
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func asIntPtr(v any) (*int, bool) {
	if v == nil {
		return nil, true
	}
	n, ok := asInt(v)
	if !ok {
		return nil, false
	}
	return &n, true
}

func asTimePtr(v any) (*time.Time, bool) {
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	t, err := ParseISOTime(s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// asBoolInt accepts a JSON boolean (or a bare 0/1 number) and returns
// the 0/1 integer form used for storage.
func asBoolInt(v any) (int, bool) {
	switch b := v.(type) {
	case bool:
		if b {
			return 1, true
		}
		return 0, true
	case float64:
		if b == 0 || b == 1 {
			return int(b), true
		}
	}
	return 0, false
}
