package models

import "time"

// The EFA rapidJSON dialect is riddled with optional and nested fields.
// Everything below reads a value at a nested path and falls back to a
// default instead of panicking on missing keys or unexpected kinds.

// dig walks a nested path of object keys and returns the value at the end.
func dig(m map[string]any, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func getString(m map[string]any, def string, path ...string) string {
	v, ok := dig(m, path...)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// getInt tolerates both JSON numbers (float64 after decoding) and the
// occasional stringly-typed integer the server emits.
func getInt(m map[string]any, def int, path ...string) int {
	v, ok := dig(m, path...)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return def
	}
}

func getBool(m map[string]any, def bool, path ...string) bool {
	v, ok := dig(m, path...)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

func getMap(m map[string]any, path ...string) map[string]any {
	v, ok := dig(m, path...)
	if !ok {
		return nil
	}
	obj, _ := v.(map[string]any)
	return obj
}

func getList(m map[string]any, path ...string) []any {
	v, ok := dig(m, path...)
	if !ok {
		return nil
	}
	list, _ := v.([]any)
	return list
}

func getFloats(m map[string]any, path ...string) []float64 {
	list := getList(m, path...)
	if len(list) == 0 {
		return nil
	}
	out := make([]float64, 0, len(list))
	for _, v := range list {
		if f, ok := v.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

// getDate parses a calendar date like "2024-11-01". The zero time marks
// an absent or malformed value.
func getDate(m map[string]any, path ...string) time.Time {
	s := getString(m, "", path...)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// getTime parses an RFC 3339 timestamp such as "2024-11-10T22:16:00Z".
func getTime(m map[string]any, path ...string) time.Time {
	s := getString(m, "", path...)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
