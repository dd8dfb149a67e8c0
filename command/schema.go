package command

import (
	"fmt"
	"strconv"
)

// The server rejects queries with unknown or malformed parameters in
// opaque ways, so every command owns a declarative rule table: one check
// per legal parameter key. Anything not in the table is refused at the
// moment it is added, long before a request goes out.

// check decides whether a parameter value lies inside its legal domain.
type check func(value any) error

// schema maps the legal parameter keys of one operation to their checks.
type schema map[string]check

// validate is the single routine all commands funnel parameter inserts
// through.
func validate(op, key string, value any, s schema) error {
	chk, ok := s[key]
	if !ok {
		return &ParameterError{
			Operation: op,
			Param:     key,
			Value:     value,
			Reason:    "not a declared parameter of this operation",
		}
	}
	if err := chk(value); err != nil {
		return &ParameterError{
			Operation: op,
			Param:     key,
			Value:     value,
			Reason:    err.Error(),
		}
	}
	return nil
}

// formatValue renders a parameter value the way it is put on the wire.
// Booleans become the 0/1 flags the server expects.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// oneOf admits exactly the listed wire values.
func oneOf(allowed ...string) check {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(v any) error {
		if _, ok := set[formatValue(v)]; !ok {
			return fmt.Errorf("must be one of %v", allowed)
		}
		return nil
	}
}

// flag01 admits the server's boolean convention: "0"/"1" as string, int
// or bool.
func flag01() check {
	return oneOf("0", "1")
}

// intRange admits integers (or digit strings) within [min, max]. Used
// for bit-flag sums whose maximum is the sum of all enumeration values.
func intRange(min, max int) check {
	return func(v any) error {
		var n int
		switch t := v.(type) {
		case int:
			n = t
		case string:
			parsed, err := strconv.Atoi(t)
			if err != nil {
				return fmt.Errorf("must be an integer between %d and %d", min, max)
			}
			n = parsed
		default:
			return fmt.Errorf("must be an integer between %d and %d", min, max)
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d, got %d", min, max, n)
		}
		return nil
	}
}

// isInt admits any integer value.
func isInt() check {
	return func(v any) error {
		switch t := v.(type) {
		case int:
			return nil
		case string:
			if _, err := strconv.Atoi(t); err != nil {
				return fmt.Errorf("must be an integer")
			}
			return nil
		default:
			return fmt.Errorf("must be an integer")
		}
	}
}

// isString admits any string value.
func isString() check {
	return func(v any) error {
		if _, ok := v.(string); !ok {
			return fmt.Errorf("must be a string")
		}
		return nil
	}
}

// digits admits a string of exactly n digits, e.g. itdDate=YYYYMMDD.
func digits(n int) check {
	return func(v any) error {
		s, ok := v.(string)
		if !ok || len(s) != n {
			return fmt.Errorf("must be a string of %d digits", n)
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("must be a string of %d digits", n)
			}
		}
		return nil
	}
}

// anyValue admits everything. Some line-list parameters are passed
// through to the server unchecked.
func anyValue() check {
	return func(any) error { return nil }
}
