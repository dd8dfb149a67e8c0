package command

import (
	"encoding/json"
	"fmt"
)

// Response parsing runs the same three steps for every operation:
// decode the body, validate its shape against the operation's response
// schema, then map the elements into domain objects. Parsing is
// stateless and one-shot.

// decodeBody turns the raw response into a decoded JSON object. It
// accepts raw text ([]byte or string) or an already-decoded object;
// anything else is a parse error.
func decodeBody(op string, data any) (map[string]any, error) {
	switch v := data.(type) {
	case nil:
		return nil, fmt.Errorf("%s: %w: empty response", op, ErrResponseInvalid)
	case []byte:
		return unmarshalObject(op, v)
	case string:
		return unmarshalObject(op, []byte(v))
	case map[string]any:
		return v, nil
	default:
		return nil, newParseError(op, "unsupported response input of type %T", data)
	}
}

func unmarshalObject(op string, raw []byte) (map[string]any, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &ParseError{Operation: op, Err: err}
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, newParseError(op, "top-level JSON value is %T, not an object", decoded)
	}
	return obj, nil
}

// fieldKind is the container kind a response field must have.
type fieldKind int

const (
	kindString fieldKind = iota
	kindList
	kindMap
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindList:
		return "list"
	default:
		return "object"
	}
}

type field struct {
	kind     fieldKind
	required bool
}

// shape declares the expected top-level layout of one operation's
// response.
type shape map[string]field

// checkShape verifies the decoded body against the operation's response
// schema. A missing required field, a null where a container is
// expected, or a wrong container kind all make the response invalid.
func checkShape(op string, m map[string]any, s shape) error {
	for key, f := range s {
		v, present := m[key]
		if !present {
			if f.required {
				return fmt.Errorf("%s: %w: missing required field %q", op, ErrResponseInvalid, key)
			}
			continue
		}
		if v == nil {
			return fmt.Errorf("%s: %w: field %q is null", op, ErrResponseInvalid, key)
		}
		var ok bool
		switch f.kind {
		case kindString:
			_, ok = v.(string)
		case kindList:
			_, ok = v.([]any)
		case kindMap:
			_, ok = v.(map[string]any)
		}
		if !ok {
			return fmt.Errorf("%s: %w: field %q is %T, expected %s", op, ErrResponseInvalid, key, v, f.kind)
		}
	}
	return nil
}

// objects filters a decoded list down to its object elements. Stray
// non-object entries are dropped rather than failing the parse.
func objects(list []any) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, v := range list {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
