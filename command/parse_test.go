package command

import (
	"errors"
	"testing"

	"github.com/mobil-koeln/efa-go/internal/testutil"
)

func TestDecodeBodyNil(t *testing.T) {
	_, err := decodeBody("OP", nil)
	testutil.AssertErrorIs(t, err, ErrResponseInvalid)
}

func TestDecodeBodyInvalidJSON(t *testing.T) {
	_, err := decodeBody("OP", "{not json")
	testutil.AssertError(t, err)

	var perr *ParseError
	testutil.AssertTrue(t, errors.As(err, &perr))
	testutil.AssertEqual(t, perr.Operation, "OP")
}

func TestDecodeBodyTopLevelNotObject(t *testing.T) {
	_, err := decodeBody("OP", testutil.NotAnObjectResponse)
	testutil.AssertError(t, err)

	var perr *ParseError
	testutil.AssertTrue(t, errors.As(err, &perr))
}

func TestDecodeBodyAcceptsRawAndDecoded(t *testing.T) {
	for _, input := range []any{
		`{"version":"10.6.21.17"}`,
		[]byte(`{"version":"10.6.21.17"}`),
		map[string]any{"version": "10.6.21.17"},
	} {
		m, err := decodeBody("OP", input)
		testutil.AssertNil(t, err)
		testutil.AssertEqual(t, m["version"].(string), "10.6.21.17")
	}
}

func TestDecodeBodyUnsupportedInput(t *testing.T) {
	_, err := decodeBody("OP", 42)
	testutil.AssertError(t, err)

	var perr *ParseError
	testutil.AssertTrue(t, errors.As(err, &perr))
}

func TestCheckShapeMissingRequired(t *testing.T) {
	s := shape{"locations": {kind: kindList, required: true}}

	err := checkShape("OP", map[string]any{}, s)
	testutil.AssertErrorIs(t, err, ErrResponseInvalid)
	testutil.AssertContains(t, err.Error(), "locations")
}

func TestCheckShapeMissingOptional(t *testing.T) {
	s := shape{"systemMessages": {kind: kindList}}

	testutil.AssertNil(t, checkShape("OP", map[string]any{}, s))
}

func TestCheckShapeNullField(t *testing.T) {
	s := shape{"locations": {kind: kindList, required: true}}

	err := checkShape("OP", map[string]any{"locations": nil}, s)
	testutil.AssertErrorIs(t, err, ErrResponseInvalid)
	testutil.AssertContains(t, err.Error(), "null")
}

func TestCheckShapeWrongKind(t *testing.T) {
	s := shape{"locations": {kind: kindList, required: true}}

	err := checkShape("OP", map[string]any{"locations": "not a list"}, s)
	testutil.AssertErrorIs(t, err, ErrResponseInvalid)
}

func TestObjectsDropsNonObjectEntries(t *testing.T) {
	list := []any{
		map[string]any{"id": "a"},
		"stray string",
		42,
		map[string]any{"id": "b"},
	}

	out := objects(list)
	testutil.AssertLen(t, out, 2)
	testutil.AssertEqual(t, out[0]["id"].(string), "a")
	testutil.AssertEqual(t, out[1]["id"].(string), "b")
}
