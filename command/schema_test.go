package command

import (
	"testing"

	"github.com/mobil-koeln/efa-go/internal/testutil"
)

func TestFormatValue(t *testing.T) {
	testutil.AssertEqual(t, formatValue("direct"), "direct")
	testutil.AssertEqual(t, formatValue(true), "1")
	testutil.AssertEqual(t, formatValue(false), "0")
	testutil.AssertEqual(t, formatValue(42), "42")
}

func TestOneOf(t *testing.T) {
	chk := oneOf("any", "coord")

	testutil.AssertNil(t, chk("any"))
	testutil.AssertNil(t, chk("coord"))
	testutil.AssertError(t, chk("stop"))
	testutil.AssertError(t, chk(""))
}

func TestFlag01(t *testing.T) {
	chk := flag01()

	// The server's boolean convention admits all three spellings.
	testutil.AssertNil(t, chk("0"))
	testutil.AssertNil(t, chk("1"))
	testutil.AssertNil(t, chk(0))
	testutil.AssertNil(t, chk(1))
	testutil.AssertNil(t, chk(true))
	testutil.AssertNil(t, chk(false))

	testutil.AssertError(t, chk("2"))
	testutil.AssertError(t, chk(2))
	testutil.AssertError(t, chk("yes"))
}

func TestIntRange(t *testing.T) {
	chk := intRange(0, 127)

	testutil.AssertNil(t, chk(0))
	testutil.AssertNil(t, chk(127))
	testutil.AssertNil(t, chk("42"))

	testutil.AssertError(t, chk(-1))
	testutil.AssertError(t, chk(128))
	testutil.AssertError(t, chk("128"))
	testutil.AssertError(t, chk("abc"))
	testutil.AssertError(t, chk(1.5))
}

func TestIsInt(t *testing.T) {
	chk := isInt()

	testutil.AssertNil(t, chk(40))
	testutil.AssertNil(t, chk(-1))
	testutil.AssertNil(t, chk("40"))

	testutil.AssertError(t, chk("forty"))
	testutil.AssertError(t, chk(4.5))
	testutil.AssertError(t, chk(true))
}

func TestIsString(t *testing.T) {
	chk := isString()

	testutil.AssertNil(t, chk("Plärrer"))
	testutil.AssertNil(t, chk(""))

	testutil.AssertError(t, chk(42))
	testutil.AssertError(t, chk(nil))
}

func TestDigits(t *testing.T) {
	chk := digits(8)

	testutil.AssertNil(t, chk("20250825"))

	testutil.AssertError(t, chk("2025082"))
	testutil.AssertError(t, chk("202508251"))
	testutil.AssertError(t, chk("2025-8-25"))
	testutil.AssertError(t, chk(20250825))
}

func TestAnyValue(t *testing.T) {
	chk := anyValue()

	testutil.AssertNil(t, chk("anything"))
	testutil.AssertNil(t, chk(42))
	testutil.AssertNil(t, chk(nil))
}
