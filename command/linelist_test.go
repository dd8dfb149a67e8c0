package command

import (
	"testing"

	"github.com/mobil-koeln/efa-go/internal/testutil"
	"github.com/mobil-koeln/efa-go/models"
)

func TestLineListParse(t *testing.T) {
	cmd, err := NewLineList(FormatRapidJSON)
	testutil.AssertNil(t, err)

	lines, err := cmd.Parse(testutil.LineListResponse)
	testutil.AssertNil(t, err)
	testutil.AssertLen(t, lines, 2)

	testutil.AssertEqual(t, lines[0].Number, "U1")
	testutil.AssertEqual(t, lines[0].Product.Class, models.TransportSubway)
	testutil.AssertEqual(t, lines[1].Number, "4")
	testutil.AssertEqual(t, lines[1].Product.Class, models.TransportTram)
}

func TestLineListParseMissingTransportations(t *testing.T) {
	cmd, err := NewLineList(FormatRapidJSON)
	testutil.AssertNil(t, err)

	// A serving-lines body is not a line-list body.
	_, err = cmd.Parse(testutil.ServingLinesResponse)
	testutil.AssertErrorIs(t, err, ErrResponseInvalid)
}

func TestLineListPassthroughParams(t *testing.T) {
	cmd, err := NewLineList(FormatRapidJSON)
	testutil.AssertNil(t, err)

	// Operator codes are server-interpreted and accepted as-is.
	testutil.AssertNil(t, cmd.AddParam("lineListOMC", "9564000"))
	testutil.AssertNil(t, cmd.AddParam("lineListSubnetwork", "vgn"))
	testutil.AssertNil(t, cmd.AddParam("lineListMixedLines", true))
	testutil.AssertNil(t, cmd.AddParam("mergeDir", true))

	testutil.AssertError(t, cmd.AddParam("lineListBogus", "x"))
}
