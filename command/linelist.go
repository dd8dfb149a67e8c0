package command

import (
	"github.com/mobil-koeln/efa-go/models"
)

// The line-list parameters are network-operator codes the server
// interprets itself; apart from the output format they are passed
// through unchecked.
var lineListSchema = schema{
	"outputFormat":          oneOf(FormatRapidJSON),
	"lineListBranchCode":    anyValue(),
	"lineListNetBranchCode": anyValue(),
	"lineListSubnetwork":    anyValue(),
	"lineListOMC":           anyValue(),
	"lineListMixedLines":    anyValue(),
	"mergeDir":              anyValue(),
	"lineReqType":           anyValue(),
}

var lineListShape = shape{
	"version":         {kind: kindString, required: true},
	"transportations": {kind: kindList, required: true},
}

// LineList requests the complete list of lines known to the endpoint.
type LineList struct {
	*request
}

func NewLineList(format string) (*LineList, error) {
	r, err := newRequest(OpLineList, format, lineListSchema)
	if err != nil {
		return nil, err
	}
	return &LineList{request: r}, nil
}

// Parse returns the listed lines in server order.
func (c *LineList) Parse(data any) ([]models.Line, error) {
	m, err := decodeBody(c.name, data)
	if err != nil {
		return nil, err
	}
	if err := checkShape(c.name, m, lineListShape); err != nil {
		return nil, err
	}

	items := objects(m["transportations"].([]any))
	lines := make([]models.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.LineFromMap(item))
	}
	return lines, nil
}
