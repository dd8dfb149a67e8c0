package command

import (
	"github.com/mobil-koeln/efa-go/models"
)

var servingLinesSchema = schema{
	"outputFormat":         oneOf(FormatRapidJSON),
	"coordOutputFormat":    oneOf(string(models.CoordWGS84)),
	"locationServerActive": flag01(),
	"mode":                 oneOf("odv", "line"),
	// mode "odv"
	"type_sl": oneOf("stopID"),
	"name_sl": isString(),
	// mode "line"
	"lineName":             isString(),
	"lineReqType":          intRange(0, models.LineRequestMax),
	"mergeDir":             flag01(),
	"lsShowTrainsExplicit": flag01(),
	"line":                 isString(),
}

var servingLinesShape = shape{
	"version": {kind: kindString, required: true},
	"lines":   {kind: kindList, required: true},
}

// ServingLines searches lines by name or lists the lines serving a stop,
// depending on the mode parameter.
type ServingLines struct {
	*request
}

func NewServingLines(format string) (*ServingLines, error) {
	r, err := newRequest(OpServingLines, format, servingLinesSchema)
	if err != nil {
		return nil, err
	}
	return &ServingLines{request: r}, nil
}

// Parse returns the matching lines in server order.
func (c *ServingLines) Parse(data any) ([]models.Line, error) {
	m, err := decodeBody(c.name, data)
	if err != nil {
		return nil, err
	}
	if err := checkShape(c.name, m, servingLinesShape); err != nil {
		return nil, err
	}

	items := objects(m["lines"].([]any))
	lines := make([]models.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.LineFromMap(item))
	}
	return lines, nil
}
