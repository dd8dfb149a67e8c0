package command

import (
	"github.com/mobil-koeln/efa-go/models"
)

var lineStopSchema = schema{
	"outputFormat": oneOf(FormatRapidJSON),
	"line":         isString(),
	"allStopInfo":  anyValue(),
}

var lineStopShape = shape{
	"version":          {kind: kindString, required: true},
	"locationSequence": {kind: kindList, required: true},
}

// LineStop requests the ordered stop sequence of one line.
type LineStop struct {
	*request
}

func NewLineStop(format string) (*LineStop, error) {
	r, err := newRequest(OpLineStop, format, lineStopSchema)
	if err != nil {
		return nil, err
	}
	return &LineStop{request: r}, nil
}

// Parse returns the stops in the order the line serves them. No
// reordering here: the sequence is the payload.
func (c *LineStop) Parse(data any) ([]models.Location, error) {
	m, err := decodeBody(c.name, data)
	if err != nil {
		return nil, err
	}
	if err := checkShape(c.name, m, lineStopShape); err != nil {
		return nil, err
	}

	items := objects(m["locationSequence"].([]any))
	stops := make([]models.Location, 0, len(items))
	for _, item := range items {
		stops = append(stops, models.LocationFromMap(item))
	}
	return stops, nil
}
