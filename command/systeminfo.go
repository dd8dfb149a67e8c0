package command

import (
	"github.com/mobil-koeln/efa-go/models"
)

var systemInfoSchema = schema{
	"outputFormat":      oneOf(FormatRapidJSON),
	"coordOutputFormat": oneOf(string(models.CoordWGS84)),
}

var systemInfoShape = shape{
	"version":  {kind: kindString, required: true},
	"ptKernel": {kind: kindMap, required: true},
	"validity": {kind: kindMap, required: true},
}

// SystemInfo requests the endpoint's own metadata.
type SystemInfo struct {
	*request
}

func NewSystemInfo(format string) (*SystemInfo, error) {
	r, err := newRequest(OpSystemInfo, format, systemInfoSchema)
	if err != nil {
		return nil, err
	}
	return &SystemInfo{request: r}, nil
}

func (c *SystemInfo) Parse(data any) (models.SystemInfo, error) {
	m, err := decodeBody(c.name, data)
	if err != nil {
		return models.SystemInfo{}, err
	}
	if err := checkShape(c.name, m, systemInfoShape); err != nil {
		return models.SystemInfo{}, err
	}
	return models.SystemInfoFromMap(m), nil
}
