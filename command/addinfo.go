package command

import (
	"github.com/mobil-koeln/efa-go/models"
)

func infoTypeValues() []string {
	return []string{
		string(models.InfoTypeLine),
		string(models.InfoTypeStop),
		string(models.InfoTypeArea),
		string(models.InfoTypeRoute),
		string(models.InfoTypeGeneral),
		string(models.InfoTypeBanner),
		string(models.InfoTypeTraffic),
	}
}

func infoPriorityValues() []string {
	values := make([]string, 0, len(models.InfoPriorities))
	for _, p := range models.InfoPriorities {
		values = append(values, string(p))
	}
	return values
}

var additionalInfoSchema = schema{
	"outputFormat":            oneOf(FormatRapidJSON),
	"coordOutputFormat":       oneOf(string(models.CoordWGS84)),
	"filterDateValid":         isString(),
	"filterPublicationStatus": oneOf("current", "historic"),
	"filterInfoID":            isString(),
	"filterInfoType":          oneOf(infoTypeValues()...),
	"filterPriority":          oneOf(infoPriorityValues()...),
	"line":                    isString(),
}

var additionalInfoShape = shape{
	"version": {kind: kindString, required: true},
	"infos":   {kind: kindMap, required: true},
}

// AdditionalInfo requests line-level info messages (disruptions,
// construction notices, announcements).
type AdditionalInfo struct {
	*request
}

func NewAdditionalInfo(format string) (*AdditionalInfo, error) {
	r, err := newRequest(OpAdditionalInfo, format, additionalInfoSchema)
	if err != nil {
		return nil, err
	}
	return &AdditionalInfo{request: r}, nil
}

// Parse returns the info messages grouped by publication status.
func (c *AdditionalInfo) Parse(data any) (models.Infos, error) {
	m, err := decodeBody(c.name, data)
	if err != nil {
		return models.Infos{}, err
	}
	if err := checkShape(c.name, m, additionalInfoShape); err != nil {
		return models.Infos{}, err
	}

	infos := m["infos"].(map[string]any)
	parseGroup := func(key string) []models.Info {
		list, _ := infos[key].([]any)
		if len(list) == 0 {
			return nil
		}
		group := make([]models.Info, 0, len(list))
		for _, item := range objects(list) {
			group = append(group, models.InfoFromMap(item))
		}
		return group
	}

	return models.Infos{
		Current:  parseGroup("current"),
		Historic: parseGroup("historic"),
	}, nil
}
