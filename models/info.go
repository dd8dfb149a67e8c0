package models

import "time"

// InfoType classifies an additional-info message.
type InfoType string

const (
	InfoTypeLine    InfoType = "lineInfo"
	InfoTypeStop    InfoType = "stopInfo"
	InfoTypeArea    InfoType = "areaInfo"
	InfoTypeRoute   InfoType = "routeInfo"
	InfoTypeGeneral InfoType = "generalInfo"
	InfoTypeBanner  InfoType = "bannerInfo"
	InfoTypeTraffic InfoType = "trafficInformation"
	InfoTypeUnknown InfoType = "unknown"
)

var infoTypes = map[InfoType]struct{}{
	InfoTypeLine:    {},
	InfoTypeStop:    {},
	InfoTypeArea:    {},
	InfoTypeRoute:   {},
	InfoTypeGeneral: {},
	InfoTypeBanner:  {},
	InfoTypeTraffic: {},
}

// ParseInfoType maps a raw type string to an InfoType, degrading to
// InfoTypeUnknown for values this client does not know.
func ParseInfoType(s string) InfoType {
	t := InfoType(s)
	if _, ok := infoTypes[t]; !ok {
		return InfoTypeUnknown
	}
	return t
}

// InfoPriority ranks the urgency of an additional-info message.
type InfoPriority string

const (
	PriorityVeryLow  InfoPriority = "veryLow"
	PriorityLow      InfoPriority = "low"
	PriorityNormal   InfoPriority = "normal"
	PriorityHigh     InfoPriority = "high"
	PriorityVeryHigh InfoPriority = "veryHigh"
)

// InfoPriorities lists all legal filterPriority values.
var InfoPriorities = []InfoPriority{
	PriorityVeryLow, PriorityLow, PriorityNormal, PriorityHigh, PriorityVeryHigh,
}

// Info is one additional-info message (disruption notice, construction
// work, general announcement) attached to a line or a departure.
type Info struct {
	ID       string       `json:"id"`
	Type     InfoType     `json:"type"`
	Priority InfoPriority `json:"priority,omitempty"`
	Title    string       `json:"title,omitempty"`
	Content  string       `json:"content,omitempty"`
	URL      string       `json:"url,omitempty"`

	ValidFrom time.Time `json:"validFrom,omitzero"`
	ValidTo   time.Time `json:"validTo,omitzero"`
}

// Infos groups additional-info messages by publication status, the way
// the server reports them.
type Infos struct {
	Current  []Info `json:"current,omitempty"`
	Historic []Info `json:"historic,omitempty"`
}

// InfoFromMap builds an Info from one decoded info element. The server
// scatters the interesting fields over the element itself and a nested
// properties object; prefer the top level where both are present.
func InfoFromMap(m map[string]any) Info {
	title := getString(m, "", "title")
	if title == "" {
		title = getString(m, "", "properties", "subtitle")
	}
	content := getString(m, "", "content")
	if content == "" {
		content = getString(m, "", "properties", "htmlText")
	}

	return Info{
		ID:        getString(m, "", "id"),
		Type:      ParseInfoType(getString(m, "", "type")),
		Priority:  InfoPriority(getString(m, "", "priority")),
		Title:     title,
		Content:   content,
		URL:       getString(m, "", "url"),
		ValidFrom: getDate(m, "timestamps", "validity", "from"),
		ValidTo:   getDate(m, "timestamps", "validity", "to"),
	}
}
