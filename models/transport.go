package models

// TransportType is the numeric product class the EFA server assigns to a
// mode of transport. The codes are part of the wire format and must not
// be renumbered.
type TransportType int

const (
	TransportRail        TransportType = 0  // long-distance and regional rail
	TransportSuburban    TransportType = 1  // S-Bahn
	TransportSubway      TransportType = 2  // U-Bahn
	TransportCityRail    TransportType = 3  // Stadtbahn
	TransportTram        TransportType = 4
	TransportCityBus     TransportType = 5
	TransportRegionalBus TransportType = 6
	TransportExpressBus  TransportType = 7
	TransportCableTram   TransportType = 8 // funicular/cable car
	TransportFerry       TransportType = 9
	TransportOnDemand    TransportType = 10 // AST/on-call services

	// TransportUnknown is the fallback for product classes this client
	// does not know about yet.
	TransportUnknown TransportType = -1
)

var transportNames = map[TransportType]string{
	TransportRail:        "Rail",
	TransportSuburban:    "Suburban",
	TransportSubway:      "Subway",
	TransportCityRail:    "City Rail",
	TransportTram:        "Tram",
	TransportCityBus:     "City Bus",
	TransportRegionalBus: "Regional Bus",
	TransportExpressBus:  "Express Bus",
	TransportCableTram:   "Cable Tram",
	TransportFerry:       "Ferry",
	TransportOnDemand:    "On Demand",
}

// ParseTransportType maps a raw product class to a TransportType.
// Unrecognized codes degrade to TransportUnknown so that a server-side
// addition never fails a whole parse.
func ParseTransportType(code int) TransportType {
	t := TransportType(code)
	if _, ok := transportNames[t]; !ok {
		return TransportUnknown
	}
	return t
}

func (t TransportType) String() string {
	if name, ok := transportNames[t]; ok {
		return name
	}
	return "Unknown"
}
