package testutil

// Canned rapidJSON responses as real EFA endpoints emit them.

// SystemInfoResponse is a valid system-info response
const SystemInfoResponse = `{
	"version": "10.6.21.17",
	"ptKernel": {
		"appVersion": "10.6.21.17 build 16.09.2024 01:30:57",
		"dataFormat": "EFA10_04_00",
		"dataBuild": "2025-08-18T17:02:06Z"
	},
	"validity": {
		"from": "2025-01-01",
		"to": "2025-12-13"
	}
}`

// StopFinderResponse is a valid stop-finder response with three matches
// in ascending match quality, one of them locally identified.
const StopFinderResponse = `{
	"version": "10.6.21.17",
	"systemMessages": [
		{"type": "error", "module": "BROKER", "code": -8010, "text": ""}
	],
	"locations": [
		{
			"id": "de:09564:1020",
			"isGlobalId": true,
			"name": "Nürnberg, Plärrer",
			"disassembledName": "Plärrer",
			"coord": [49.448623, 11.066256],
			"type": "stop",
			"matchQuality": 667,
			"productClasses": [2, 3, 4, 5]
		},
		{
			"id": "streetID:1500000871",
			"isGlobalId": false,
			"name": "Nürnberg, Plärrersystem",
			"type": "street",
			"matchQuality": 701,
			"properties": {
				"stopId": "20001571"
			}
		},
		{
			"id": "de:09564:704",
			"isGlobalId": true,
			"name": "Nürnberg, Hauptbahnhof",
			"disassembledName": "Hauptbahnhof",
			"coord": [49.446380, 11.081829],
			"type": "stop",
			"matchQuality": 1000,
			"productClasses": [0, 1, 2, 3, 4, 5]
		}
	]
}`

// DeparturesResponse is a valid departure-monitor response with one
// real-time and one schedule-only event.
const DeparturesResponse = `{
	"version": "10.6.21.17",
	"locations": [
		{
			"id": "de:09564:704",
			"isGlobalId": true,
			"name": "Nürnberg, Hauptbahnhof",
			"type": "stop"
		}
	],
	"stopEvents": [
		{
			"location": {
				"id": "de:09564:704:2:3",
				"isGlobalId": true,
				"name": "Nürnberg, Hauptbahnhof",
				"type": "platform",
				"properties": {
					"platform": "3"
				}
			},
			"departureTimePlanned": "2025-08-25T14:30:00Z",
			"departureTimeEstimated": "2025-08-25T14:33:00Z",
			"transportation": {
				"id": "vgn:11002: :H:j25",
				"name": "U-Bahn U2",
				"number": "U2",
				"product": {"id": 4, "class": 2, "name": "U-Bahn", "iconId": 1},
				"operator": {"id": "VAG", "name": "VAG"},
				"destination": {"id": "80001402", "name": "Flughafen", "type": "stop"}
			},
			"infos": [
				{
					"id": "41354",
					"type": "lineInfo",
					"priority": "normal",
					"title": "Aufzug außer Betrieb",
					"content": "Der Aufzug ist bis auf Weiteres außer Betrieb."
				}
			]
		},
		{
			"location": {
				"id": "de:09564:704:1:1",
				"isGlobalId": true,
				"name": "Nürnberg, Hauptbahnhof",
				"type": "platform",
				"properties": {
					"platform": "1"
				}
			},
			"departureTimePlanned": "2025-08-25T14:35:00Z",
			"transportation": {
				"id": "vgn:31036: :R:j25",
				"name": "Bus 36",
				"number": "36",
				"product": {"id": 6, "class": 5, "name": "Bus", "iconId": 3},
				"operator": {"id": "VAG", "name": "VAG"},
				"destination": {"id": "80000762", "name": "Doku-Zentrum", "type": "stop"}
			}
		}
	]
}`

// ServingLinesResponse is a valid serving-lines response
const ServingLinesResponse = `{
	"version": "10.6.21.17",
	"lines": [
		{
			"id": "vgn:11002: :H:j25",
			"name": "U-Bahn U2",
			"number": "U2",
			"description": "Röthenbach - Flughafen",
			"product": {"id": 4, "class": 2, "name": "U-Bahn", "iconId": 1},
			"operator": {"id": "VAG", "code": "VAG", "name": "VAG Verkehrs-AG"},
			"destination": {"id": "80001402", "name": "Flughafen", "type": "stop"},
			"properties": {
				"globalId": "de:vgn:702_U2:0",
				"timetablePeriod": "Jahresfahrplan 2025",
				"validity": {"from": "2025-01-01", "to": "2025-12-13"}
			}
		},
		{
			"id": "vgn:11002: :R:j25",
			"name": "U-Bahn U2",
			"number": "U2",
			"description": "Flughafen - Röthenbach",
			"product": {"id": 4, "class": 2, "name": "U-Bahn", "iconId": 1},
			"operator": {"id": "VAG", "code": "VAG", "name": "VAG Verkehrs-AG"},
			"destination": {"id": "80001305", "name": "Röthenbach", "type": "stop"},
			"properties": {
				"globalId": "de:vgn:702_U2:1",
				"timetablePeriod": "Jahresfahrplan 2025",
				"validity": {"from": "2025-01-01", "to": "2025-12-13"}
			}
		}
	]
}`

// LineListResponse is a valid line-list response; line-list bodies use
// the transportations key instead of lines.
const LineListResponse = `{
	"version": "10.6.21.17",
	"transportations": [
		{
			"id": "vgn:11001: :H:j25",
			"name": "U-Bahn U1",
			"number": "U1",
			"product": {"id": 4, "class": 2, "name": "U-Bahn", "iconId": 1},
			"operator": {"id": "VAG", "name": "VAG"},
			"destination": {"id": "80001120", "name": "Fürth Hardhöhe", "type": "stop"}
		},
		{
			"id": "vgn:13004: :H:j25",
			"name": "Straßenbahn 4",
			"number": "4",
			"product": {"id": 5, "class": 4, "name": "Straßenbahn", "iconId": 2},
			"operator": {"id": "VAG", "name": "VAG"},
			"destination": {"id": "80000518", "name": "Gibitzenhof", "type": "stop"}
		}
	]
}`

// LineStopsResponse is a valid line-stop response with the stop sequence
// of one line in travel order.
const LineStopsResponse = `{
	"version": "10.6.21.17",
	"locationSequence": [
		{
			"id": "de:09564:1305",
			"isGlobalId": true,
			"name": "Nürnberg, Röthenbach",
			"disassembledName": "Röthenbach",
			"coord": [49.416019, 11.031657],
			"type": "stop"
		},
		{
			"id": "de:09564:1020",
			"isGlobalId": true,
			"name": "Nürnberg, Plärrer",
			"disassembledName": "Plärrer",
			"coord": [49.448623, 11.066256],
			"type": "stop"
		},
		{
			"id": "de:09564:704",
			"isGlobalId": true,
			"name": "Nürnberg, Hauptbahnhof",
			"disassembledName": "Hauptbahnhof",
			"coord": [49.446380, 11.081829],
			"type": "stop"
		}
	]
}`

// AdditionalInfoResponse is a valid additional-info response with one
// current and one historic message.
const AdditionalInfoResponse = `{
	"version": "10.6.21.17",
	"infos": {
		"current": [
			{
				"id": "41354",
				"type": "lineInfo",
				"priority": "high",
				"title": "Schienenersatzverkehr U1",
				"url": "https://www.vag.de/meldungen/41354",
				"properties": {
					"htmlText": "<p>Zwischen Muggenhof und Bärenschanze fahren Busse.</p>"
				},
				"timestamps": {
					"validity": {"from": "2025-08-20", "to": "2025-09-07"}
				}
			}
		],
		"historic": [
			{
				"id": "40211",
				"type": "stopInfo",
				"priority": "low",
				"properties": {
					"subtitle": "Aufzug wieder in Betrieb"
				},
				"timestamps": {
					"validity": {"from": "2025-05-02", "to": "2025-05-16"}
				}
			}
		]
	}
}`

// EmptyObjectResponse is a syntactically valid body missing every field
const EmptyObjectResponse = `{}`

// NotAnObjectResponse is valid JSON with the wrong top-level kind
const NotAnObjectResponse = `["unexpected"]`
