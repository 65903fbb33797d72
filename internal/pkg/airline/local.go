package airline

import "strings"

// Carrier is a domestic carrier display entry.
type Carrier struct {
	Name string
	Logo string
}

// Carriers flagged on domestic search results. Keyed by IATA carrier code.
var localCarriers = map[string]Carrier{
	"DA": {Name: "Dana Air", Logo: "dana-air"},
	"BA": {Name: "British Airways", Logo: "british-airways"},
	"AF": {Name: "Air France", Logo: "air-france"},
	"ZX": {Name: "Air Nirvana", Logo: "air-nirvana"},
	"C3": {Name: "Overland Airways", Logo: "overland"},
	"EO": {Name: "East Africa Airlines", Logo: "east-africa"},
}

func LocalCarrier(code string) (Carrier, bool) {
	carrier, ok := localCarriers[strings.ToUpper(code)]

	return carrier, ok
}

// defaultDuration covers routes missing from the table in both directions.
const defaultDuration = "PT2H00M"

var routeDurations = map[string]string{
	"LOS-ABV": "PT1H15M",
	"LOS-KAN": "PT1H45M",
	"LOS-PHC": "PT1H30M",
	"LOS-ENU": "PT1H45M",
	"ABV-KAN": "PT1H20M",
	"ABV-PHC": "PT1H15M",
	"KAN-PHC": "PT2H00M",
}

// EstimatedDuration looks up an estimated flight duration for a domestic
// route, trying the reverse direction before falling back to the default.
func EstimatedDuration(from, to string) string {
	key := strings.ToUpper(from) + "-" + strings.ToUpper(to)
	reverseKey := strings.ToUpper(to) + "-" + strings.ToUpper(from)

	if duration, ok := routeDurations[key]; ok {
		return duration
	}

	if duration, ok := routeDurations[reverseKey]; ok {
		return duration
	}

	return defaultDuration
}
