package staticcatalog

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/jftravel/flight-offer-service/internal/app/dto"
	"github.com/jftravel/flight-offer-service/internal/pkg/utils"
)

// Catalog is a small manually curated fallback table of flight offers for
// Nigerian routes, used when the live provider is unavailable. Lookup is an
// exact ORIGIN-DESTINATION key match; a reverse route must be seeded
// explicitly or it does not exist.
type Catalog struct {
	offers map[string][]dto.Offer
}

func NewCatalog() *Catalog {
	return &Catalog{offers: seedOffers()}
}

// RouteKey builds the canonical uppercase catalog key.
func RouteKey(origin, destination string) string {
	return strings.ToUpper(origin) + "-" + strings.ToUpper(destination)
}

// Lookup returns the seeded offers for a route, empty when unseeded. The
// returned slice is a copy so callers cannot mutate the table.
func (c *Catalog) Lookup(origin, destination string) []dto.Offer {
	route := RouteKey(origin, destination)

	seeded, ok := c.offers[route]
	if !ok {
		slog.Warn("no static flights found for route", slog.String("route", route))

		return []dto.Offer{}
	}

	slog.Info("returning static flights for route",
		slog.String("route", route), slog.Int("count", len(seeded)))

	offers := make([]dto.Offer, len(seeded))
	copy(offers, seeded)

	return offers
}

// Search adapts a request to a lookup. Static offers are fixed schedules,
// so passenger count does not change the result.
func (c *Catalog) Search(req dto.StaticSearchRequest) []dto.Offer {
	return c.Lookup(req.Origin, req.Destination)
}

// AvailableRoutes returns every seeded route key, sorted.
func (c *Catalog) AvailableRoutes() []string {
	routes := make([]string, 0, len(c.offers))
	for route := range c.offers {
		routes = append(routes, route)
	}

	sort.Strings(routes)

	return routes
}

// AddRoute seeds or replaces a route. Intended for tests and future admin
// tooling, not request-path mutation.
func (c *Catalog) AddRoute(origin, destination string, offers []dto.Offer) {
	route := RouteKey(origin, destination)
	c.offers[route] = offers

	slog.Info("added static route",
		slog.String("route", route), slog.Int("count", len(offers)))
}

type seed struct {
	airline      string
	airlineCode  string
	departure    string
	arrival      string
	price        float64
	basePrice    float64
	duration     string
	flightNumber string
}

func seedOffers() map[string][]dto.Offer {
	table := map[string][]seed{
		"LOS-ABV": {
			{"Dana Air", "DA", "07:00", "08:15", 110000, 100000, "PT1H15M", "DA101"},
			{"Air Peace", "NC", "10:30", "11:45", 122000, 112000, "PT1H15M", "NC202"},
			{"Overland Airways", "C3", "14:00", "15:15", 116000, 106000, "PT1H15M", "C3303"},
		},
		"ABV-LOS": {
			{"Dana Air", "DA", "08:30", "09:45", 110000, 100000, "PT1H15M", "DA104"},
			{"Air Peace", "NC", "12:00", "13:15", 122000, 112000, "PT1H15M", "NC205"},
		},
		"LOS-KAN": {
			{"Dana Air", "DA", "06:00", "07:45", 105000, 97000, "PT1H45M", "DA501"},
			{"Air Peace", "NC", "09:00", "10:45", 105000, 97000, "PT1H45M", "NC501"},
		},
		"KAN-LOS": {
			{"Dana Air", "DA", "11:00", "12:45", 98000, 90000, "PT1H45M", "DA504"},
			{"Air Peace", "NC", "16:00", "17:45", 98000, 90000, "PT1H45M", "NC504"},
		},
		"LOS-PHC": {
			{"Dana Air", "DA", "08:00", "09:30", 116000, 107000, "PT1H30M", "DA301"},
			{"Air Peace", "NC", "11:30", "13:00", 125000, 115000, "PT1H30M", "NC301"},
		},
		"PHC-LOS": {
			{"Dana Air", "DA", "10:00", "11:30", 116000, 107000, "PT1H30M", "DA304"},
			{"Air Peace", "NC", "14:00", "15:30", 125000, 115000, "PT1H30M", "NC304"},
		},
		"ABV-KAN": {
			{"Dana Air", "DA", "09:00", "10:20", 105000, 97000, "PT1H20M", "DA401"},
			{"Air Peace", "NC", "13:00", "14:20", 115000, 105000, "PT1H20M", "NC401"},
		},
		"KAN-ABV": {
			{"Dana Air", "DA", "11:30", "12:50", 105000, 97000, "PT1H20M", "DA404"},
			{"Air Peace", "NC", "15:00", "16:20", 115000, 105000, "PT1H20M", "NC404"},
		},
		"LOS-ENU": {
			{"Dana Air", "DA", "07:30", "09:15", 127000, 117000, "PT1H45M", "DA701"},
			{"Air Peace", "NC", "12:00", "13:45", 130000, 121000, "PT1H45M", "NC701"},
		},
		"ENU-LOS": {
			{"Dana Air", "DA", "10:00", "11:45", 127000, 117000, "PT1H45M", "DA704"},
			{"Air Peace", "NC", "14:30", "16:15", 130000, 121000, "PT1H45M", "NC704"},
		},
	}

	offers := make(map[string][]dto.Offer, len(table))

	for route, seeds := range table {
		parts := strings.SplitN(route, "-", 2)

		routeOffers := make([]dto.Offer, 0, len(seeds))
		for _, s := range seeds {
			routeOffers = append(routeOffers, dto.Offer{
				Airline:        s.airline,
				AirlineCode:    s.airlineCode,
				From:           parts[0],
				To:             parts[1],
				DepartureTime:  s.departure,
				ArrivalTime:    s.arrival,
				Price:          s.price,
				PriceFormatted: utils.FormatNaira(int64(s.price)),
				BasePrice:      s.basePrice,
				Currency:       "NGN",
				Duration:       s.duration,
				Source:         dto.SourceStatic,
				FlightNumber:   s.flightNumber,
			})
		}

		offers[route] = routeOffers
	}

	return offers
}
