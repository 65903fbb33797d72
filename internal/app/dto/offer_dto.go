package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jftravel/flight-offer-service/internal/pkg/exception"
)

// Offer sources.
const (
	SourceLive   = "live"
	SourceStatic = "static"
)

// Offer is a single priced flight option. Price is markup-inclusive for live
// offers; static catalog offers carry pre-baked prices.
type Offer struct {
	Airline        string  `json:"airline"`
	AirlineCode    string  `json:"airlineCode"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Price          float64 `json:"price"`
	PriceFormatted string  `json:"priceFormatted,omitempty"`
	BasePrice      float64 `json:"basePrice"`
	Currency       string  `json:"currency"`
	Duration       string  `json:"duration"`
	Source         string  `json:"source"`
	FlightNumber   string  `json:"flightNumber,omitempty"`

	// Domestic annotations, set only by the nigerian-local search.
	IsLocalFlight         bool   `json:"isLocalFlight,omitempty"`
	FlightType            string `json:"flightType,omitempty"`
	NigerianAirline       bool   `json:"nigerianAirline,omitempty"`
	AirlineLogo           string `json:"airlineLogo,omitempty"`
	EstimatedDuration     string `json:"estimatedDuration,omitempty"`
	EstimatedDurationText string `json:"estimatedDurationText,omitempty"`
}

// SearchRequest is the query contract of the live search endpoints.
type SearchRequest struct {
	Origin        string `json:"origin" validate:"required,len=3,alpha"`
	Destination   string `json:"destination" validate:"required,len=3,alpha"`
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	Adults        int    `json:"adults" validate:"min=1,max=9"`
}

func (s *SearchRequest) BindQuery(r *http.Request) error {
	query := r.URL.Query()

	s.Origin = strings.ToUpper(query.Get("origin"))
	s.Destination = strings.ToUpper(query.Get("destination"))
	s.DepartureDate = query.Get("departureDate")
	s.Adults = 1

	if raw := query.Get("adults"); raw != "" {
		adults, err := strconv.Atoi(raw)
		if err != nil {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("adults must be an integer, got %q", raw),
			}
		}
		s.Adults = adults
	}

	return s.Validate()
}

func (s *SearchRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	// departure must be today or later, compared on calendar date
	departure, _ := time.Parse("2006-01-02", s.DepartureDate)
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	if departure.Before(today) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "departureDate must be today or a future date",
		}
	}

	return nil
}

// StaticSearchRequest is the query contract of the static catalog endpoint.
// The catalog has no departure dates, only fixed schedules.
type StaticSearchRequest struct {
	Origin      string `json:"origin" validate:"required,len=3,alpha"`
	Destination string `json:"destination" validate:"required,len=3,alpha"`
	Adults      int    `json:"adults" validate:"min=1,max=9"`
}

func (s *StaticSearchRequest) BindQuery(r *http.Request) error {
	query := r.URL.Query()

	s.Origin = strings.ToUpper(query.Get("origin"))
	s.Destination = strings.ToUpper(query.Get("destination"))
	s.Adults = 1

	if raw := query.Get("adults"); raw != "" {
		adults, err := strconv.Atoi(raw)
		if err != nil {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("adults must be an integer, got %q", raw),
			}
		}
		s.Adults = adults
	}

	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// RoutesRequest has no parameters; it exists so the available-routes
// endpoint fits the shared decode pipeline.
type RoutesRequest struct{}

func (s *RoutesRequest) BindQuery(_ *http.Request) error {
	return nil
}

type Meta struct {
	Count       int    `json:"count"`
	Source      string `json:"source,omitempty"`
	Fallback    bool   `json:"fallback,omitempty"`
	FlightType  string `json:"flightType,omitempty"`
	Region      string `json:"region,omitempty"`
	Note        string `json:"note,omitempty"`
	Description string `json:"description,omitempty"`
}

// OfferSearchResponse is the success body of every flight search endpoint.
type OfferSearchResponse struct {
	Data []Offer `json:"data"`
	Meta Meta    `json:"meta"`
}

type RoutesResponse struct {
	Success     bool     `json:"success"`
	Routes      []string `json:"routes"`
	Count       int      `json:"count"`
	Description string   `json:"description"`
}
