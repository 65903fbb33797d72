package service

import (
	"context"
	"log/slog"

	"github.com/jftravel/flight-offer-service/internal/app/dto"
	"github.com/jftravel/flight-offer-service/internal/pkg/airline"
	"github.com/jftravel/flight-offer-service/internal/pkg/offerprovider"
	"github.com/jftravel/flight-offer-service/internal/pkg/utils"
)

// StaticCatalog is the curated fallback table behind the aggregator.
type StaticCatalog interface {
	Lookup(origin, destination string) []dto.Offer
	Search(req dto.StaticSearchRequest) []dto.Offer
	AvailableRoutes() []string
}

// AggregatorService orchestrates the live provider and the static catalog.
// The three search operations differ only in fallback policy.
type AggregatorService struct {
	Live    offerprovider.OfferProvider
	Catalog StaticCatalog
}

func NewAggregatorService(live offerprovider.OfferProvider, catalog StaticCatalog) *AggregatorService {
	return &AggregatorService{
		Live:    live,
		Catalog: catalog,
	}
}

// SearchStrict queries the live provider only and returns its result or
// error as-is, for callers that need to know whether live data exists.
func (s *AggregatorService) SearchStrict(ctx context.Context, req dto.SearchRequest) (dto.OfferSearchResponse, error) {
	offers, err := s.Live.Search(ctx, req)
	if err != nil {
		return dto.OfferSearchResponse{}, err
	}

	return dto.OfferSearchResponse{
		Data: offers,
		Meta: dto.Meta{
			Count:  len(offers),
			Source: dto.SourceLive,
		},
	}, nil
}

// SearchWithFallback tries the live provider and falls back to the static
// catalog on an empty or failed result. Sequential, no retries: the live
// attempt fully resolves before the catalog is consulted.
func (s *AggregatorService) SearchWithFallback(ctx context.Context, req dto.SearchRequest) (dto.OfferSearchResponse, error) {
	liveOffers, liveErr := s.Live.Search(ctx, req)
	if liveErr == nil && len(liveOffers) > 0 {
		return dto.OfferSearchResponse{
			Data: liveOffers,
			Meta: dto.Meta{
				Count:  len(liveOffers),
				Source: dto.SourceLive,
			},
		}, nil
	}

	if liveErr != nil {
		slog.WarnContext(ctx, "live search failed, trying static catalog",
			slog.String("origin", req.Origin),
			slog.String("destination", req.Destination),
			slog.String("error", liveErr.Error()))
	}

	staticOffers := s.Catalog.Lookup(req.Origin, req.Destination)
	if len(staticOffers) > 0 {
		return dto.OfferSearchResponse{
			Data: staticOffers,
			Meta: dto.Meta{
				Count:    len(staticOffers),
				Source:   dto.SourceStatic,
				Fallback: true,
				Note:     "Using static prices - live API unavailable",
			},
		}, nil
	}

	liveDetail := "Unknown error"
	if liveErr != nil {
		liveDetail = liveErr.Error()
	}

	return dto.OfferSearchResponse{}, NoOffersError{LiveError: liveDetail}
}

// SearchLocalDomestic is a strict live search annotated with domestic
// metadata: local carrier flag and logo, and an estimated route duration.
func (s *AggregatorService) SearchLocalDomestic(ctx context.Context, req dto.SearchRequest) (dto.OfferSearchResponse, error) {
	offers, err := s.Live.Search(ctx, req)
	if err != nil {
		return dto.OfferSearchResponse{}, err
	}

	for i := range offers {
		offers[i].IsLocalFlight = true
		offers[i].FlightType = "domestic"

		if carrier, ok := airline.LocalCarrier(offers[i].AirlineCode); ok {
			offers[i].NigerianAirline = true
			offers[i].AirlineLogo = carrier.Logo
		}

		estimated := airline.EstimatedDuration(offers[i].From, offers[i].To)
		offers[i].EstimatedDuration = estimated
		offers[i].EstimatedDurationText = utils.ConvertMinutesToDuration(
			utils.ParseISODurationMinutes(estimated))
	}

	return dto.OfferSearchResponse{
		Data: offers,
		Meta: dto.Meta{
			Count:      len(offers),
			Source:     dto.SourceLive,
			FlightType: "domestic",
			Region:     "Nigerian Local",
		},
	}, nil
}

// StaticOffers serves the catalog directly. An unseeded route is an error
// carrying the seeded route list.
func (s *AggregatorService) StaticOffers(ctx context.Context, req dto.StaticSearchRequest) (dto.OfferSearchResponse, error) {
	offers := s.Catalog.Search(req)
	if len(offers) == 0 {
		return dto.OfferSearchResponse{}, NoStaticRouteError{
			AvailableRoutes: s.Catalog.AvailableRoutes(),
		}
	}

	return dto.OfferSearchResponse{
		Data: offers,
		Meta: dto.Meta{
			Count:       len(offers),
			Source:      dto.SourceStatic,
			Description: "Fixed flight prices and schedules",
		},
	}, nil
}

// AvailableRoutes lists the catalog's seeded route keys.
func (s *AggregatorService) AvailableRoutes(_ context.Context) (dto.RoutesResponse, error) {
	routes := s.Catalog.AvailableRoutes()

	return dto.RoutesResponse{
		Success:     true,
		Routes:      routes,
		Count:       len(routes),
		Description: "Available static flight routes",
	}, nil
}
