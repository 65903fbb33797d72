package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/jftravel/flight-offer-service/internal/app/dto"
)

type AggregatorService interface {
	SearchStrict(ctx context.Context, req dto.SearchRequest) (dto.OfferSearchResponse, error)
	SearchWithFallback(ctx context.Context, req dto.SearchRequest) (dto.OfferSearchResponse, error)
	SearchLocalDomestic(ctx context.Context, req dto.SearchRequest) (dto.OfferSearchResponse, error)
	StaticOffers(ctx context.Context, req dto.StaticSearchRequest) (dto.OfferSearchResponse, error)
	AvailableRoutes(ctx context.Context) (dto.RoutesResponse, error)
}

type FlightEndpoints struct {
	Search          endpoint.Endpoint
	SearchFallback  endpoint.Endpoint
	NigerianLocal   endpoint.Endpoint
	Static          endpoint.Endpoint
	AvailableRoutes endpoint.Endpoint
}

func MakeFlightEndpoints(service AggregatorService) FlightEndpoints {
	return FlightEndpoints{
		Search:          makeSearchEndpoint(service),
		SearchFallback:  makeSearchFallbackEndpoint(service),
		NigerianLocal:   makeNigerianLocalEndpoint(service),
		Static:          makeStaticEndpoint(service),
		AvailableRoutes: makeAvailableRoutesEndpoint(service),
	}
}

func makeSearchEndpoint(service AggregatorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.SearchStrict(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("aggregator service: %w", err)
		}

		return resp, nil
	}
}

func makeSearchFallbackEndpoint(service AggregatorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.SearchWithFallback(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("aggregator service: %w", err)
		}

		return resp, nil
	}
}

func makeNigerianLocalEndpoint(service AggregatorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.SearchLocalDomestic(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("aggregator service: %w", err)
		}

		return resp, nil
	}
}

func makeStaticEndpoint(service AggregatorService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.StaticSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.StaticOffers(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("aggregator service: %w", err)
		}

		return resp, nil
	}
}

func makeAvailableRoutesEndpoint(service AggregatorService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		resp, err := service.AvailableRoutes(ctx)
		if err != nil {
			return nil, fmt.Errorf("aggregator service: %w", err)
		}

		return resp, nil
	}
}
