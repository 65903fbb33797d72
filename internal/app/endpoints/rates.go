package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/jftravel/flight-offer-service/internal/app/dto"
)

type CurrencyService interface {
	LiveRates(ctx context.Context, req dto.LiveRatesRequest) (dto.LiveRatesResponse, error)
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
	ClearRates(ctx context.Context, req dto.ClearRatesRequest) (dto.ClearRatesResponse, error)
}

type RateEndpoints struct {
	LiveRates  endpoint.Endpoint
	Convert    endpoint.Endpoint
	ClearRates endpoint.Endpoint
}

func MakeRateEndpoints(service CurrencyService) RateEndpoints {
	return RateEndpoints{
		LiveRates:  makeLiveRatesEndpoint(service),
		Convert:    makeConvertEndpoint(service),
		ClearRates: makeClearRatesEndpoint(service),
	}
}

func makeLiveRatesEndpoint(service CurrencyService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LiveRatesRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.LiveRates(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("currency service: %w", err)
		}

		return resp, nil
	}
}

func makeClearRatesEndpoint(service CurrencyService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ClearRatesRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.ClearRates(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("currency service: %w", err)
		}

		return resp, nil
	}
}

func makeConvertEndpoint(service CurrencyService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ConvertRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.Convert(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("currency service: %w", err)
		}

		return resp, nil
	}
}
