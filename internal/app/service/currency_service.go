package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/jftravel/flight-offer-service/internal/app/dto"
	"github.com/jftravel/flight-offer-service/internal/pkg/rates"
)

// RateCacher is the cached rate store behind the currency endpoints.
type RateCacher interface {
	GetRates(ctx context.Context, base string) rates.Snapshot
	CommonRates(ctx context.Context, base string) map[string]float64
	Rate(ctx context.Context, from, to string) (float64, bool)
	Clear(ctx context.Context, base string) error
	Configured() bool
}

// CurrencyService serves the live rate board and conversions.
type CurrencyService struct {
	Cache     RateCacher
	Converter *rates.Converter
}

func NewCurrencyService(cache RateCacher) *CurrencyService {
	return &CurrencyService{
		Cache:     cache,
		Converter: rates.NewConverter(cache),
	}
}

// LiveRates returns the common-currency projection for a base currency,
// with derived buy/sell spreads for the rate-management screen.
func (s *CurrencyService) LiveRates(ctx context.Context, req dto.LiveRatesRequest) (dto.LiveRatesResponse, error) {
	slog.InfoContext(ctx, "fetching live rates", slog.String("base", req.Base))

	if !s.Cache.Configured() {
		slog.WarnContext(ctx, "rate service API key not configured")

		return dto.LiveRatesResponse{}, ErrRateServiceNotConfigured
	}

	common := s.Cache.CommonRates(ctx, req.Base)
	if len(common) == 0 {
		slog.WarnContext(ctx, "no rates returned from provider", slog.String("base", req.Base))

		return dto.LiveRatesResponse{}, ErrLiveRatesUnavailable
	}

	spreads := make(map[string]dto.Spread, len(common))
	for currency, mid := range common {
		buy, sell := rates.Spread(mid)
		spreads[currency] = dto.Spread{Buy: buy, Sell: sell}
	}

	return dto.LiveRatesResponse{
		Success:   true,
		Base:      req.Base,
		Rates:     common,
		Spreads:   spreads,
		Timestamp: time.Now().Unix(),
	}, nil
}

// Convert converts an amount between two currencies. The fail-open path
// (rate unavailable) is reported through Live=false, not an error.
func (s *CurrencyService) Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error) {
	slog.InfoContext(ctx, "converting currency",
		slog.Float64("amount", req.Amount),
		slog.String("from", req.From),
		slog.String("to", req.To))

	if !s.Cache.Configured() {
		return dto.ConvertResponse{}, ErrRateServiceNotConfigured
	}

	conversion := s.Converter.Convert(ctx, req.Amount, req.From, req.To)

	return dto.ConvertResponse{
		Success:   true,
		Amount:    conversion.Amount,
		From:      conversion.From,
		To:        conversion.To,
		Converted: conversion.Converted,
		Rate:      conversion.Rate,
		Live:      conversion.Live,
		Reason:    conversion.Reason,
		Timestamp: time.Now().Unix(),
	}, nil
}

// ClearRates evicts the cached snapshot for a base currency so the next
// read fetches fresh rates.
func (s *CurrencyService) ClearRates(ctx context.Context, req dto.ClearRatesRequest) (dto.ClearRatesResponse, error) {
	slog.InfoContext(ctx, "clearing rate cache", slog.String("base", req.Base))

	if err := s.Cache.Clear(ctx, req.Base); err != nil {
		return dto.ClearRatesResponse{}, err
	}

	return dto.ClearRatesResponse{
		Success: true,
		Base:    req.Base,
		Message: "rate cache cleared",
	}, nil
}
