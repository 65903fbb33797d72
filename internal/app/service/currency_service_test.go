package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jftravel/flight-offer-service/internal/app/dto"
)

func TestCurrencyService_LiveRates(t *testing.T) {
	t.Run("not_configured", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		cache.On("Configured").Return(false)

		_, err := svc.LiveRates(context.Background(), dto.LiveRatesRequest{Base: "USD"})
		assert.ErrorIs(t, err, ErrRateServiceNotConfigured)
	})

	t.Run("provider_unreachable", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		cache.On("Configured").Return(true)
		cache.On("CommonRates", mock.Anything, "USD").Return(map[string]float64{})

		_, err := svc.LiveRates(context.Background(), dto.LiveRatesRequest{Base: "USD"})
		assert.ErrorIs(t, err, ErrLiveRatesUnavailable)
	})

	t.Run("returns_rates_and_spreads", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		common := map[string]float64{"NGN": 1500, "EUR": 0.9}
		cache.On("Configured").Return(true)
		cache.On("CommonRates", mock.Anything, "USD").Return(common)

		resp, err := svc.LiveRates(context.Background(), dto.LiveRatesRequest{Base: "USD"})
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, "USD", resp.Base)
		assert.Equal(t, common, resp.Rates)
		assert.InDelta(t, 1470, resp.Spreads["NGN"].Buy, 0.01)
		assert.InDelta(t, 1530, resp.Spreads["NGN"].Sell, 0.01)
		assert.InDelta(t, 0.88, resp.Spreads["EUR"].Buy, 0.01)
		assert.InDelta(t, 0.92, resp.Spreads["EUR"].Sell, 0.01)
		assert.InDelta(t, time.Now().Unix(), resp.Timestamp, 2)
	})
}

func TestCurrencyService_Convert(t *testing.T) {
	t.Run("not_configured", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		cache.On("Configured").Return(false)

		_, err := svc.Convert(context.Background(), dto.ConvertRequest{Amount: 100, From: "USD", To: "NGN"})
		assert.ErrorIs(t, err, ErrRateServiceNotConfigured)
	})

	t.Run("live_conversion", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		cache.On("Configured").Return(true)
		cache.On("Rate", mock.Anything, "USD", "NGN").Return(float64(1500), true)

		resp, err := svc.Convert(context.Background(), dto.ConvertRequest{Amount: 100, From: "USD", To: "NGN"})
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, float64(100), resp.Amount)
		assert.Equal(t, "USD", resp.From)
		assert.Equal(t, "NGN", resp.To)
		assert.Equal(t, float64(150000), resp.Converted)
		assert.Equal(t, float64(1500), resp.Rate)
		assert.True(t, resp.Live)
		assert.Empty(t, resp.Reason)
	})

	t.Run("missing_rate_fails_open", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		cache.On("Configured").Return(true)
		cache.On("Rate", mock.Anything, "USD", "XXX").Return(float64(0), false)

		resp, err := svc.Convert(context.Background(), dto.ConvertRequest{Amount: 100, From: "USD", To: "XXX"})
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, float64(100), resp.Converted)
		assert.False(t, resp.Live)
		assert.Equal(t, "rate unavailable", resp.Reason)
	})

	t.Run("identity_conversion_skips_lookup", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		cache.On("Configured").Return(true)

		resp, err := svc.Convert(context.Background(), dto.ConvertRequest{Amount: 250, From: "NGN", To: "NGN"})
		require.NoError(t, err)

		assert.Equal(t, float64(250), resp.Converted)
		assert.Equal(t, float64(1), resp.Rate)
		assert.True(t, resp.Live)
		cache.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCurrencyService_ClearRates(t *testing.T) {
	t.Run("clears_and_reports_base", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		cache.On("Clear", mock.Anything, "USD").Return(nil)

		resp, err := svc.ClearRates(context.Background(), dto.ClearRatesRequest{Base: "USD"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "USD", resp.Base)
		assert.Equal(t, "rate cache cleared", resp.Message)
	})

	t.Run("propagates_store_error", func(t *testing.T) {
		cache := NewMockRateCacher(t)
		svc := NewCurrencyService(cache)

		storeErr := errors.New("connection refused")
		cache.On("Clear", mock.Anything, "NGN").Return(storeErr)

		_, err := svc.ClearRates(context.Background(), dto.ClearRatesRequest{Base: "NGN"})
		assert.ErrorIs(t, err, storeErr)
	})
}
