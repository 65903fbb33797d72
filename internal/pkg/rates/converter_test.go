package rates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRateSource struct {
	rates map[string]float64
}

func (s *stubRateSource) Rate(_ context.Context, from, to string) (float64, bool) {
	rate, ok := s.rates[from+"-"+to]

	return rate, ok
}

func TestConverter_Convert(t *testing.T) {
	source := &stubRateSource{rates: map[string]float64{
		"USD-NGN": 1500,
		"NGN-USD": 1.0 / 1500,
		"USD-EUR": 0.8567,
	}}
	converter := NewConverter(source)

	convertRequest := func(amount float64, from, to string, wantConverted float64, wantLive bool) func(t *testing.T) {
		return func(t *testing.T) {
			got := converter.Convert(context.Background(), amount, from, to)

			assert.Equal(t, wantConverted, got.Converted)
			assert.Equal(t, wantLive, got.Live)
			assert.Equal(t, amount, got.Amount)
		}
	}

	t.Run("identity_same_currency", convertRequest(100, "NGN", "NGN", 100, true))
	t.Run("identity_case_insensitive", convertRequest(100, "ngn", "NGN", 100, true))
	t.Run("usd_to_ngn", convertRequest(100, "USD", "NGN", 150000, true))
	t.Run("rounds_half_up_to_cents", convertRequest(100, "USD", "EUR", 85.67, true))
	t.Run("fail_open_unknown_pair", convertRequest(250, "USD", "GBP", 250, false))

	t.Run("fail_open_carries_reason", func(t *testing.T) {
		got := converter.Convert(context.Background(), 250, "USD", "GBP")
		assert.Equal(t, "rate unavailable", got.Reason)
		assert.Zero(t, got.Rate)
	})

	t.Run("round_trip_approximates_original", func(t *testing.T) {
		there := converter.Convert(context.Background(), 100, "USD", "NGN")
		back := converter.Convert(context.Background(), there.Converted, "NGN", "USD")

		assert.True(t, back.Live)
		assert.InDelta(t, 100, back.Converted, 0.01)
	})
}

func TestSpread(t *testing.T) {
	spreadRequest := func(mid, wantBuy, wantSell float64) func(t *testing.T) {
		return func(t *testing.T) {
			buy, sell := Spread(mid)
			assert.Equal(t, wantBuy, buy)
			assert.Equal(t, wantSell, sell)
		}
	}

	t.Run("unit_rate", spreadRequest(1, 0.98, 1.02))
	t.Run("ngn_rate", spreadRequest(1500, 1470, 1530))

	t.Run("spread_brackets_mid", func(t *testing.T) {
		buy, sell := Spread(743.21)
		assert.Less(t, buy, 743.21)
		assert.Greater(t, sell, 743.21)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, float64(0), Round2(0))
}
