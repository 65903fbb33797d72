package rates

import (
	"context"
	"log/slog"
	"math"
	"strings"
)

// Fixed display spread around the mid rate.
const (
	buySpread  = 0.98
	sellSpread = 1.02
)

// RateSource resolves a single currency-pair rate.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (float64, bool)
}

// Conversion is the tagged result of a convert call. Live is false on the
// fail-open path: the rate was unavailable and Converted carries the
// original amount unchanged so callers can surface a warning instead of
// breaking the page.
type Conversion struct {
	Amount    float64
	From      string
	To        string
	Converted float64
	Rate      float64
	Live      bool
	Reason    string
}

// Converter converts amounts using a rate source.
type Converter struct {
	source RateSource
}

func NewConverter(source RateSource) *Converter {
	return &Converter{source: source}
}

func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) Conversion {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	result := Conversion{
		Amount: amount,
		From:   from,
		To:     to,
	}

	if from == to {
		result.Converted = amount
		result.Rate = 1
		result.Live = true

		return result
	}

	rate, ok := c.source.Rate(ctx, from, to)
	if !ok {
		slog.WarnContext(ctx, "could not fetch rate, returning amount unconverted",
			slog.String("from", from), slog.String("to", to))

		result.Converted = amount
		result.Reason = "rate unavailable"

		return result
	}

	result.Converted = Round2(amount * rate)
	result.Rate = rate
	result.Live = true

	return result
}

// Spread derives the display buy/sell pair from a mid rate.
func Spread(mid float64) (buy, sell float64) {
	return Round2(mid * buySpread), Round2(mid * sellSpread)
}

// Round2 rounds half-up to 2 decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
