package offerprovider

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/jftravel/flight-offer-service/internal/app/dto"
)

// Config carries the knobs shared by live offer providers.
type Config struct {
	TokenAPIURL  string
	SearchAPIURL string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	MaxResults   int
	Markup       float64
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// OfferProvider searches one upstream source for priced flight offers.
type OfferProvider interface {
	Search(ctx context.Context, req dto.SearchRequest) ([]dto.Offer, error)
}
