package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/jftravel/flight-offer-service/internal/app/dto"
	"github.com/jftravel/flight-offer-service/internal/pkg/airport"
	"github.com/jftravel/flight-offer-service/internal/pkg/offerprovider"
	"github.com/jftravel/flight-offer-service/internal/pkg/utils"
)

const (
	ProviderName = "amadeus"

	// requestedCurrency is pinned so markup math stays in one currency.
	requestedCurrency = "NGN"

	// tokenExpiryMargin keeps us from presenting a token that expires
	// mid-flight of a search request.
	tokenExpiryMargin = 60 * time.Second
)

// Provider searches the flight-offers API using an OAuth2
// client-credentials token cached in the injected token store.
type Provider struct {
	TokenAPIURL  string
	SearchAPIURL string
	ClientID     string
	ClientSecret string
	MaxResults   int
	Markup       float64
	RateLimitRPS int
	Limiter      *redis_rate.Limiter

	registry   *airport.Registry
	tokens     TokenStore
	httpClient *http.Client
}

func NewProvider(config offerprovider.Config, registry *airport.Registry, tokens TokenStore) *Provider {
	return &Provider{
		TokenAPIURL:  config.TokenAPIURL,
		SearchAPIURL: config.SearchAPIURL,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		MaxResults:   config.MaxResults,
		Markup:       config.Markup,
		RateLimitRPS: config.RateLimitRPS,
		Limiter:      config.Limiter,
		registry:     registry,
		tokens:       tokens,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Search validates the route, authenticates and queries the flight-offers
// endpoint, returning canonical offers with the fixed markup applied.
func (p *Provider) Search(ctx context.Context, req dto.SearchRequest) ([]dto.Offer, error) {
	if err := p.registry.ValidatePair(req.Origin, req.Destination); err != nil {
		return nil, err
	}

	if err := p.allow(ctx); err != nil {
		return nil, err
	}

	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("originLocationCode", req.Origin)
	query.Set("destinationLocationCode", req.Destination)
	query.Set("departureDate", req.DepartureDate)
	query.Set("adults", strconv.Itoa(req.Adults))
	query.Set("currencyCode", requestedCurrency)
	query.Set("max", strconv.Itoa(p.MaxResults))

	searchReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.SearchAPIURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	searchReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.httpClient.Do(searchReq)
	if err != nil {
		slog.ErrorContext(ctx, "flight search request failed",
			slog.String("origin", req.Origin),
			slog.String("destination", req.Destination),
			slog.String("error", err.Error()))

		return nil, ErrSearchFailed.WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "flight search returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))

		return nil, p.searchError(body)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return p.transform(payload), nil
}

func (p *Provider) allow(ctx context.Context) error {
	if p.Limiter == nil || p.RateLimitRPS <= 0 {
		return nil
	}

	res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", ProviderName),
		redis_rate.PerSecond(p.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}

// accessToken returns the cached token when present, otherwise performs the
// client-credentials exchange and caches the result with the expiry margin.
// One token fetch per call path, no retry.
func (p *Provider) accessToken(ctx context.Context) (string, error) {
	cached, err := p.tokens.Get(ctx)
	if err != nil {
		slog.WarnContext(ctx, "token store read failed, fetching fresh token",
			slog.String("error", err.Error()))
	}
	if cached != "" {
		return cached, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.ClientID)
	form.Set("client_secret", p.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.TokenAPIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", ErrAuthFailed.WithCause(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "token exchange failed", slog.String("error", err.Error()))

		return "", ErrAuthFailed.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		slog.ErrorContext(ctx, "token endpoint returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))

		return "", ErrAuthFailed
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", ErrAuthFailed.WithCause(err)
	}

	if tr.AccessToken == "" {
		return "", ErrAuthFailed
	}

	ttl := time.Duration(tr.ExpiresIn)*time.Second - tokenExpiryMargin
	if ttl > 0 {
		if err := p.tokens.Set(ctx, tr.AccessToken, ttl); err != nil {
			slog.WarnContext(ctx, "failed to cache access token",
				slog.String("error", err.Error()))
		}
	}

	return tr.AccessToken, nil
}

// searchError extracts the first human-readable detail from the provider's
// error list, falling back to the generic search failure.
func (p *Provider) searchError(body []byte) error {
	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
		if detail := payload.Errors[0].Detail; detail != "" {
			return ErrSearchFailed.WithCause(fmt.Errorf("%s", detail))
		}
	}

	return ErrSearchFailed
}

// transform maps raw offers into the canonical shape, keeping only the
// first segment of the first itinerary per offer. Multi-segment itineraries
// are truncated, not rejected.
func (p *Provider) transform(payload searchResponse) []dto.Offer {
	offers := make([]dto.Offer, 0, len(payload.Data))

	for _, raw := range payload.Data {
		if len(raw.Itineraries) == 0 || len(raw.Itineraries[0].Segments) == 0 {
			continue
		}

		itinerary := raw.Itineraries[0]
		segment := itinerary.Segments[0]

		airlineName := segment.CarrierCode
		if name, ok := payload.Dictionaries.Carriers[segment.CarrierCode]; ok {
			airlineName = name
		}

		basePrice, _ := strconv.ParseFloat(raw.Price.Total, 64)

		currency := raw.Price.Currency
		if currency == "" {
			currency = requestedCurrency
		}

		var flightNumber string
		if segment.Number != "" {
			flightNumber = segment.CarrierCode + segment.Number
		}

		price := basePrice + p.Markup

		offers = append(offers, dto.Offer{
			Airline:        airlineName,
			AirlineCode:    segment.CarrierCode,
			From:           segment.Departure.IataCode,
			To:             segment.Arrival.IataCode,
			DepartureTime:  formatClock(segment.Departure.At),
			ArrivalTime:    formatClock(segment.Arrival.At),
			Price:          price,
			PriceFormatted: utils.FormatNaira(int64(price)),
			BasePrice:      basePrice,
			Currency:       currency,
			Duration:       itinerary.Duration,
			Source:         dto.SourceLive,
			FlightNumber:   flightNumber,
		})
	}

	return offers
}

// formatClock renders a local provider timestamp (2006-01-02T15:04:05) as
// HH:MM. Unparseable values pass through unchanged for diagnostics.
func formatClock(at string) string {
	t, err := time.Parse("2006-01-02T15:04:05", at)
	if err != nil {
		return at
	}

	return t.Format("15:04")
}
