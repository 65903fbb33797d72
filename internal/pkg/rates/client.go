package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the exchange-rate lookup API. The endpoint shape is
// GET {baseURL}/{apiKey}/latest/{BASE} returning a conversion_rates map.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether an API key is present. The rate endpoints
// answer 503 when it is not.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type latestRatesResponse struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// LatestRates fetches the full rate table relative to base.
func (c *Client) LatestRates(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, strings.ToUpper(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, fmt.Errorf("rates API returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode rates response: %w", err)
	}

	if len(payload.ConversionRates) == 0 {
		return nil, fmt.Errorf("rates API returned no conversion rates for base %s", base)
	}

	return payload.ConversionRates, nil
}
