package amadeus

// Wire types for the flight-offers search API.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type searchResponse struct {
	Data         []rawOffer   `json:"data"`
	Dictionaries dictionaries `json:"dictionaries"`
	Errors       []apiError   `json:"errors"`
}

type dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

type apiError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type rawOffer struct {
	Price       rawPrice       `json:"price"`
	Itineraries []rawItinerary `json:"itineraries"`
}

type rawPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type rawItinerary struct {
	Duration string       `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

type rawSegment struct {
	Departure   rawEndpoint `json:"departure"`
	Arrival     rawEndpoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
}

type rawEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}
