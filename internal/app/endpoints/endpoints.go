package endpoints

// Endpoints aggregates every service endpoint exposed over HTTP.
type Endpoints struct {
	Flights FlightEndpoints
	Rates   RateEndpoints
}
