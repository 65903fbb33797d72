package service

import (
	"net/http"

	"github.com/jftravel/flight-offer-service/internal/app/dto"
	"github.com/jftravel/flight-offer-service/internal/pkg/exception"
)

var ErrRateServiceNotConfigured = exception.ApplicationError{
	Message:    "Currency rate service not configured",
	StatusCode: http.StatusServiceUnavailable,
}

var ErrLiveRatesUnavailable = exception.ApplicationError{
	Message:    "Failed to fetch live rates",
	StatusCode: http.StatusServiceUnavailable,
}

// NoOffersError terminates a fallback search when both the live provider
// and the static catalog came up empty. It carries the live provider's
// error detail for diagnostics.
type NoOffersError struct {
	LiveError string
}

func (e NoOffersError) Error() string {
	return "No flights available for this route"
}

func (e NoOffersError) ErrorCode() int {
	return http.StatusNotFound
}

func (e NoOffersError) ErrorPayload() any {
	return dto.ErrorResponse{
		Error:     e.Error(),
		LiveError: e.LiveError,
	}
}

// NoStaticRouteError rejects a static lookup for an unseeded route and
// enumerates the seeded routes so the caller can self-correct.
type NoStaticRouteError struct {
	AvailableRoutes []string
}

func (e NoStaticRouteError) Error() string {
	return "No static flights available for this route"
}

func (e NoStaticRouteError) ErrorCode() int {
	return http.StatusNotFound
}

func (e NoStaticRouteError) ErrorPayload() any {
	return dto.ErrorResponse{
		Error:           e.Error(),
		AvailableRoutes: e.AvailableRoutes,
	}
}
