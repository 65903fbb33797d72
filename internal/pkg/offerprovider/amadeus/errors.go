package amadeus

import (
	"net/http"

	"github.com/jftravel/flight-offer-service/internal/pkg/exception"
)

var ErrAuthFailed = exception.ApplicationError{
	StatusCode: http.StatusServiceUnavailable,
	Message:    "unable to authenticate with flight service",
}

var ErrSearchFailed = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "Flight search failed. The route may not be available.",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "flight search rate limit exceeded",
}
