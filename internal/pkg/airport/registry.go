package airport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jftravel/flight-offer-service/internal/pkg/exception"
)

// supportedAirports is the set of airports the live provider can quote.
// Major international plus regional Nigerian airports.
var supportedAirports = []string{
	"LOS", "ABV", "KAN", "PHC", "ENU", "KAD", "ILR", "JOS", "MJU", "MKU", "OWR", "WAR",
}

// Registry validates search requests against the static airport allow-list.
// It is pure and safe for concurrent use.
type Registry struct {
	codes map[string]bool
	list  []string
}

func NewRegistry() *Registry {
	codes := make(map[string]bool, len(supportedAirports))
	for _, code := range supportedAirports {
		codes[code] = true
	}

	return &Registry{
		codes: codes,
		list:  supportedAirports,
	}
}

func (r *Registry) Supported(code string) bool {
	return r.codes[strings.ToUpper(code)]
}

// SupportedAirports returns the allow-list in registration order.
func (r *Registry) SupportedAirports() []string {
	return r.list
}

// ValidatePair checks both ends of a route. The returned error enumerates
// the allow-list so the caller can self-correct.
func (r *Registry) ValidatePair(origin, destination string) error {
	if !r.Supported(origin) {
		return r.unsupportedError("Origin", origin)
	}

	if !r.Supported(destination) {
		return r.unsupportedError("Destination", destination)
	}

	return nil
}

func (r *Registry) unsupportedError(side, code string) error {
	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message: fmt.Sprintf("%s airport '%s' is not supported. Supported airports: %s",
			side, code, strings.Join(r.list, ", ")),
	}
}
