package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jftravel/flight-offer-service/internal/app/config"
	"github.com/jftravel/flight-offer-service/internal/app/dto"
	"github.com/jftravel/flight-offer-service/internal/app/endpoints"
	httptransport "github.com/jftravel/flight-offer-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Route("/flights", func(router chi.Router) {
			router.Get("/search", httptransport.MakeHandlerFunc(
				endpts.Flights.Search,
				httptransport.DecodeQueryRequest[dto.SearchRequest],
				httptransport.ResponseWithBody,
			))
			router.Get("/search-fallback", httptransport.MakeHandlerFunc(
				endpts.Flights.SearchFallback,
				httptransport.DecodeQueryRequest[dto.SearchRequest],
				httptransport.ResponseWithBody,
			))
			router.Get("/nigerian-local", httptransport.MakeHandlerFunc(
				endpts.Flights.NigerianLocal,
				httptransport.DecodeQueryRequest[dto.SearchRequest],
				httptransport.ResponseWithBody,
			))
			router.Get("/static", httptransport.MakeHandlerFunc(
				endpts.Flights.Static,
				httptransport.DecodeQueryRequest[dto.StaticSearchRequest],
				httptransport.ResponseWithBody,
			))
			router.Get("/available-routes", httptransport.MakeHandlerFunc(
				endpts.Flights.AvailableRoutes,
				httptransport.DecodeQueryRequest[dto.RoutesRequest],
				httptransport.ResponseWithBody,
			))
		})

		router.Route("/exchange-rates", func(router chi.Router) {
			router.Get("/live", httptransport.MakeHandlerFunc(
				endpts.Rates.LiveRates,
				httptransport.DecodeQueryRequest[dto.LiveRatesRequest],
				httptransport.ResponseWithBody,
			))
			router.Post("/convert", httptransport.MakeHandlerFunc(
				endpts.Rates.Convert,
				httptransport.DecodeRequest[dto.ConvertRequest],
				httptransport.ResponseWithBody,
			))
			router.Post("/clear", httptransport.MakeHandlerFunc(
				endpts.Rates.ClearRates,
				httptransport.DecodeQueryRequest[dto.ClearRatesRequest],
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}
