package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/jftravel/flight-offer-service/internal/app/config"
	"github.com/jftravel/flight-offer-service/internal/app/dto"
	"github.com/jftravel/flight-offer-service/internal/app/endpoints"
	"github.com/jftravel/flight-offer-service/internal/app/service"
	"github.com/jftravel/flight-offer-service/internal/app/transport"
	"github.com/jftravel/flight-offer-service/internal/pkg/airport"
	"github.com/jftravel/flight-offer-service/internal/pkg/logger"
	"github.com/jftravel/flight-offer-service/internal/pkg/offerprovider"
	"github.com/jftravel/flight-offer-service/internal/pkg/offerprovider/amadeus"
	"github.com/jftravel/flight-offer-service/internal/pkg/offerprovider/staticcatalog"
	"github.com/jftravel/flight-offer-service/internal/pkg/rates"
	"github.com/redis/go-redis/v9"
)

func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	return endpoints.Endpoints{
		Flights: makeFlightEndpoints(cfg, redisClient),
		Rates:   makeRateEndpoints(cfg, redisClient),
	}
}

func makeFlightEndpoints(cfg *config.Config, redisClient *redis.Client) endpoints.FlightEndpoints {
	registry := airport.NewRegistry()
	tokenStore := amadeus.NewRedisTokenStore(redisClient)
	limiter := redis_rate.NewLimiter(redisClient)

	liveProvider := amadeus.NewProvider(offerprovider.Config{
		TokenAPIURL:  cfg.Amadeus.TokenAPIURL,
		SearchAPIURL: cfg.Amadeus.SearchAPIURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Timeout:      cfg.Amadeus.Timeout,
		MaxResults:   cfg.Amadeus.MaxResults,
		Markup:       cfg.Amadeus.Markup,
		RateLimitRPS: cfg.Amadeus.RateLimitRPS,
		Limiter:      limiter,
	}, registry, tokenStore)

	catalog := staticcatalog.NewCatalog()

	aggregatorService := service.NewAggregatorService(liveProvider, catalog)

	return endpoints.MakeFlightEndpoints(aggregatorService)
}

func makeRateEndpoints(cfg *config.Config, redisClient *redis.Client) endpoints.RateEndpoints {
	rateClient := rates.NewClient(cfg.ExchangeRate.BaseURL,
		cfg.ExchangeRate.APIKey, cfg.ExchangeRate.Timeout)

	rateCache := rates.NewRateCache(redisClient, rateClient, cfg.ExchangeRate.CacheTTL)

	currencyService := service.NewCurrencyService(rateCache)

	return endpoints.MakeRateEndpoints(currencyService)
}
