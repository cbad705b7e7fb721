// Package app provides application initialization and dependency injection.
package app

import (
	"net/http"

	"github.com/swifthaul/rate-service/config"
	"github.com/swifthaul/rate-service/internal/circuitbreaker"
	"github.com/swifthaul/rate-service/internal/extract"
	"github.com/swifthaul/rate-service/internal/geo"
	"github.com/swifthaul/rate-service/internal/service"
)

// ServiceComponents holds the business logic services and the circuit
// breakers guarding external routing providers.
type ServiceComponents struct {
	Estimator     service.Estimator
	DistanceCache *geo.DistanceCache
	RouteBreakers map[string]*circuitbreaker.CircuitBreaker
}

// InitializeServices wires the quote pipeline: extractor, distance
// resolution chain and rate calculator.
func InitializeServices(cfg config.Config) *ServiceComponents {
	client := &http.Client{Timeout: cfg.Geo.ProviderTimeout}

	primary := geo.NewOSRMProvider(cfg.Geo.RoutePrimaryURL, client)
	secondary := geo.NewORSProvider(cfg.Geo.RouteSecondaryURL, cfg.Geo.RouteSecondaryAPIKey, client)

	breakers := map[string]*circuitbreaker.CircuitBreaker{
		primary.Name():   newRouteBreaker(cfg, primary.Name()),
		secondary.Name(): newRouteBreaker(cfg, secondary.Name()),
	}

	opts := []geo.RouteResolverOption{
		geo.WithProviderTimeout(cfg.Geo.ProviderTimeout),
		geo.WithBreakers(breakers[primary.Name()], breakers[secondary.Name()]),
	}
	if cfg.Geo.GeocodeAPIKey != "" {
		opts = append(opts, geo.WithGeocoder(geo.NewHTTPGeocoder(cfg.Geo.GeocodeURL, cfg.Geo.GeocodeAPIKey, client)))
	}

	route := geo.NewRouteResolver([]geo.RouteProvider{primary, secondary}, opts...)
	cache := geo.NewDistanceCache(cfg.Geo.CacheTTL, nil)
	resolver := geo.NewDefaultChain(route, cache)

	calculator := service.NewCalculator(cfg.Pricing)
	estimator := service.NewEstimator(extract.NewRegexExtractor(), resolver, calculator)

	return &ServiceComponents{
		Estimator:     estimator,
		DistanceCache: cache,
		RouteBreakers: breakers,
	}
}

func newRouteBreaker(cfg config.Config, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Geo.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Geo.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Geo.CircuitBreakerTimeout,
		Name:             name,
	})
}
