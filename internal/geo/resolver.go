// Package geo resolves a pair of place names to a driving distance.
//
// Resolution is a fallback chain: cached result, known city coordinates
// plus external geocoding and routing providers, great-circle distance,
// and finally a static table of known domestic lane distances. Provider
// failures of any kind (network, timeout, malformed payload) are treated
// as "this strategy found nothing" and never surface to the caller.
package geo

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/swifthaul/rate-service/internal/circuitbreaker"
	"github.com/swifthaul/rate-service/internal/domain/model"
	"github.com/swifthaul/rate-service/internal/metrics"
	"github.com/swifthaul/rate-service/internal/places"
)

// Distance resolution sources, reported in DistanceResult.Source.
const (
	SourceCache     = "cache"
	SourceHaversine = "haversine"
	SourceLaneTable = "lane_table"
)

// DefaultProviderTimeout bounds each external provider call.
const DefaultProviderTimeout = 8 * time.Second

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Endpoint is one end of a distance query: a place name, optionally
// pinned to exact coordinates by the caller. A pinned endpoint resolves
// even when the place name is unrecognized.
type Endpoint struct {
	Place string
	Coord *model.Coordinate
}

// Place wraps a bare place name into an Endpoint.
func Place(name string) Endpoint {
	return Endpoint{Place: name}
}

// key returns the cache identity of the endpoint. Pinned coordinates
// identify the endpoint; otherwise the normalized place name does.
func (e Endpoint) key() string {
	if e.Coord != nil {
		return fmt.Sprintf("%.4f,%.4f", e.Coord.Lat, e.Coord.Lon)
	}
	return strings.ToLower(strings.TrimSpace(e.Place))
}

// Resolver resolves an (origin, destination) pair to a distance.
// A nil result with a nil error means this strategy found nothing;
// callers move on to the next strategy.
type Resolver interface {
	Resolve(ctx context.Context, origin, destination Endpoint) (*model.DistanceResult, error)
}

// ChainResolver tries each resolver in order and returns the first hit.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver builds a resolver chain from the given strategies.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve walks the chain; it only reports "not found" once every
// strategy has come up empty.
func (c *ChainResolver) Resolve(ctx context.Context, origin, destination Endpoint) (*model.DistanceResult, error) {
	for _, r := range c.resolvers {
		result, err := r.Resolve(ctx, origin, destination)
		if err != nil {
			// Strategy errors are soft: log and fall through.
			log.Debug().Err(err).Str("origin", origin.Place).Str("destination", destination.Place).
				Msg("distance resolution strategy failed, falling through")
			continue
		}
		if result != nil {
			return result, nil
		}
	}
	return nil, nil
}

// CachingResolver wraps another resolver with the distance cache.
// Identical lookups within the TTL return the cached result without a
// second provider call; pricing output is identical either way.
type CachingResolver struct {
	inner Resolver
	cache *DistanceCache
}

// NewCachingResolver wraps inner with cache.
func NewCachingResolver(inner Resolver, cache *DistanceCache) *CachingResolver {
	return &CachingResolver{inner: inner, cache: cache}
}

// Resolve checks the cache, then delegates and stores any hit.
func (c *CachingResolver) Resolve(ctx context.Context, origin, destination Endpoint) (*model.DistanceResult, error) {
	if cached, ok := c.cache.Get(origin.key(), destination.key()); ok {
		metrics.RecordGeoResolution(SourceCache, "hit")
		result := cached
		result.Source = SourceCache
		return &result, nil
	}

	result, err := c.inner.Resolve(ctx, origin, destination)
	if err != nil || result == nil {
		return result, err
	}

	c.cache.Set(origin.key(), destination.key(), *result)
	return result, nil
}

// RouteResolver resolves distances through coordinates: the built-in
// city table first, external geocoding for anything the table missed,
// then routing providers in order, then the haversine fallback.
type RouteResolver struct {
	geocoder        Geocoder
	geocoderEnabled bool
	providers       []RouteProvider
	breakers        []*circuitbreaker.CircuitBreaker
	timeout         time.Duration
}

// RouteResolverOption configures a RouteResolver.
type RouteResolverOption func(*RouteResolver)

// WithGeocoder enables external forward geocoding.
func WithGeocoder(g Geocoder) RouteResolverOption {
	return func(r *RouteResolver) {
		r.geocoder = g
		r.geocoderEnabled = g != nil
	}
}

// WithProviderTimeout bounds each external provider call.
func WithProviderTimeout(d time.Duration) RouteResolverOption {
	return func(r *RouteResolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithBreakers guards the routing providers; breakers are matched to
// providers by position.
func WithBreakers(breakers ...*circuitbreaker.CircuitBreaker) RouteResolverOption {
	return func(r *RouteResolver) {
		r.breakers = breakers
	}
}

// NewRouteResolver creates a coordinate-based resolver over the given
// routing providers (tried in order).
func NewRouteResolver(providers []RouteProvider, opts ...RouteResolverOption) *RouteResolver {
	r := &RouteResolver{
		providers: providers,
		timeout:   DefaultProviderTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve finds coordinates for both endpoints and routes between them.
// Returns nil when coordinates cannot be determined for either end.
func (r *RouteResolver) Resolve(ctx context.Context, origin, destination Endpoint) (*model.DistanceResult, error) {
	from, okFrom := r.locate(ctx, origin)
	to, okTo := r.locate(ctx, destination)
	if !okFrom || !okTo {
		return nil, nil
	}

	for i, provider := range r.providers {
		result := r.route(ctx, i, provider, from, to)
		if result != nil {
			metrics.RecordGeoResolution(result.Source, "hit")
			return result, nil
		}
	}

	// No routing provider answered; fall back to the great circle.
	metrics.RecordGeoResolution(SourceHaversine, "hit")
	return &model.DistanceResult{
		DistanceKm:    Haversine(from, to),
		DurationHours: math.NaN(),
		Source:        SourceHaversine,
	}, nil
}

// locate finds coordinates for an endpoint: a caller-pinned coordinate
// wins outright, then the known-city table, then the external geocoder
// when configured.
func (r *RouteResolver) locate(ctx context.Context, e Endpoint) (model.Coordinate, bool) {
	if e.Coord != nil {
		return *e.Coord, true
	}
	if coord, ok := places.CityCoordinate(e.Place); ok {
		return coord, true
	}
	if !r.geocoderEnabled {
		return model.Coordinate{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	coord, err := r.geocoder.Geocode(ctx, e.Place)
	if err != nil {
		log.Debug().Err(err).Str("place", e.Place).Msg("geocoding failed")
		metrics.RecordGeoResolution("geocode", "error")
		return model.Coordinate{}, false
	}
	if coord == nil {
		metrics.RecordGeoResolution("geocode", "not_found")
		return model.Coordinate{}, false
	}
	metrics.RecordGeoResolution("geocode", "hit")
	return *coord, true
}

// route calls a single provider under its timeout and breaker.
// Any failure is swallowed; nil means "try the next provider".
func (r *RouteResolver) route(ctx context.Context, idx int, provider RouteProvider, from, to model.Coordinate) *model.DistanceResult {
	var result *model.DistanceResult

	call := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		res, err := provider.Route(ctx, from, to)
		if err != nil {
			return err
		}
		result = res
		return nil
	}

	var err error
	if idx < len(r.breakers) && r.breakers[idx] != nil {
		err = r.breakers[idx].Execute(ctx, call)
	} else {
		err = call(ctx)
	}

	if err != nil {
		log.Debug().Err(err).Str("provider", provider.Name()).Msg("routing provider failed")
		metrics.RecordGeoResolution(provider.Name(), "error")
		return nil
	}
	return result
}

// LaneResolver answers from the static table of known domestic
// city-pair road distances. It is the strategy of last resort, used
// when coordinates are unavailable for one or both endpoints.
type LaneResolver struct{}

// NewLaneResolver creates the static lane-distance resolver.
func NewLaneResolver() *LaneResolver {
	return &LaneResolver{}
}

// Resolve looks up the pair in both orderings.
func (l *LaneResolver) Resolve(_ context.Context, origin, destination Endpoint) (*model.DistanceResult, error) {
	if d, ok := places.LaneDistanceKm(origin.Place, destination.Place); ok {
		metrics.RecordGeoResolution(SourceLaneTable, "hit")
		return &model.DistanceResult{
			DistanceKm:    d,
			DurationHours: math.NaN(),
			Source:        SourceLaneTable,
		}, nil
	}
	return nil, nil
}

// Haversine returns the great-circle distance in kilometers between
// two coordinates using the mean Earth radius.
func Haversine(a, b model.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// NewDefaultChain assembles the production resolution chain: cache,
// then coordinates/routing/haversine, then the static lane table.
func NewDefaultChain(route *RouteResolver, cache *DistanceCache) Resolver {
	return NewCachingResolver(NewChainResolver(route, NewLaneResolver()), cache)
}
