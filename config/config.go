// Package config provides configuration management for the rate service.
//
// Configuration is a flat namespace of environment variables; every
// value has a hardcoded default used when unset, so the service runs
// with no environment at all.
package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Geo     GeoConfig
	Pricing PricingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	AuthEnabled bool
	APIKeys     map[string]bool
}

// GeoConfig holds distance-resolution configuration: provider endpoints,
// credentials, timeouts and the distance cache TTL.
type GeoConfig struct {
	// GeocodeURL is the forward-geocoding endpoint (Pelias-compatible).
	GeocodeURL string
	// GeocodeAPIKey enables external geocoding when non-empty.
	GeocodeAPIKey string
	// RoutePrimaryURL is the primary routing provider base URL (OSRM API).
	RoutePrimaryURL string
	// RouteSecondaryURL is the secondary routing provider base URL (ORS API).
	RouteSecondaryURL string
	// RouteSecondaryAPIKey authenticates against the secondary provider.
	RouteSecondaryAPIKey string
	// ProviderTimeout bounds each external provider call.
	ProviderTimeout time.Duration
	// CacheTTL is how long resolved distances stay cached.
	CacheTTL time.Duration
	// Circuit breaker settings shared by both routing providers.
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// WeightBreak is one chargeable-weight breakpoint: shipments heavier
// than AboveKg get Factor applied to the lane base.
type WeightBreak struct {
	AboveKg float64
	Factor  float64
}

// PricingConfig holds every pricing knob of the rate calculator.
// Lookup tables (lanes, regional bases) are static data in the
// calculator; everything here is a percentage, fee, divisor or rate
// with a documented default.
type PricingConfig struct {
	// FXRateUSDNGN converts USD-denominated bases to naira. Default 1550.
	FXRateUSDNGN float64
	// InflationFactor scales every mode's base and surcharges. Default 1.0.
	InflationFactor float64

	// Per-mode market multipliers, applied together with InflationFactor.
	MarketMultiplierParcel float64
	MarketMultiplierAir    float64
	MarketMultiplierOcean  float64
	MarketMultiplierGround float64

	// Per-mode margin percentages applied on base plus surcharges.
	MarginPercentParcel float64
	MarginPercentAir    float64
	MarginPercentOcean  float64
	MarginPercentGround float64

	// ParcelVolumetricDivisor converts cm³ to volumetric kg for parcel. Default 5000.
	ParcelVolumetricDivisor float64
	// AirVolumetricDivisor converts cm³ to volumetric kg for air. Default 6000.
	AirVolumetricDivisor float64
	// AirMinChargeableKg floors the air chargeable weight (IATA-style). Default 45.
	AirMinChargeableKg float64

	// WeightBreaks are the parcel weight-factor breakpoints, heaviest first.
	WeightBreaks []WeightBreak

	// Surcharge percentages by mode family.
	DomesticSurchargePct      float64
	InternationalSurchargePct float64
	AirSurchargePct           float64
	GroundSurchargePct        float64

	// ParcelLongDistanceBaseNGN is the domestic lane fallback base. Default 7500.
	ParcelLongDistanceBaseNGN float64

	// Ocean fees, USD.
	OceanPortCongestionUSD  float64
	OceanDocumentationUSD   float64
	OceanBAFCAFPct          float64
	OceanDemurragePerDayUSD float64
	// OceanForeignDestPremiumPct is applied when the destination is not domestic.
	OceanForeignDestPremiumPct float64

	// Ground per-km rates, NGN.
	GroundGenericIntraCityRate float64
	// Distance-tiered inter-city rates: short trips cost more per km.
	GroundTierShortMaxKm float64
	GroundTierShortRate  float64
	GroundTierMidMaxKm   float64
	GroundTierMidRate    float64
	GroundTierLongRate   float64
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
			AuthEnabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys:     parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Geo: GeoConfig{
			GeocodeURL:                     getEnv("GEOCODE_URL", "https://api.openrouteservice.org/geocode/search"),
			GeocodeAPIKey:                  getEnv("GEOCODE_API_KEY", ""),
			RoutePrimaryURL:                getEnv("ROUTE_PRIMARY_URL", "https://router.project-osrm.org"),
			RouteSecondaryURL:              getEnv("ROUTE_SECONDARY_URL", "https://api.openrouteservice.org"),
			RouteSecondaryAPIKey:           getEnv("ROUTE_SECONDARY_API_KEY", ""),
			ProviderTimeout:                getEnvDuration("GEO_PROVIDER_TIMEOUT", 8*time.Second),
			CacheTTL:                       getEnvDuration("DISTANCE_CACHE_TTL", 24*time.Hour),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Pricing: PricingConfig{
			FXRateUSDNGN:    getEnvFloat("FX_USD_NGN", 1550),
			InflationFactor: getEnvFloat("INFLATION_FACTOR", 1.0),

			MarketMultiplierParcel: getEnvFloat("MARKET_MULTIPLIER_PARCEL", 1.0),
			MarketMultiplierAir:    getEnvFloat("MARKET_MULTIPLIER_AIR", 1.0),
			MarketMultiplierOcean:  getEnvFloat("MARKET_MULTIPLIER_OCEAN", 1.0),
			MarketMultiplierGround: getEnvFloat("MARKET_MULTIPLIER_GROUND", 1.0),

			MarginPercentParcel: getEnvFloat("MARGIN_PERCENT_PARCEL", 0.15),
			MarginPercentAir:    getEnvFloat("MARGIN_PERCENT_AIR", 0.18),
			MarginPercentOcean:  getEnvFloat("MARGIN_PERCENT_OCEAN", 0.12),
			MarginPercentGround: getEnvFloat("MARGIN_PERCENT_GROUND", 0.10),

			ParcelVolumetricDivisor: getEnvFloat("PARCEL_VOLUMETRIC_DIVISOR", 5000),
			AirVolumetricDivisor:    getEnvFloat("AIR_VOLUMETRIC_DIVISOR", 6000),
			AirMinChargeableKg:      getEnvFloat("AIR_MIN_CHARGEABLE_KG", 45),

			WeightBreaks: parseWeightBreaks(os.Getenv("PARCEL_WEIGHT_BREAKS")),

			DomesticSurchargePct:      getEnvFloat("DOMESTIC_SURCHARGE_PCT", 0.10),
			InternationalSurchargePct: getEnvFloat("INTERNATIONAL_SURCHARGE_PCT", 0.15),
			AirSurchargePct:           getEnvFloat("AIR_SURCHARGE_PCT", 0.12),
			GroundSurchargePct:        getEnvFloat("GROUND_SURCHARGE_PCT", 0.08),

			ParcelLongDistanceBaseNGN: getEnvFloat("PARCEL_LONG_DISTANCE_BASE_NGN", 7500),

			OceanPortCongestionUSD:     getEnvFloat("OCEAN_PORT_CONGESTION_USD", 450),
			OceanDocumentationUSD:      getEnvFloat("OCEAN_DOCUMENTATION_USD", 150),
			OceanBAFCAFPct:             getEnvFloat("OCEAN_BAF_CAF_PCT", 0.08),
			OceanDemurragePerDayUSD:    getEnvFloat("OCEAN_DEMURRAGE_PER_DAY_USD", 85),
			OceanForeignDestPremiumPct: getEnvFloat("OCEAN_FOREIGN_DEST_PREMIUM_PCT", 0.25),

			GroundGenericIntraCityRate: getEnvFloat("GROUND_INTRA_CITY_RATE_NGN", 300),
			GroundTierShortMaxKm:       getEnvFloat("GROUND_TIER_SHORT_MAX_KM", 100),
			GroundTierShortRate:        getEnvFloat("GROUND_TIER_SHORT_RATE_NGN", 180),
			GroundTierMidMaxKm:         getEnvFloat("GROUND_TIER_MID_MAX_KM", 500),
			GroundTierMidRate:          getEnvFloat("GROUND_TIER_MID_RATE_NGN", 150),
			GroundTierLongRate:         getEnvFloat("GROUND_TIER_LONG_RATE_NGN", 120),
		},
	}
}

// DefaultWeightBreaks are the parcel weight-factor breakpoints used
// when PARCEL_WEIGHT_BREAKS is unset.
var DefaultWeightBreaks = []WeightBreak{
	{AboveKg: 30, Factor: 3.5},
	{AboveKg: 20, Factor: 2.8},
	{AboveKg: 10, Factor: 2.0},
	{AboveKg: 5, Factor: 1.5},
	{AboveKg: 1, Factor: 1.2},
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseWeightBreaks parses "30:3.5,20:2.8,..." into breakpoints sorted
// heaviest first. Malformed input falls back to the defaults.
func parseWeightBreaks(s string) []WeightBreak {
	if s == "" {
		return DefaultWeightBreaks
	}
	parts := strings.Split(s, ",")
	breaks := make([]WeightBreak, 0, len(parts))
	for _, p := range parts {
		kv := strings.SplitN(strings.TrimSpace(p), ":", 2)
		if len(kv) != 2 {
			continue
		}
		above, err1 := strconv.ParseFloat(kv[0], 64)
		factor, err2 := strconv.ParseFloat(kv[1], 64)
		if err1 != nil || err2 != nil || above < 0 || factor <= 0 {
			continue
		}
		breaks = append(breaks, WeightBreak{AboveKg: above, Factor: factor})
	}
	if len(breaks) == 0 {
		return DefaultWeightBreaks
	}
	sort.Slice(breaks, func(i, j int) bool { return breaks[i].AboveKg > breaks[j].AboveKg })
	return breaks
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
