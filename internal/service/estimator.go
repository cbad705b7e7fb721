package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/swifthaul/rate-service/internal/domain/dto"
	"github.com/swifthaul/rate-service/internal/domain/model"
	"github.com/swifthaul/rate-service/internal/extract"
	"github.com/swifthaul/rate-service/internal/geo"
	"github.com/swifthaul/rate-service/internal/metrics"
)

// User-facing messages for the two failure tiers. Same-location is a
// validation outcome, everything else collapses into a generic error.
const (
	MsgSameLocation     = "Origin and destination cannot be the same place"
	MsgEstimationFailed = "Unable to compute an estimate for this request"
)

// Estimator runs the full quote pipeline: extraction, merge, distance
// resolution and rate calculation.
type Estimator interface {
	Estimate(ctx context.Context, req dto.QuoteRequest) dto.QuoteResponse
}

type estimator struct {
	extractor  extract.Extractor
	resolver   geo.Resolver
	calculator Calculator
}

// NewEstimator wires the pipeline stages together.
func NewEstimator(extractor extract.Extractor, resolver geo.Resolver, calculator Calculator) Estimator {
	return &estimator{
		extractor:  extractor,
		resolver:   resolver,
		calculator: calculator,
	}
}

// Estimate never panics or returns an error: every outcome is one of
// the three response statuses. Clarification is an expected result, not
// a failure.
func (e *estimator) Estimate(ctx context.Context, req dto.QuoteRequest) (resp dto.QuoteResponse) {
	start := time.Now()
	mode := ""

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("quote estimation panicked")
			resp = dto.ErrorQuoteResponse(MsgEstimationFailed)
		}
		metrics.RecordQuoteEstimate(mode, resp.Status, time.Since(start))
	}()

	var extracted extract.Fields
	if req.FreeText != "" {
		extracted = e.extractor.Extract(req.FreeText)
	}

	normalized, missing, err := Merge(req, extracted)
	if err != nil {
		if errors.Is(err, ErrSameLocation) {
			return dto.ErrorQuoteResponse(MsgSameLocation)
		}
		log.Error().Err(err).Msg("quote merge failed")
		return dto.ErrorQuoteResponse(MsgEstimationFailed)
	}
	mode = string(normalized.Mode)

	if normalized.Mode == model.ModeGround && contains(missing, FieldDistanceKm) {
		if result := e.resolveDistance(ctx, normalized); result != nil {
			normalized.DistanceKm = result.DistanceKm
			normalized.DistanceSource = result.Source
			missing = remove(missing, FieldDistanceKm)
		}
	}

	if len(missing) > 0 {
		return dto.ClarificationResponse(missing)
	}

	quote, err := e.calculator.Calculate(normalized)
	if err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("rate calculation failed")
		return dto.ErrorQuoteResponse(MsgEstimationFailed)
	}

	log.Debug().
		Str("mode", mode).
		Str("origin", normalized.Origin).
		Str("destination", normalized.Destination).
		Float64("total", quote.Breakdown.TotalAmount).
		Msg("quote estimated")

	return dto.OKResponse(quote)
}

// resolveDistance runs the fallback chain; a nil result or error means
// the field simply stays missing. Caller-supplied coordinates travel
// with the place names so pinned endpoints resolve even when the names
// are unrecognized.
func (e *estimator) resolveDistance(ctx context.Context, n model.NormalizedRequest) *model.DistanceResult {
	if e.resolver == nil || n.Origin == "" || n.Destination == "" {
		return nil
	}
	origin := geo.Endpoint{Place: n.Origin, Coord: n.OriginCoord}
	destination := geo.Endpoint{Place: n.Destination, Coord: n.DestinationCoord}

	result, err := e.resolver.Resolve(ctx, origin, destination)
	if err != nil {
		log.Debug().Err(err).
			Str("origin", n.Origin).
			Str("destination", n.Destination).
			Msg("distance resolution failed")
		return nil
	}
	return result
}

func contains(fields []string, target string) bool {
	for _, f := range fields {
		if f == target {
			return true
		}
	}
	return false
}

func remove(fields []string, target string) []string {
	out := fields[:0]
	for _, f := range fields {
		if f != target {
			out = append(out, f)
		}
	}
	return out
}
