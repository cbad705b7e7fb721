// Package service contains the business logic for the rate service:
// merging and validating quote requests, the rate calculator and the
// top-level estimator.
package service

import (
	"errors"
	"strings"

	"github.com/swifthaul/rate-service/internal/domain/dto"
	"github.com/swifthaul/rate-service/internal/domain/model"
	"github.com/swifthaul/rate-service/internal/extract"
)

// ErrSameLocation is returned when origin and destination normalize to
// the same place. It is checked before any mode-specific work.
var ErrSameLocation = errors.New("origin and destination cannot be the same")

// Missing-field names reported in clarification responses.
const (
	FieldMode          = "mode"
	FieldOrigin        = "origin"
	FieldDestination   = "destination"
	FieldWeightKg      = "weightKg"
	FieldContainerType = "containerType"
	FieldDistanceKm    = "distanceKm"
)

// Merge combines an explicit structured request with extractor output.
// Explicit fields always win on conflict. It returns the normalized
// request together with the ordered, deduplicated list of fields still
// required by the resolved mode; ErrSameLocation is returned when both
// endpoints normalize to the same string.
func Merge(req dto.QuoteRequest, extracted extract.Fields) (model.NormalizedRequest, []string, error) {
	n := model.NormalizedRequest{}

	if req.Mode != "" {
		// Already validated at the DTO layer.
		n.Mode, _ = model.ParseMode(req.Mode)
	} else {
		n.Mode = extracted.Mode
	}

	n.Origin = firstNonEmpty(req.Origin, extracted.Origin)
	n.Destination = firstNonEmpty(req.Destination, extracted.Destination)

	if n.Origin != "" && n.Destination != "" &&
		normalizePlace(n.Origin) == normalizePlace(n.Destination) {
		return model.NormalizedRequest{}, nil, ErrSameLocation
	}

	if req.WeightKg > 0 {
		n.WeightKg = req.WeightKg
	} else {
		n.WeightKg = extracted.WeightKg
	}

	if req.Dimensions != nil {
		n.Dims = &model.Dimensions{
			LengthCm: req.Dimensions.LengthCm,
			WidthCm:  req.Dimensions.WidthCm,
			HeightCm: req.Dimensions.HeightCm,
		}
	} else {
		n.Dims = extracted.Dims
	}

	if req.VolumeM3 > 0 {
		n.VolumeM3 = req.VolumeM3
	} else {
		n.VolumeM3 = extracted.VolumeM3
	}

	if req.ContainerType != "" {
		n.ContainerType, _ = model.ParseContainer(req.ContainerType)
	} else {
		n.ContainerType = extracted.ContainerType
	}

	if req.DistanceKm > 0 {
		n.DistanceKm = req.DistanceKm
	} else {
		n.DistanceKm = extracted.DistanceKm
	}

	if req.OriginCoord != nil {
		n.OriginCoord = &model.Coordinate{Lat: req.OriginCoord.Lat, Lon: req.OriginCoord.Lon}
	}
	if req.DestinationCoord != nil {
		n.DestinationCoord = &model.Coordinate{Lat: req.DestinationCoord.Lat, Lon: req.DestinationCoord.Lon}
	}

	n.Express = req.Express || extracted.Express

	if req.DemurrageDays > 0 {
		n.DemurrageDays = req.DemurrageDays
	} else {
		n.DemurrageDays = extracted.DemurrageDays
	}

	return n, MissingFields(n), nil
}

// MissingFields returns the ordered, deduplicated list of fields the
// resolved mode still requires. The order is fixed so identical inputs
// always produce identical clarification prompts.
func MissingFields(n model.NormalizedRequest) []string {
	var missing []string

	if n.Mode == "" {
		missing = append(missing, FieldMode)
	}
	if n.Origin == "" {
		missing = append(missing, FieldOrigin)
	}
	if n.Destination == "" {
		missing = append(missing, FieldDestination)
	}

	switch n.Mode {
	case model.ModeParcel, model.ModeAir:
		if n.WeightKg <= 0 {
			missing = append(missing, FieldWeightKg)
		}
	case model.ModeOcean:
		if n.ContainerType == "" {
			missing = append(missing, FieldContainerType)
		}
	case model.ModeGround:
		if n.DistanceKm <= 0 {
			missing = append(missing, FieldDistanceKm)
		}
	}

	return dedupe(missing)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func normalizePlace(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func dedupe(fields []string) []string {
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
