// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/swifthaul/rate-service/internal/domain/model"
)

// DimensionsDTO carries package dimensions in centimeters.
type DimensionsDTO struct {
	LengthCm float64 `json:"length" example:"40"`
	WidthCm  float64 `json:"width" example:"30"`
	HeightCm float64 `json:"height" example:"20"`
} // @name Dimensions

// CoordinateDTO carries a WGS 84 point.
type CoordinateDTO struct {
	Lat float64 `json:"lat" example:"6.5244"`
	Lon float64 `json:"lon" example:"3.3792"`
} // @name Coordinate

// QuoteRequest represents the JSON request body for the quote endpoint.
//
// Every field is optional: structured fields take priority, and anything
// missing may be recovered from FreeText. Fields still missing after the
// merge come back in the response as a clarification list.
//
// @Description Request for a freight rate estimate
// @Example {"free_text": "10kg from China to Lagos by air"}
// @Example {"mode": "ground", "origin": "Lagos", "destination": "Kano", "distance_km": 1000}
type QuoteRequest struct {
	// FreeText is an unstructured message to extract shipment parameters from.
	FreeText string `json:"free_text,omitempty" example:"10kg from China to Lagos by air"`
	// Mode is the delivery mode: parcel, air, ocean or ground.
	Mode string `json:"mode,omitempty" example:"air"`
	// Origin is the free-text origin place name.
	Origin string `json:"origin,omitempty" example:"Shanghai"`
	// Destination is the free-text destination place name.
	Destination string `json:"destination,omitempty" example:"Lagos"`
	// WeightKg is the actual shipment weight in kilograms.
	WeightKg float64 `json:"weight_kg,omitempty" example:"10" minimum:"0"`
	// Dimensions holds package dimensions in centimeters.
	Dimensions *DimensionsDTO `json:"dimensions_cm,omitempty"`
	// VolumeM3 is the shipment volume in cubic meters, an alternative to dimensions.
	VolumeM3 float64 `json:"volume_m3,omitempty" example:"0.5" minimum:"0"`
	// ContainerType is the ocean container size: 20ft, 40ft or 40hc.
	ContainerType string `json:"container_type,omitempty" example:"20ft"`
	// DistanceKm is the driving distance in kilometers (ground mode).
	DistanceKm float64 `json:"distance_km,omitempty" example:"1000" minimum:"0"`
	// OriginCoord optionally pins the origin to exact coordinates.
	OriginCoord *CoordinateDTO `json:"origin_coord,omitempty"`
	// DestinationCoord optionally pins the destination to exact coordinates.
	DestinationCoord *CoordinateDTO `json:"destination_coord,omitempty"`
	// Express requests express service where the mode supports it.
	Express bool `json:"express,omitempty" example:"false"`
	// DemurrageDays is the expected container hold beyond free time (ocean).
	DemurrageDays int `json:"demurrage_days,omitempty" example:"0" minimum:"0"`
} // @name QuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidMode is returned when mode is not a recognized delivery mode.
	ErrInvalidMode = &ValidationError{Field: "mode", Message: "must be one of parcel, air, ocean, ground"}
	// ErrInvalidContainer is returned when container_type is not recognized.
	ErrInvalidContainer = &ValidationError{Field: "container_type", Message: "must be one of 20ft, 40ft, 40hc"}
	// ErrNegativeWeight is returned when weight_kg is negative.
	ErrNegativeWeight = &ValidationError{Field: "weight_kg", Message: "must not be negative"}
	// ErrNegativeVolume is returned when volume_m3 is negative.
	ErrNegativeVolume = &ValidationError{Field: "volume_m3", Message: "must not be negative"}
	// ErrNegativeDistance is returned when distance_km is negative.
	ErrNegativeDistance = &ValidationError{Field: "distance_km", Message: "must not be negative"}
	// ErrNegativeDemurrage is returned when demurrage_days is negative.
	ErrNegativeDemurrage = &ValidationError{Field: "demurrage_days", Message: "must not be negative"}
	// ErrNegativeDimensions is returned when any dimension is negative.
	ErrNegativeDimensions = &ValidationError{Field: "dimensions_cm", Message: "must not contain negative values"}
)

// Validate performs structural validation on the request.
// Missing fields are not an error here; they surface later as a
// clarification list. Only malformed values are rejected.
func (r *QuoteRequest) Validate() error {
	if r.Mode != "" {
		if _, ok := model.ParseMode(r.Mode); !ok {
			return ErrInvalidMode
		}
	}
	if r.ContainerType != "" {
		if _, ok := model.ParseContainer(r.ContainerType); !ok {
			return ErrInvalidContainer
		}
	}
	if r.WeightKg < 0 {
		return ErrNegativeWeight
	}
	if r.VolumeM3 < 0 {
		return ErrNegativeVolume
	}
	if r.DistanceKm < 0 {
		return ErrNegativeDistance
	}
	if r.DemurrageDays < 0 {
		return ErrNegativeDemurrage
	}
	if d := r.Dimensions; d != nil {
		if d.LengthCm < 0 || d.WidthCm < 0 || d.HeightCm < 0 {
			return ErrNegativeDimensions
		}
	}
	return nil
}
