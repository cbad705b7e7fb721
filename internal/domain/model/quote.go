// Package model defines the core domain entities for the rate service.
package model

import (
	"math"
	"strings"
)

// Mode identifies the delivery mode for a shipment.
type Mode string

const (
	// ModeParcel is door-to-door courier delivery of small packages.
	ModeParcel Mode = "parcel"
	// ModeAir is air freight.
	ModeAir Mode = "air"
	// ModeOcean is containerized sea freight.
	ModeOcean Mode = "ocean"
	// ModeGround is road haulage.
	ModeGround Mode = "ground"
)

// ParseMode converts a string to a Mode.
// Returns false if the string is not a recognized mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeParcel:
		return ModeParcel, true
	case ModeAir:
		return ModeAir, true
	case ModeOcean:
		return ModeOcean, true
	case ModeGround:
		return ModeGround, true
	}
	return "", false
}

// Container size categories for ocean freight.
const (
	Container20ft = "20ft"
	Container40ft = "40ft"
	Container40hc = "40hc"
)

// ParseContainer converts a string to a canonical container size category.
func ParseContainer(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case Container20ft:
		return Container20ft, true
	case Container40ft:
		return Container40ft, true
	case Container40hc:
		return Container40hc, true
	}
	return "", false
}

// Coordinate is a WGS 84 geographic point.
type Coordinate struct {
	Lat float64 `json:"lat" example:"6.5244"`
	Lon float64 `json:"lon" example:"3.3792"`
}

// Dimensions holds package dimensions in centimeters.
type Dimensions struct {
	LengthCm float64 `json:"length" example:"40"`
	WidthCm  float64 `json:"width" example:"30"`
	HeightCm float64 `json:"height" example:"20"`
}

// VolumetricWeightKg returns the volumetric weight for the given divisor
// (cm³ per kg). Returns 0 for a zero divisor.
func (d Dimensions) VolumetricWeightKg(divisor float64) float64 {
	if divisor <= 0 {
		return 0
	}
	return d.LengthCm * d.WidthCm * d.HeightCm / divisor
}

// NormalizedRequest is a fully merged quote request ready for pricing.
// Explicit fields and free-text extracted fields have already been
// reconciled; only the fields required by the resolved mode are
// guaranteed to be set.
type NormalizedRequest struct {
	Mode            Mode
	Origin          string
	Destination     string
	WeightKg        float64
	Dims            *Dimensions
	VolumeM3        float64
	ContainerType   string
	DistanceKm      float64
	// DistanceSource names the resolution strategy when the distance was
	// resolved externally rather than supplied by the caller.
	DistanceSource   string
	OriginCoord      *Coordinate
	DestinationCoord *Coordinate
	Express          bool
	DemurrageDays    int
}

// Breakdown is the priced result of a rate calculation.
// TotalAmount always equals BaseAmount + SurchargesAmount + MarginAmount
// at two decimal places; every value is rounded once, at construction.
//
// @Description Priced breakdown with base, surcharges, margin and total
type Breakdown struct {
	// BaseAmount is the mode base charge after market multipliers
	BaseAmount float64 `json:"base_amount" example:"125000.00"`
	// SurchargesAmount is the sum of all surcharges after multipliers
	SurchargesAmount float64 `json:"surcharges_amount" example:"15000.00"`
	// MarginAmount is the margin applied on base plus surcharges
	MarginAmount float64 `json:"margin_amount" example:"21000.00"`
	// TotalAmount is base + surcharges + margin
	TotalAmount float64 `json:"total_amount" example:"161000.00"`
	// Currency is the fixed output currency
	Currency string `json:"currency" example:"NGN"`
	// Assumptions lists every heuristic, lookup and fallback applied
	Assumptions []string `json:"assumptions"`
} // @name Breakdown

// NewBreakdown builds a Breakdown from raw (unrounded) amounts.
// Rounding to two decimals happens here and nowhere else.
func NewBreakdown(base, surcharges, margin float64, currency string, assumptions []string) Breakdown {
	if assumptions == nil {
		assumptions = []string{}
	}
	return Breakdown{
		BaseAmount:       Round2(base),
		SurchargesAmount: Round2(surcharges),
		MarginAmount:     Round2(margin),
		TotalAmount:      Round2(base) + Round2(surcharges) + Round2(margin),
		Currency:         currency,
		Assumptions:      assumptions,
	}
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Quote is the successful outcome of a rate estimation.
//
// @Description Freight quote for a resolved mode and lane
type Quote struct {
	Mode        Mode   `json:"mode" example:"air"`
	Origin      string `json:"origin" example:"Shanghai"`
	Destination string `json:"destination" example:"Lagos"`
	// ChargeableWeightKg is set for air mode only
	ChargeableWeightKg *float64  `json:"chargeable_weight_kg,omitempty" example:"45"`
	Breakdown          Breakdown `json:"breakdown"`
} // @name Quote

// DistanceResult is a resolved distance between two places.
// DurationHours is NaN when the resolution strategy cannot estimate
// drive time (haversine, static lane table).
type DistanceResult struct {
	DistanceKm    float64
	DurationHours float64
	Source        string
}

// HasDuration reports whether the result carries a usable drive duration.
func (r DistanceResult) HasDuration() bool {
	return !math.IsNaN(r.DurationHours)
}
