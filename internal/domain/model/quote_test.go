package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Mode
		wantOK bool
	}{
		{name: "parcel", input: "parcel", want: ModeParcel, wantOK: true},
		{name: "air uppercase", input: "AIR", want: ModeAir, wantOK: true},
		{name: "ocean with spaces", input: "  ocean ", want: ModeOcean, wantOK: true},
		{name: "ground", input: "ground", want: ModeGround, wantOK: true},
		{name: "unknown", input: "teleport", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMode(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseContainer(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "20ft", want: Container20ft, wantOK: true},
		{input: "40FT", want: Container40ft, wantOK: true},
		{input: " 40hc ", want: Container40hc, wantOK: true},
		{input: "45ft", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseContainer(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDimensionsVolumetricWeight(t *testing.T) {
	d := Dimensions{LengthCm: 50, WidthCm: 40, HeightCm: 30}

	assert.InDelta(t, 12.0, d.VolumetricWeightKg(5000), 1e-9)
	assert.InDelta(t, 10.0, d.VolumetricWeightKg(6000), 1e-9)
	assert.Zero(t, d.VolumetricWeightKg(0))
}

func TestNewBreakdown(t *testing.T) {
	b := NewBreakdown(100.005, 10.344, 16.551, "NGN", []string{"flat base"})

	assert.Equal(t, 100.01, b.BaseAmount)
	assert.Equal(t, 10.34, b.SurchargesAmount)
	assert.Equal(t, 16.55, b.MarginAmount)
	assert.InDelta(t, b.BaseAmount+b.SurchargesAmount+b.MarginAmount, b.TotalAmount, 1e-9)
	assert.Equal(t, "NGN", b.Currency)
	assert.Equal(t, []string{"flat base"}, b.Assumptions)
}

func TestNewBreakdownNilAssumptions(t *testing.T) {
	b := NewBreakdown(1, 0, 0, "NGN", nil)
	assert.NotNil(t, b.Assumptions)
	assert.Empty(t, b.Assumptions)
}

func TestDistanceResultHasDuration(t *testing.T) {
	withDuration := DistanceResult{DistanceKm: 750, DurationHours: 9.5, Source: "route_primary"}
	withoutDuration := DistanceResult{DistanceKm: 750, DurationHours: math.NaN(), Source: "haversine"}

	assert.True(t, withDuration.HasDuration())
	assert.False(t, withoutDuration.HasDuration())
}
