package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDomestic(t *testing.T) {
	tests := []struct {
		name  string
		place string
		want  bool
	}{
		{name: "country name", place: "Nigeria", want: true},
		{name: "city", place: "Lagos", want: true},
		{name: "city inside sentence", place: "Lagos Island, Nigeria", want: true},
		{name: "alias", place: "Ikeja", want: true},
		{name: "case-insensitive", place: "pOrT hArCoUrT", want: true},
		{name: "foreign city", place: "Shanghai", want: false},
		{name: "niger republic is not nigeria", place: "Niamey, Niger Republic", want: false},
		{name: "benin republic is not benin city", place: "Benin Republic", want: false},
		{name: "cotonou contexts mentioning benin", place: "Cotonou, Benin", want: false},
		{name: "republic of benin", place: "Republic of Benin", want: false},
		{name: "substring does not match word boundary", place: "Lagosians", want: false},
		{name: "empty", place: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDomestic(tt.place))
		})
	}
}

func TestCanonicalCity(t *testing.T) {
	tests := []struct {
		place  string
		want   string
		wantOK bool
	}{
		{place: "Lagos", want: "lagos", wantOK: true},
		{place: "Lekki, Lagos", want: "lagos", wantOK: true},
		{place: "Benin", want: "benin city", wantOK: true},
		{place: "Benin City", want: "benin city", wantOK: true},
		{place: "Port Harcourt", want: "port harcourt", wantOK: true},
		{place: "FCT", want: "abuja", wantOK: true},
		{place: "Cotonou, Benin", wantOK: false},
		{place: "Timbuktu", wantOK: false},
		{place: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.place, func(t *testing.T) {
			got, ok := CanonicalCity(tt.place)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		place string
		want  Region
	}{
		{place: "Lagos", want: RegionDomestic},
		{place: "Kano, Nigeria", want: RegionDomestic},
		{place: "Accra, Ghana", want: RegionWestAfrica},
		{place: "Benin Republic", want: RegionWestAfrica},
		{place: "Cotonou, Benin Republic", want: RegionWestAfrica},
		{place: "Benin City", want: RegionDomestic},
		{place: "Shanghai, China", want: RegionAsia},
		{place: "Guangzhou", want: RegionAsia},
		{place: "London", want: RegionEurope},
		{place: "Rotterdam", want: RegionEurope},
		{place: "New York", want: RegionNorthAmerica},
		{place: "Dubai", want: RegionMiddleEast},
		{place: "Santos, Brazil", want: RegionSouthAmerica},
		{place: "Ulaanbaatar", want: RegionUnknown},
		{place: "", want: RegionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.place, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.place))
		})
	}
}

func TestCityCoordinate(t *testing.T) {
	lagos, ok := CityCoordinate("Lagos")
	assert.True(t, ok)
	assert.InDelta(t, 6.5244, lagos.Lat, 1e-4)
	assert.InDelta(t, 3.3792, lagos.Lon, 1e-4)

	// Alias resolves through the canonical city.
	ikeja, ok := CityCoordinate("Ikeja")
	assert.True(t, ok)
	assert.Equal(t, lagos, ikeja)

	// Foreign hub matched directly.
	shanghai, ok := CityCoordinate("Shanghai, China")
	assert.True(t, ok)
	assert.InDelta(t, 31.2304, shanghai.Lat, 1e-4)

	_, ok = CityCoordinate("Atlantis")
	assert.False(t, ok)
}

func TestLaneDistanceKm(t *testing.T) {
	d, ok := LaneDistanceKm("Lagos", "Ibadan")
	assert.True(t, ok)
	assert.Equal(t, 128.0, d)

	// Bidirectional lookup.
	rev, ok := LaneDistanceKm("Ibadan", "Lagos")
	assert.True(t, ok)
	assert.Equal(t, d, rev)

	// Aliases resolve before lookup.
	d, ok = LaneDistanceKm("Lekki, Lagos", "FCT")
	assert.True(t, ok)
	assert.Equal(t, 756.0, d)

	_, ok = LaneDistanceKm("Lagos", "Maiduguri")
	assert.False(t, ok)

	_, ok = LaneDistanceKm("Lagos", "Accra")
	assert.False(t, ok)
}
