package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swifthaul/rate-service/internal/domain/model"
)

func TestExtractMode(t *testing.T) {
	e := NewRegexExtractor()

	tests := []struct {
		name string
		text string
		want model.Mode
	}{
		{name: "courier keyword", text: "send a courier to Abuja", want: model.ModeParcel},
		{name: "parcel brand", text: "ship it with DHL please", want: model.ModeParcel},
		{name: "air keyword", text: "10kg from China to Lagos by air", want: model.ModeAir},
		{name: "flight keyword", text: "next flight out to Kano", want: model.ModeAir},
		{name: "ocean keyword", text: "Ocean shipment from China to Lagos", want: model.ModeOcean},
		{name: "container keyword", text: "need a container from Shanghai", want: model.ModeOcean},
		{name: "truck keyword", text: "truck this from Lagos to Kano", want: model.ModeGround},
		{name: "road keyword", text: "move it by road", want: model.ModeGround},
		{name: "parcel wins over ground when both present", text: "courier by road", want: model.ModeParcel},
		{name: "no mode", text: "what does it cost from Lagos to Kano?", want: ""},
		{name: "airport does not need bare air word", text: "pickup near the airport", want: model.ModeAir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).Mode)
		})
	}
}

func TestExtractFromTo(t *testing.T) {
	e := NewRegexExtractor()

	tests := []struct {
		name            string
		text            string
		wantOrigin      string
		wantDestination string
	}{
		{
			name:            "simple pair",
			text:            "10kg from China to Lagos by air",
			wantOrigin:      "China",
			wantDestination: "Lagos",
		},
		{
			name:            "destination stops before distance token",
			text:            "haulage from Lagos to Kano 990km",
			wantOrigin:      "Lagos",
			wantDestination: "Kano",
		},
		{
			name:            "destination stops before weight token",
			text:            "from Ibadan to Abuja 42kg",
			wantOrigin:      "Ibadan",
			wantDestination: "Abuja",
		},
		{
			name:            "destination stops at via clause",
			text:            "from Lagos to Kano via Abuja",
			wantOrigin:      "Lagos",
			wantDestination: "Kano",
		},
		{
			name:            "destination stops at sentence end",
			text:            "quote me from Accra to Lagos. thanks",
			wantOrigin:      "Accra",
			wantDestination: "Lagos",
		},
		{
			name:            "multi-word places",
			text:            "from Port Harcourt to Benin City by road",
			wantOrigin:      "Port Harcourt",
			wantDestination: "Benin City",
		},
		{
			name: "no pattern leaves fields unset",
			text: "how much is shipping?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := e.Extract(tt.text)
			assert.Equal(t, tt.wantOrigin, f.Origin)
			assert.Equal(t, tt.wantDestination, f.Destination)
		})
	}
}

func TestExtractQuantities(t *testing.T) {
	e := NewRegexExtractor()

	f := e.Extract("send 12.5kg, box 50x40x30 cm, about 760 km total")
	assert.Equal(t, 12.5, f.WeightKg)
	assert.Equal(t, 760.0, f.DistanceKm)
	if assert.NotNil(t, f.Dims) {
		assert.Equal(t, 50.0, f.Dims.LengthCm)
		assert.Equal(t, 40.0, f.Dims.WidthCm)
		assert.Equal(t, 30.0, f.Dims.HeightCm)
	}

	// Unicode multiplication sign separator.
	f = e.Extract("carton is 20×30×40 cm")
	if assert.NotNil(t, f.Dims) {
		assert.Equal(t, 20.0, f.Dims.LengthCm)
	}

	// First occurrence wins.
	f = e.Extract("2kg now, maybe 5kg later")
	assert.Equal(t, 2.0, f.WeightKg)
}

func TestExtractWeightUnits(t *testing.T) {
	e := NewRegexExtractor()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "kilograms", text: "about 12.5 kg of samples", want: 12.5},
		{name: "kilos spelled out", text: "roughly 30 kilos", want: 30},
		{name: "tonnes", text: "2 tonnes of cement by road", want: 2000},
		{name: "bare t", text: "a 5t load from Kano", want: 5000},
		{name: "pounds", text: "package weighs 100 lbs", want: 45.359237},
		{name: "grams", text: "a 500g phone to Abuja", want: 0.5},
		{name: "kg beats grams on the same token", text: "exactly 10kg", want: 10},
		{name: "no weight", text: "how much to Kano?", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.Extract(tt.text).WeightKg, 1e-9)
		})
	}
}

func TestExtractVolume(t *testing.T) {
	e := NewRegexExtractor()

	assert.Equal(t, 0.5, e.Extract("around 0.5 cbm of cargo").VolumeM3)
	assert.Equal(t, 2.0, e.Extract("2 m3 by sea from Shanghai").VolumeM3)
	assert.Equal(t, 1.2, e.Extract("1.2 cubic meters of furniture").VolumeM3)
	assert.Zero(t, e.Extract("no volume given").VolumeM3)
}

func TestExtractContainer(t *testing.T) {
	e := NewRegexExtractor()

	tests := []struct {
		text string
		want string
	}{
		{text: "one 20ft box from Shanghai", want: model.Container20ft},
		{text: "need a 40hc container", want: model.Container40hc},
		{text: "a 40 high cube from China", want: model.Container40hc},
		{text: "price for 40ft to Lagos", want: model.Container40ft},
		{text: "no container mentioned", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text).ContainerType)
		})
	}
}

func TestExtractExpressAndDemurrage(t *testing.T) {
	e := NewRegexExtractor()

	assert.True(t, e.Extract("express delivery to Kano").Express)
	assert.True(t, e.Extract("use FedEx for this one").Express)
	assert.False(t, e.Extract("normal delivery to Kano").Express)

	f := e.Extract("expect 5 days demurrage at Apapa")
	assert.Equal(t, 5, f.DemurrageDays)

	f = e.Extract("detention of about 3 days at the port")
	assert.Equal(t, 3, f.DemurrageDays)

	// Day counts without the keyword are ignored.
	f = e.Extract("delivery in 3 days")
	assert.Zero(t, f.DemurrageDays)
}

func TestExtractEmptyText(t *testing.T) {
	e := NewRegexExtractor()
	assert.Equal(t, Fields{}, e.Extract("  "))
}
