package service

import (
	"fmt"
	"math"

	"github.com/swifthaul/rate-service/config"
	"github.com/swifthaul/rate-service/internal/domain/model"
	"github.com/swifthaul/rate-service/internal/places"
)

// CurrencyNGN is the fixed output currency for every breakdown.
const CurrencyNGN = "NGN"

// Calculator prices a fully normalized request into a Quote.
type Calculator interface {
	Calculate(n model.NormalizedRequest) (model.Quote, error)
}

type calculator struct {
	cfg config.PricingConfig
}

// NewCalculator creates a Calculator from pricing configuration.
func NewCalculator(cfg config.PricingConfig) Calculator {
	return &calculator{cfg: cfg}
}

// parcelLaneBasesNGN is the domestic city-pair lane table, keyed by
// canonical city names. Lookups try both orderings of the pair.
var parcelLaneBasesNGN = map[string]float64{
	"lagos|abuja":          4500,
	"lagos|ibadan":         2500,
	"lagos|kano":           6000,
	"lagos|port harcourt":  5000,
	"lagos|benin city":     3500,
	"lagos|enugu":          5000,
	"lagos|abeokuta":       1800,
	"lagos|ilorin":         3000,
	"abuja|kano":           3500,
	"abuja|kaduna":         2000,
	"abuja|jos":            2500,
	"port harcourt|owerri": 1500,
	"enugu|onitsha":        1800,
}

// intlWeightBracketsUSD maps chargeable weight to a USD parcel base.
// Brackets are finer at low weights; shipments above the last bracket
// are priced per kilogram.
var intlWeightBracketsUSD = []struct {
	maxKg   float64
	baseUSD float64
}{
	{0.5, 25},
	{1, 35},
	{2, 50},
	{5, 90},
	{10, 150},
	{20, 260},
	{30, 360},
}

const intlOverBracketUSDPerKg = 12

// regionalAdjustment scales the international parcel base by origin
// region. Long-haul corridors cost more, regional ones less.
var regionalAdjustment = map[places.Region]float64{
	places.RegionDomestic:     0.85,
	places.RegionWestAfrica:   0.9,
	places.RegionEurope:       1.0,
	places.RegionMiddleEast:   1.0,
	places.RegionAsia:         1.05,
	places.RegionNorthAmerica: 1.15,
	places.RegionSouthAmerica: 1.25,
	places.RegionUnknown:      1.1,
}

// oceanBaseUSD is the origin-region by container-size base table.
var oceanBaseUSD = map[places.Region]map[string]float64{
	places.RegionAsia:         {model.Container20ft: 2200, model.Container40ft: 3800, model.Container40hc: 4100},
	places.RegionEurope:       {model.Container20ft: 2600, model.Container40ft: 4300, model.Container40hc: 4600},
	places.RegionNorthAmerica: {model.Container20ft: 3000, model.Container40ft: 5000, model.Container40hc: 5400},
	places.RegionMiddleEast:   {model.Container20ft: 2400, model.Container40ft: 4000, model.Container40hc: 4300},
	places.RegionSouthAmerica: {model.Container20ft: 3200, model.Container40ft: 5300, model.Container40hc: 5700},
	places.RegionWestAfrica:   {model.Container20ft: 1500, model.Container40ft: 2500, model.Container40hc: 2700},
	places.RegionDomestic:     {model.Container20ft: 1200, model.Container40ft: 2000, model.Container40hc: 2200},
	places.RegionUnknown:      {model.Container20ft: 2800, model.Container40ft: 4600, model.Container40hc: 5000},
}

// airRatePerKgUSD is the origin-region rate table, standard and express.
var airRatePerKgUSD = map[places.Region]struct {
	standard float64
	express  float64
}{
	places.RegionDomestic:     {2.2, 3.4},
	places.RegionWestAfrica:   {3.5, 5.2},
	places.RegionAsia:         {4.5, 6.8},
	places.RegionEurope:       {5.5, 8.2},
	places.RegionMiddleEast:   {5.0, 7.4},
	places.RegionNorthAmerica: {6.5, 9.5},
	places.RegionSouthAmerica: {7.0, 10.5},
	places.RegionUnknown:      {6.0, 9.0},
}

// groundIntraCityRates is the per-km NGN rate for moves inside one
// tabulated city.
var groundIntraCityRates = map[string]float64{
	"lagos":         350,
	"abuja":         300,
	"port harcourt": 320,
	"kano":          280,
}

func (c *calculator) Calculate(n model.NormalizedRequest) (model.Quote, error) {
	var (
		baseNGN       float64
		surchargesNGN float64
		assumptions   []string
		chargeableKg  *float64
	)

	if n.DistanceSource != "" {
		assumptions = append(assumptions,
			fmt.Sprintf("Distance %.0f km resolved via %s", n.DistanceKm, distanceSourceLabel(n.DistanceSource)))
	}

	switch n.Mode {
	case model.ModeParcel:
		baseNGN, surchargesNGN, assumptions = c.parcel(n, assumptions)
	case model.ModeAir:
		var kg float64
		baseNGN, surchargesNGN, kg, assumptions = c.air(n, assumptions)
		chargeableKg = &kg
	case model.ModeOcean:
		baseNGN, surchargesNGN, assumptions = c.ocean(n, assumptions)
	case model.ModeGround:
		baseNGN, surchargesNGN, assumptions = c.ground(n, assumptions)
	default:
		return model.Quote{}, fmt.Errorf("unsupported mode %q", n.Mode)
	}

	multiplier := c.cfg.InflationFactor * c.marketMultiplier(n.Mode)
	base := baseNGN * multiplier
	surcharges := surchargesNGN * multiplier
	margin := (base + surcharges) * c.marginPercent(n.Mode)

	return model.Quote{
		Mode:               n.Mode,
		Origin:             n.Origin,
		Destination:        n.Destination,
		ChargeableWeightKg: chargeableKg,
		Breakdown:          model.NewBreakdown(base, surcharges, margin, CurrencyNGN, assumptions),
	}, nil
}

func (c *calculator) parcel(n model.NormalizedRequest, assumptions []string) (base, surcharges float64, out []string) {
	if places.IsDomestic(n.Origin) && places.IsDomestic(n.Destination) {
		return c.parcelDomestic(n, assumptions)
	}
	return c.parcelInternational(n, assumptions)
}

func (c *calculator) parcelDomestic(n model.NormalizedRequest, assumptions []string) (float64, float64, []string) {
	laneBase := c.cfg.ParcelLongDistanceBaseNGN
	originCity, originOK := places.CanonicalCity(n.Origin)
	destCity, destOK := places.CanonicalCity(n.Destination)
	if originOK && destOK {
		if b, ok := lookupLaneBase(originCity, destCity); ok {
			laneBase = b
			assumptions = append(assumptions,
				fmt.Sprintf("Domestic lane %s-%s base rate applied", originCity, destCity))
		} else {
			assumptions = append(assumptions,
				fmt.Sprintf("No tabulated lane for %s-%s, long-distance base rate applied", originCity, destCity))
		}
	} else {
		assumptions = append(assumptions,
			"Unrecognized domestic lane, long-distance base rate applied")
	}

	kg, assumptions := c.chargeableWeight(n, c.cfg.ParcelVolumetricDivisor, assumptions)
	factor := c.weightFactor(kg)
	if factor > 1 {
		assumptions = append(assumptions,
			fmt.Sprintf("Weight factor %.1fx applied for %.1f kg", factor, kg))
	}

	base := laneBase * factor
	surcharges := base * c.cfg.DomesticSurchargePct
	return base, surcharges, assumptions
}

func (c *calculator) parcelInternational(n model.NormalizedRequest, assumptions []string) (float64, float64, []string) {
	kg, assumptions := c.chargeableWeight(n, c.cfg.ParcelVolumetricDivisor, assumptions)

	baseUSD := intlParcelBaseUSD(kg)
	region := places.Classify(n.Origin)
	adjustment := regionalAdjustment[region]
	if adjustment == 0 {
		adjustment = regionalAdjustment[places.RegionUnknown]
	}
	baseUSD *= adjustment
	assumptions = append(assumptions,
		fmt.Sprintf("Origin classified as %s region (adjustment %.2fx)", region, adjustment))
	assumptions = append(assumptions,
		fmt.Sprintf("Converted from USD at %.0f NGN/USD", c.cfg.FXRateUSDNGN))

	surchargesUSD := baseUSD * c.cfg.InternationalSurchargePct
	return baseUSD * c.cfg.FXRateUSDNGN, surchargesUSD * c.cfg.FXRateUSDNGN, assumptions
}

func (c *calculator) air(n model.NormalizedRequest, assumptions []string) (float64, float64, float64, []string) {
	kg, assumptions := c.chargeableWeight(n, c.cfg.AirVolumetricDivisor, assumptions)
	if kg < c.cfg.AirMinChargeableKg {
		assumptions = append(assumptions,
			fmt.Sprintf("Minimum chargeable weight of %.0f kg applied", c.cfg.AirMinChargeableKg))
		kg = c.cfg.AirMinChargeableKg
	}

	region := places.Classify(n.Origin)
	rates, ok := airRatePerKgUSD[region]
	if !ok {
		rates = airRatePerKgUSD[places.RegionUnknown]
	}
	rate := rates.standard
	service := "standard"
	if n.Express {
		rate = rates.express
		service = "express"
	}
	assumptions = append(assumptions,
		fmt.Sprintf("Air %s rate %.2f USD/kg for %s region origin", service, rate, region))
	assumptions = append(assumptions,
		fmt.Sprintf("Converted from USD at %.0f NGN/USD", c.cfg.FXRateUSDNGN))

	baseUSD := kg * rate
	surchargesUSD := baseUSD * c.cfg.AirSurchargePct
	return baseUSD * c.cfg.FXRateUSDNGN, surchargesUSD * c.cfg.FXRateUSDNGN, kg, assumptions
}

func (c *calculator) ocean(n model.NormalizedRequest, assumptions []string) (float64, float64, []string) {
	region := places.Classify(n.Origin)
	table, ok := oceanBaseUSD[region]
	if !ok {
		table = oceanBaseUSD[places.RegionUnknown]
	}
	baseUSD := table[n.ContainerType]
	assumptions = append(assumptions,
		fmt.Sprintf("Ocean base for %s container from %s region", n.ContainerType, region))

	if !places.IsDomestic(n.Destination) {
		baseUSD *= 1 + c.cfg.OceanForeignDestPremiumPct
		assumptions = append(assumptions,
			fmt.Sprintf("Foreign destination premium of %.0f%% applied", c.cfg.OceanForeignDestPremiumPct*100))
	}

	surchargesUSD := c.cfg.OceanPortCongestionUSD + c.cfg.OceanDocumentationUSD + baseUSD*c.cfg.OceanBAFCAFPct
	assumptions = append(assumptions,
		"Port congestion, documentation and BAF/CAF surcharges included")
	if n.DemurrageDays > 0 {
		surchargesUSD += float64(n.DemurrageDays) * c.cfg.OceanDemurragePerDayUSD
		assumptions = append(assumptions,
			fmt.Sprintf("Demurrage for %d days at %.0f USD/day", n.DemurrageDays, c.cfg.OceanDemurragePerDayUSD))
	}
	assumptions = append(assumptions,
		fmt.Sprintf("Converted from USD at %.0f NGN/USD", c.cfg.FXRateUSDNGN))

	return baseUSD * c.cfg.FXRateUSDNGN, surchargesUSD * c.cfg.FXRateUSDNGN, assumptions
}

func (c *calculator) ground(n model.NormalizedRequest, assumptions []string) (float64, float64, []string) {
	originCity, originOK := places.CanonicalCity(n.Origin)
	destCity, destOK := places.CanonicalCity(n.Destination)

	var rate float64
	if originOK && destOK && originCity == destCity {
		rate = groundIntraCityRates[originCity]
		if rate == 0 {
			rate = c.cfg.GroundGenericIntraCityRate
			assumptions = append(assumptions,
				fmt.Sprintf("Intra-city move within %s, generic rate %.0f NGN/km", originCity, rate))
		} else {
			assumptions = append(assumptions,
				fmt.Sprintf("Intra-city move within %s at %.0f NGN/km", originCity, rate))
		}
	} else {
		switch {
		case n.DistanceKm <= c.cfg.GroundTierShortMaxKm:
			rate = c.cfg.GroundTierShortRate
		case n.DistanceKm <= c.cfg.GroundTierMidMaxKm:
			rate = c.cfg.GroundTierMidRate
		default:
			rate = c.cfg.GroundTierLongRate
		}
		assumptions = append(assumptions,
			fmt.Sprintf("Inter-city rate %.0f NGN/km for %.0f km", rate, n.DistanceKm))
	}

	base := n.DistanceKm * rate
	surcharges := base * c.cfg.GroundSurchargePct
	return base, surcharges, assumptions
}

// chargeableWeight returns max(actual, volumetric) weight in kg. The
// volumetric side comes from dimensions when present, otherwise from an
// explicit volume.
func (c *calculator) chargeableWeight(n model.NormalizedRequest, divisor float64, assumptions []string) (float64, []string) {
	volumetric := 0.0
	switch {
	case n.Dims != nil:
		volumetric = n.Dims.VolumetricWeightKg(divisor)
	case n.VolumeM3 > 0:
		volumetric = n.VolumeM3 * 1_000_000 / divisor
	}

	if volumetric > n.WeightKg {
		assumptions = append(assumptions,
			fmt.Sprintf("Volumetric weight %.1f kg exceeds actual %.1f kg, charged volumetric", volumetric, n.WeightKg))
		return volumetric, assumptions
	}
	return math.Max(n.WeightKg, 0), assumptions
}

// weightFactor returns the multiplier for the heaviest matching
// breakpoint. Breaks are sorted heaviest first.
func (c *calculator) weightFactor(kg float64) float64 {
	breaks := c.cfg.WeightBreaks
	if len(breaks) == 0 {
		breaks = config.DefaultWeightBreaks
	}
	for _, b := range breaks {
		if kg > b.AboveKg {
			return b.Factor
		}
	}
	return 1.0
}

func (c *calculator) marketMultiplier(mode model.Mode) float64 {
	switch mode {
	case model.ModeParcel:
		return c.cfg.MarketMultiplierParcel
	case model.ModeAir:
		return c.cfg.MarketMultiplierAir
	case model.ModeOcean:
		return c.cfg.MarketMultiplierOcean
	default:
		return c.cfg.MarketMultiplierGround
	}
}

func (c *calculator) marginPercent(mode model.Mode) float64 {
	switch mode {
	case model.ModeParcel:
		return c.cfg.MarginPercentParcel
	case model.ModeAir:
		return c.cfg.MarginPercentAir
	case model.ModeOcean:
		return c.cfg.MarginPercentOcean
	default:
		return c.cfg.MarginPercentGround
	}
}

func lookupLaneBase(a, b string) (float64, bool) {
	if v, ok := parcelLaneBasesNGN[a+"|"+b]; ok {
		return v, true
	}
	v, ok := parcelLaneBasesNGN[b+"|"+a]
	return v, ok
}

func intlParcelBaseUSD(kg float64) float64 {
	for _, b := range intlWeightBracketsUSD {
		if kg <= b.maxKg {
			return b.baseUSD
		}
	}
	return kg * intlOverBracketUSDPerKg
}

func distanceSourceLabel(source string) string {
	switch source {
	case "cache":
		return "cached lookup"
	case "route_primary", "route_secondary":
		return "routing provider"
	case "haversine":
		return "great-circle estimate"
	case "lane_table":
		return "known lane distance"
	default:
		return source
	}
}
