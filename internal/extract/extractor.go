// Package extract parses unstructured shipment messages into candidate
// structured quote fields using pattern matching. Extraction never
// fails: a pattern that does not match simply leaves its field unset.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/swifthaul/rate-service/internal/domain/model"
)

// Fields is the partial result of extracting a free-text message.
// Zero values mean "not found".
type Fields struct {
	Mode          model.Mode
	Origin        string
	Destination   string
	WeightKg      float64
	Dims          *model.Dimensions
	VolumeM3      float64
	DistanceKm    float64
	ContainerType string
	Express       bool
	DemurrageDays int
}

// Extractor turns raw text into candidate quote fields. The regex
// implementation below is the default; alternative strategies (for
// example structured-output model calls) can be substituted without
// touching the merger or calculator.
type Extractor interface {
	Extract(text string) Fields
}

// modeKeywords maps keyword alternations to modes, matched in order.
// The first category with a hit wins.
var modeKeywords = []struct {
	pattern *regexp.Regexp
	mode    model.Mode
}{
	{regexp.MustCompile(`(?i)\b(?:courier|parcel|dhl|fedex|ups)\b`), model.ModeParcel},
	{regexp.MustCompile(`(?i)\b(?:air|airfreight|flight|airport|fly)\b`), model.ModeAir},
	{regexp.MustCompile(`(?i)\b(?:ocean|sea|container|vessel)\b`), model.ModeOcean},
	{regexp.MustCompile(`(?i)\b(?:truck|trucking|road|lorry|haulage|van)\b`), model.ModeGround},
}

var (
	fromToPattern     = regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+to\s+(.+?)(?:\s+(?:by|via)\b|[.!?;,]|$)`)
	weightKgPattern   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:kg|kilo(?:gram)?s?)\b`)
	weightTonPattern  = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:t|tons?|tonnes?)\b`)
	weightLbPattern   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:lbs?|pounds?)\b`)
	weightGramPattern = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:g|grams?)\b`)
	dimsPattern       = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*[x×]\s*(\d+(?:\.\d+)?)\s*[x×]\s*(\d+(?:\.\d+)?)\s*cm\b`)
	volumePattern     = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:m3|m³|cbm|cubic\s*met(?:er|re)s?)\b`)
	distancePattern   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*km\b`)
	container20       = regexp.MustCompile(`(?i)\b20\s*ft\b`)
	container40hc     = regexp.MustCompile(`(?i)\b40\s*(?:hc|high\s*cube)\b`)
	container40       = regexp.MustCompile(`(?i)\b40\s*ft\b`)
	expressPattern    = regexp.MustCompile(`(?i)\b(?:express|dhl|fedex|ups)\b`)
	demurrageKeyword  = regexp.MustCompile(`(?i)\b(?:demurrage|detention)\b`)
	dayCountPattern   = regexp.MustCompile(`(?i)\b(\d+)\s*days?\b`)
	// trailingQuantity strips quantity tokens left dangling at the end of
	// a captured place, e.g. "Kano 760" in "from Lagos to Kano 760km".
	trailingQuantity = regexp.MustCompile(`(?i)(?:\s|^)(?:\d+(?:\.\d+)?\s*(?:kg|km|cm)?|kg|km|cm)$`)
)

// RegexExtractor extracts quote fields with case-insensitive patterns.
type RegexExtractor struct{}

// NewRegexExtractor creates the default pattern-based extractor.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

// Extract parses the message and returns every field it can recognize.
func (e *RegexExtractor) Extract(text string) Fields {
	var f Fields
	if strings.TrimSpace(text) == "" {
		return f
	}

	for _, mk := range modeKeywords {
		if mk.pattern.MatchString(text) {
			f.Mode = mk.mode
			break
		}
	}

	if m := fromToPattern.FindStringSubmatch(text); m != nil {
		f.Origin = trimPlace(m[1])
		f.Destination = trimPlace(m[2])
	}

	f.WeightKg = extractWeightKg(text)

	if m := dimsPattern.FindStringSubmatch(text); m != nil {
		l, _ := strconv.ParseFloat(m[1], 64)
		w, _ := strconv.ParseFloat(m[2], 64)
		h, _ := strconv.ParseFloat(m[3], 64)
		f.Dims = &model.Dimensions{LengthCm: l, WidthCm: w, HeightCm: h}
	}

	if m := volumePattern.FindStringSubmatch(text); m != nil {
		f.VolumeM3, _ = strconv.ParseFloat(m[1], 64)
	}

	if m := distancePattern.FindStringSubmatch(text); m != nil {
		f.DistanceKm, _ = strconv.ParseFloat(m[1], 64)
	}

	// 40hc before 40ft: "40 high cube" would otherwise never win.
	switch {
	case container20.MatchString(text):
		f.ContainerType = model.Container20ft
	case container40hc.MatchString(text):
		f.ContainerType = model.Container40hc
	case container40.MatchString(text):
		f.ContainerType = model.Container40ft
	}

	f.Express = expressPattern.MatchString(text)

	if demurrageKeyword.MatchString(text) {
		if m := dayCountPattern.FindStringSubmatch(text); m != nil {
			f.DemurrageDays, _ = strconv.Atoi(m[1])
		}
	}

	return f
}

// extractWeightKg parses the first weight token in the text, converting
// to kilograms. Kilograms are tried first so "10kg" never half-matches
// the bare-gram pattern; tonnes, pounds and grams follow.
func extractWeightKg(text string) float64 {
	if m := weightKgPattern.FindStringSubmatch(text); m != nil {
		kg, _ := strconv.ParseFloat(m[1], 64)
		return kg
	}
	if m := weightTonPattern.FindStringSubmatch(text); m != nil {
		t, _ := strconv.ParseFloat(m[1], 64)
		return t * 1000
	}
	if m := weightLbPattern.FindStringSubmatch(text); m != nil {
		lb, _ := strconv.ParseFloat(m[1], 64)
		return lb * 0.45359237
	}
	if m := weightGramPattern.FindStringSubmatch(text); m != nil {
		g, _ := strconv.ParseFloat(m[1], 64)
		return g / 1000
	}
	return 0
}

// trimPlace cleans a captured place string: trailing punctuation and any
// dangling quantity tokens left at the capture boundary.
func trimPlace(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".,;:!?")
	for {
		trimmed := trailingQuantity.ReplaceAllString(s, "")
		trimmed = strings.TrimSpace(trimmed)
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}
