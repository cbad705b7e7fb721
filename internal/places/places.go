// Package places provides pure string classifiers for place names:
// domestic detection, canonical city resolution, broad region
// classification, known city coordinates and static lane distances.
//
// The tables are hand-curated and deliberately partial. Unrecognized
// places fall into RegionUnknown, which every pricing table covers with
// default rates.
package places

import (
	"strings"

	"github.com/swifthaul/rate-service/internal/domain/model"
)

// Region is a broad geographic bucket used for rate table lookups.
type Region string

const (
	RegionDomestic     Region = "domestic"
	RegionWestAfrica   Region = "west_africa"
	RegionEurope       Region = "europe"
	RegionNorthAmerica Region = "north_america"
	RegionAsia         Region = "asia"
	RegionMiddleEast   Region = "middle_east"
	RegionSouthAmerica Region = "south_america"
	RegionUnknown      Region = "unknown"
)

// canonicalCities maps recognized domestic place tokens to canonical keys.
// Aliases (old spellings, abbreviations, airport-area names) map to the
// same key as the city itself.
var canonicalCities = map[string]string{
	"lagos":         "lagos",
	"ikeja":         "lagos",
	"lekki":         "lagos",
	"apapa":         "lagos",
	"abuja":         "abuja",
	"fct":           "abuja",
	"kano":          "kano",
	"ibadan":        "ibadan",
	"port harcourt": "port harcourt",
	"portharcourt":  "port harcourt",
	"ph":            "port harcourt",
	"kaduna":        "kaduna",
	"enugu":         "enugu",
	"benin city":    "benin city",
	"benin":         "benin city",
	"jos":           "jos",
	"ilorin":        "ilorin",
	"owerri":        "owerri",
	"calabar":       "calabar",
	"uyo":           "uyo",
	"abeokuta":      "abeokuta",
	"onitsha":       "onitsha",
	"warri":         "warri",
	"maiduguri":     "maiduguri",
	"sokoto":        "sokoto",
	"asaba":         "asaba",
	"akure":         "akure",
}

// foreignOverrides are place fragments that contain a domestic alias as
// a substring but refer to somewhere abroad. "Benin Republic" and its
// cities would otherwise word-match the "benin" alias for Benin City.
var foreignOverrides = []string{
	"benin republic",
	"republic of benin",
	"cotonou",
	"porto-novo",
	"porto novo",
}

// regionPatterns maps keyword fragments to regions, checked in order.
// Earlier entries win, so country names come before looser tokens.
var regionPatterns = []struct {
	keywords []string
	region   Region
}{
	{[]string{"nigeria"}, RegionDomestic},
	{[]string{"ghana", "accra", "togo", "lome", "benin republic", "cotonou", "senegal", "dakar", "ivory coast", "cote d'ivoire", "abidjan", "cameroon", "douala", "niger republic", "niamey"}, RegionWestAfrica},
	{[]string{"china", "shanghai", "guangzhou", "shenzhen", "beijing", "ningbo", "hong kong", "india", "mumbai", "delhi", "japan", "tokyo", "osaka", "korea", "seoul", "busan", "singapore", "malaysia", "vietnam", "thailand", "bangkok", "indonesia", "jakarta", "taiwan", "taipei"}, RegionAsia},
	{[]string{"uk", "united kingdom", "london", "manchester", "england", "germany", "hamburg", "berlin", "frankfurt", "france", "paris", "le havre", "netherlands", "rotterdam", "amsterdam", "belgium", "antwerp", "spain", "madrid", "barcelona", "italy", "milan", "rome", "genoa", "portugal", "lisbon", "poland", "europe"}, RegionEurope},
	{[]string{"usa", "united states", "america", "new york", "houston", "los angeles", "chicago", "atlanta", "miami", "canada", "toronto", "vancouver", "montreal"}, RegionNorthAmerica},
	{[]string{"uae", "dubai", "abu dhabi", "sharjah", "saudi", "jeddah", "riyadh", "qatar", "doha", "turkey", "istanbul", "israel", "lebanon", "bahrain", "kuwait", "oman", "muscat"}, RegionMiddleEast},
	{[]string{"brazil", "sao paulo", "santos", "rio de janeiro", "argentina", "buenos aires", "chile", "santiago", "colombia", "bogota", "peru", "lima"}, RegionSouthAmerica},
}

// cityCoordinates holds centroids for canonical domestic cities and a few
// major foreign hubs, keyed by canonical lowercase name.
var cityCoordinates = map[string]model.Coordinate{
	"lagos":         {Lat: 6.5244, Lon: 3.3792},
	"abuja":         {Lat: 9.0765, Lon: 7.3986},
	"kano":          {Lat: 12.0022, Lon: 8.5920},
	"ibadan":        {Lat: 7.3775, Lon: 3.9470},
	"port harcourt": {Lat: 4.8156, Lon: 7.0498},
	"kaduna":        {Lat: 10.5105, Lon: 7.4165},
	"enugu":         {Lat: 6.4584, Lon: 7.5464},
	"benin city":    {Lat: 6.3350, Lon: 5.6037},
	"jos":           {Lat: 9.8965, Lon: 8.8583},
	"ilorin":        {Lat: 8.4966, Lon: 4.5426},
	"owerri":        {Lat: 5.4836, Lon: 7.0333},
	"calabar":       {Lat: 4.9757, Lon: 8.3417},
	"uyo":           {Lat: 5.0377, Lon: 7.9128},
	"abeokuta":      {Lat: 7.1475, Lon: 3.3619},
	"onitsha":       {Lat: 6.1413, Lon: 6.8027},
	"warri":         {Lat: 5.5544, Lon: 5.7932},
	"maiduguri":     {Lat: 11.8333, Lon: 13.1500},
	"sokoto":        {Lat: 13.0059, Lon: 5.2476},
	"asaba":         {Lat: 6.1978, Lon: 6.6985},
	"akure":         {Lat: 7.2571, Lon: 5.2058},
	"accra":         {Lat: 5.6037, Lon: -0.1870},
	"london":        {Lat: 51.5074, Lon: -0.1278},
	"shanghai":      {Lat: 31.2304, Lon: 121.4737},
	"guangzhou":     {Lat: 23.1291, Lon: 113.2644},
	"new york":      {Lat: 40.7128, Lon: -74.0060},
	"dubai":         {Lat: 25.2048, Lon: 55.2708},
}

// laneDistances holds known road distances in kilometers between
// canonical domestic city pairs. Keys are "a|b" with a, b canonical.
var laneDistances = map[string]float64{
	"lagos|ibadan":         128,
	"lagos|abeokuta":       78,
	"lagos|abuja":          756,
	"lagos|benin city":     320,
	"lagos|kano":           990,
	"lagos|port harcourt":  615,
	"lagos|enugu":          555,
	"lagos|ilorin":         306,
	"lagos|warri":          391,
	"lagos|onitsha":        443,
	"abuja|kaduna":         187,
	"abuja|kano":           427,
	"abuja|jos":            287,
	"abuja|ilorin":         463,
	"abuja|enugu":          443,
	"kaduna|kano":          225,
	"port harcourt|owerri": 94,
	"port harcourt|uyo":    120,
	"port harcourt|calabar": 183,
	"enugu|onitsha":        107,
	"enugu|owerri":         113,
	"benin city|asaba":     122,
	"benin city|warri":     89,
	"onitsha|asaba":        12,
}

// normalize lowercases and trims a place string for matching.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsWord reports whether text contains token on word boundaries.
func containsWord(text, token string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], token)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(token)
		leftOK := start == 0 || !isWordChar(text[start-1])
		rightOK := end == len(text) || !isWordChar(text[end])
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// isForeignOverride reports whether the normalized place names a foreign
// locality that would otherwise word-match a domestic city alias.
func isForeignOverride(s string) bool {
	for _, token := range foreignOverrides {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// IsDomestic reports whether the place string refers to a recognized
// domestic (Nigerian) locality. Matching is case-insensitive and on
// word boundaries, so "Niger Republic" does not match "nigeria", and
// foreign localities embedding a domestic alias ("Benin Republic",
// "Cotonou, Benin") are excluded outright.
func IsDomestic(place string) bool {
	s := normalize(place)
	if s == "" || isForeignOverride(s) {
		return false
	}
	if containsWord(s, "nigeria") {
		return true
	}
	for token := range canonicalCities {
		if containsWord(s, token) {
			return true
		}
	}
	return false
}

// CanonicalCity maps a recognized domestic place string to its canonical
// lowercase key. Returns false when the place is not recognized.
func CanonicalCity(place string) (string, bool) {
	s := normalize(place)
	if s == "" || isForeignOverride(s) {
		return "", false
	}
	if canonical, ok := canonicalCities[s]; ok {
		return canonical, true
	}
	// Longest alias wins so "port harcourt" beats "ph" inside it.
	best := ""
	for token := range canonicalCities {
		if containsWord(s, token) && len(token) > len(best) {
			best = token
		}
	}
	if best != "" {
		return canonicalCities[best], true
	}
	return "", false
}

// Classify maps a place string to a broad geographic region.
// Unmatched places land in RegionUnknown.
func Classify(place string) Region {
	s := normalize(place)
	if s == "" {
		return RegionUnknown
	}
	if IsDomestic(s) {
		return RegionDomestic
	}
	for _, p := range regionPatterns {
		for _, kw := range p.keywords {
			if containsWord(s, kw) {
				return p.region
			}
		}
	}
	return RegionUnknown
}

// CityCoordinate returns the centroid of a known city, domestic or
// foreign hub. The input is matched against the canonical-city aliases
// first, then against foreign hub names directly.
func CityCoordinate(place string) (model.Coordinate, bool) {
	s := normalize(place)
	if canonical, ok := CanonicalCity(s); ok {
		c, found := cityCoordinates[canonical]
		return c, found
	}
	if c, ok := cityCoordinates[s]; ok {
		return c, true
	}
	for name, c := range cityCoordinates {
		if containsWord(s, name) {
			return c, true
		}
	}
	return model.Coordinate{}, false
}

// LaneDistanceKm returns the tabulated road distance between two
// recognized domestic cities, trying both orderings of the pair.
func LaneDistanceKm(origin, destination string) (float64, bool) {
	a, okA := CanonicalCity(origin)
	b, okB := CanonicalCity(destination)
	if !okA || !okB {
		return 0, false
	}
	if d, ok := laneDistances[a+"|"+b]; ok {
		return d, true
	}
	if d, ok := laneDistances[b+"|"+a]; ok {
		return d, true
	}
	return 0, false
}
