package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between
// two coordinate pairs.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidCoordinate reports whether a longitude/latitude pair is present,
// finite, and inside the valid WGS84 envelope. The datasets are also
// filtered in SQL; this recheck guards against malformed stored values
// that slip past the query predicate.
func ValidCoordinate(lon, lat *float64) bool {
	if lon == nil || lat == nil {
		return false
	}
	if math.IsNaN(*lon) || math.IsNaN(*lat) || math.IsInf(*lon, 0) || math.IsInf(*lat, 0) {
		return false
	}
	return *lon >= -180 && *lon <= 180 && *lat >= -90 && *lat <= 90
}
