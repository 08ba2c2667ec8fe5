package utils

import "math"

// earthRadiusMiles matches the radius used by the city's reference
// implementation so computed distances agree exactly.
const earthRadiusMiles = 3956.0

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Haversine returns the great-circle distance in miles between two
// latitude/longitude pairs given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1 = degreesToRadians(lat1)
	lon1 = degreesToRadians(lon1)
	lat2 = degreesToRadians(lat2)
	lon2 = degreesToRadians(lon2)

	dLon := lon2 - lon1
	dLat := lat2 - lat1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * earthRadiusMiles
}
