package metadata

import "math"

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

// DistanceKm returns the haversine great-circle distance between two points.
func DistanceKm(lon1, lat1, lon2, lat2 float64) float64 {
	phi1, phi2 := toRad(lat1), toRad(lat2)
	dPhi := toRad(lat2 - lat1)
	dLambda := toRad(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// Destination returns the point reached travelling distanceKm from (lon, lat)
// along the initial bearing (degrees clockwise from north).
func Destination(lon, lat, bearingDeg, distanceKm float64) (float64, float64) {
	delta := distanceKm / EarthRadiusKm
	theta := toRad(bearingDeg)
	phi1, lambda1 := toRad(lat), toRad(lon)

	phi2 := math.Asin(math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta))
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*math.Sin(phi2),
	)
	// normalise to [-180, 180)
	lon2 := math.Mod(toDeg(lambda2)+540, 360) - 180
	return lon2, toDeg(phi2)
}
