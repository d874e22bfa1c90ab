package geo

import (
	"math"

	"github.com/lintang-b-s/Taxinav/pkg/util"
)

/*
BearingTo. initial bearing for edge (p1,p2), in degree [0,360).
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {

	dLon := util.DegreeToRadians(p2Lon - p1Lon)

	lat1 := util.DegreeToRadians(p1Lat)
	lat2 := util.DegreeToRadians(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)
	if brng >= 360.0 {
		brng = 0
	}

	return brng
}

func Bearing(p, q Coordinate) float64 {
	return BearingTo(p.Lat, p.Lon, q.Lat, q.Lon)
}

/*
Turn. signed minimal difference between an incoming and an outgoing bearing, in (-180°, 180°].
positive = right turn (clockwise), negative = left turn.

	bearingIn = 350°, bearingOut = 10°  -> +20° (right)
	bearingIn = 10°,  bearingOut = 340° -> -30° (left)
*/
func Turn(bearingIn, bearingOut float64) float64 {
	d := math.Mod(bearingOut-bearingIn, 360.0)
	if d > 180.0 {
		d -= 360.0
	} else if d <= -180.0 {
		d += 360.0
	}
	return d
}

// NormalizeBearing. map any angle in degree to [0,360).
func NormalizeBearing(b float64) float64 {
	b = math.Mod(b, 360.0)
	if b < 0 {
		b += 360.0
	}
	return b
}
