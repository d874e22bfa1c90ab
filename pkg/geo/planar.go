package geo

import (
	"math"

	"github.com/lintang-b-s/Taxinav/pkg/util"
)

// locally flat geometry. at airport scale (< few km) treating the surface as a plane is good enough.

const (
	EPS = 1e-9
)

type Point struct {
	X, Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Point. lon as x, lat as y.
func (c Coordinate) Point() Point {
	return Point{X: c.Lon, Y: c.Lat}
}

func (p Point) Coordinate() Coordinate {
	return NewCoordinate(p.Y, p.X)
}

func (p Point) add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) multConst(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

func (p Point) norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// cross product of two vectors a and b
func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func Dist(p, q Point) float64 {
	return q.sub(p).norm()
}

/*
LineIntersect. intersection point of the infinite lines (a1,a2) and (b1,b2).
ok is false when the lines are parallel (or one of them is degenerate).
*/
func LineIntersect(a1, a2, b1, b2 Point) (Point, bool) {
	r := a2.sub(a1)
	s := b2.sub(b1)
	denom := cross(r, s)
	if math.Abs(denom) <= EPS*math.Max(r.norm()*s.norm(), 1) {
		return Point{}, false
	}
	t := cross(b1.sub(a1), s) / denom
	return a1.add(r.multConst(t)), true
}

// SegmentsIntersect. check wether line segments (a1,a2) and (b1,b2) intersect.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(a2.sub(a1), b1.sub(a1))
	d2 := cross(a2.sub(a1), b2.sub(a1))
	d3 := cross(b2.sub(b1), a1.sub(b1))
	d4 := cross(b2.sub(b1), a2.sub(b1))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

/*
LineOffset. shift the line (a,b) sideways by dist. positive dist shifts to the right of
the a->b direction, negative to the left (x = east, y = north).
*/
func LineOffset(a, b Point, dist float64) (Point, Point) {
	d := b.sub(a)
	l := d.norm()
	if l <= EPS {
		return a, b
	}
	n := Point{d.Y / l, -d.X / l}.multConst(dist)
	return a.add(n), b.add(n)
}

// ExtendLine. move b along the a->b direction by length. negative length shortens the line.
func ExtendLine(a, b Point, length float64) Point {
	d := b.sub(a)
	l := d.norm()
	if l <= EPS {
		return b
	}
	return b.add(d.multConst(length / l))
}

// PointInPolygon. ray casting parity test, polygon does not need to be closed.
func PointInPolygon(p Point, polygon []Point) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

/*
ArcPoints. n+1 points on the circle (center, radius), starting at compass angle startAngle
(degree, measured from the center) and sweeping sweep degree (positive = clockwise).
*/
func ArcPoints(center Point, radius, startAngle, sweep float64, n int) []Point {
	if n < 1 {
		n = 1
	}
	points := make([]Point, 0, n+1)
	for k := 0; k <= n; k++ {
		a := util.DegreeToRadians(startAngle + sweep*float64(k)/float64(n))
		points = append(points, Point{
			X: center.X + radius*math.Sin(a),
			Y: center.Y + radius*math.Cos(a),
		})
	}
	return points
}

// CompassAngle. compass angle (degree, [0,360)) of the direction from p to q.
func CompassAngle(p, q Point) float64 {
	return NormalizeBearing(util.RadiansToDegree(math.Atan2(q.X-p.X, q.Y-p.Y)))
}

/*
LocalProjection. equirectangular projection around origin, in meter. x = east, y = north.
*/
type LocalProjection struct {
	origin Coordinate
	cosLat float64
}

func NewLocalProjection(origin Coordinate) LocalProjection {
	return LocalProjection{
		origin: origin,
		cosLat: math.Cos(util.DegreeToRadians(origin.Lat)),
	}
}

func (lp LocalProjection) ToPoint(c Coordinate) Point {
	return Point{
		X: util.DegreeToRadians(c.Lon-lp.origin.Lon) * lp.cosLat * EarthRadiusM,
		Y: util.DegreeToRadians(c.Lat-lp.origin.Lat) * EarthRadiusM,
	}
}

func (lp LocalProjection) ToCoordinate(p Point) Coordinate {
	return NewCoordinate(
		lp.origin.Lat+util.RadiansToDegree(p.Y/EarthRadiusM),
		lp.origin.Lon+util.RadiansToDegree(p.X/(EarthRadiusM*lp.cosLat)),
	)
}
