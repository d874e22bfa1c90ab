package guidance

import (
	"math"

	"github.com/lintang-b-s/Taxinav/pkg"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/lintang-b-s/Taxinav/pkg/util"
)

type TurnKind uint8

const (
	NO_SMOOTHING TurnKind = iota
	ARC
	PROGRESSIVE_BEND
)

func (k TurnKind) String() string {
	switch k {
	case ARC:
		return "arc"
	case PROGRESSIVE_BEND:
		return "bend"
	default:
		return "none"
	}
}

type TurnFailure uint8

const (
	TURN_OK TurnFailure = iota
	TURN_TOO_SHALLOW
	TURN_TOO_SHARP
	TURN_TANGENT_TOO_LONG
	TURN_LEG_TOO_SHORT
	TURN_DEGENERATE
)

func (f TurnFailure) String() string {
	switch f {
	case TURN_TOO_SHALLOW:
		return "turn too shallow"
	case TURN_TOO_SHARP:
		return "turn too sharp"
	case TURN_TANGENT_TOO_LONG:
		return "tangent longer than allowed for the radius"
	case TURN_LEG_TOO_SHORT:
		return "adjacent segment shorter than the tangent"
	case TURN_DEGENERATE:
		return "degenerate geometry"
	default:
		return "ok"
	}
}

// TurnLimits. bounds for a clean circular arc. angles in degree.
type TurnLimits struct {
	MinArcAngle      float64
	MaxArcAngle      float64
	MaxTangentFactor float64
	SampleAngle      float64 // angular step between two arc samples
}

func DefaultTurnLimits() TurnLimits {
	return TurnLimits{
		MinArcAngle:      pkg.DEFAULT_MIN_ARC_ANGLE,
		MaxArcAngle:      pkg.DEFAULT_MAX_ARC_ANGLE,
		MaxTangentFactor: pkg.DEFAULT_MAX_TANGENT_FACTOR,
		SampleAngle:      10,
	}
}

// Sample. a point of a smoothed turn and the heading (degree) of travel there.
type Sample struct {
	Coordinate geo.Coordinate `json:"coordinate"`
	Heading    float64        `json:"heading"`
}

/*
Turn. smoothing of the corner prev -> vertex -> next.
an ARC turn follows the circle of radius tangent to both legs, a PROGRESSIVE_BEND is a quadratic bezier
with the vertex as control point. samples run in travel order.
*/
type Turn struct {
	kind    TurnKind
	center  geo.Coordinate
	radius  float64
	angle   float64
	tangent float64
	samples []Sample
	reason  TurnFailure
}

func (t *Turn) GetKind() TurnKind {
	return t.kind
}

func (t *Turn) GetCenter() geo.Coordinate {
	return t.center
}

func (t *Turn) GetRadius() float64 {
	return t.radius
}

// GetAngle. signed turn angle at the vertex, positive = right.
func (t *Turn) GetAngle() float64 {
	return t.angle
}

// GetTangentLength. distance from the vertex to the first/last sample along the legs.
func (t *Turn) GetTangentLength() float64 {
	return t.tangent
}

func (t *Turn) GetSamples() []Sample {
	return t.samples
}

func (t *Turn) IsValid() bool {
	return t.reason == TURN_OK && len(t.samples) > 0
}

func (t *Turn) GetFailure() TurnFailure {
	return t.reason
}

func invalidTurn(kind TurnKind, angle float64, reason TurnFailure) *Turn {
	return &Turn{kind: kind, angle: angle, reason: reason}
}

// corner. the three corner points in a metric frame centered on the vertex.
type corner struct {
	proj       geo.LocalProjection
	p, v, n    geo.Point
	inLen      float64
	outLen     float64
	inBearing  float64
	outBearing float64
	angle      float64
}

func newCorner(prev, vertex, next geo.Coordinate) (corner, bool) {
	proj := geo.NewLocalProjection(vertex)
	c := corner{
		proj: proj,
		p:    proj.ToPoint(prev),
		v:    proj.ToPoint(vertex),
		n:    proj.ToPoint(next),
	}
	c.inLen = geo.Dist(c.p, c.v)
	c.outLen = geo.Dist(c.v, c.n)
	if c.inLen <= geo.EPS || c.outLen <= geo.EPS {
		return c, false
	}
	c.inBearing = geo.CompassAngle(c.p, c.v)
	c.outBearing = geo.CompassAngle(c.v, c.n)
	c.angle = geo.Turn(c.inBearing, c.outBearing)
	return c, true
}

/*
NewTurn. circular arc of radius (meter) joining the legs prev->vertex and vertex->next.

both legs are offset by radius toward the inside of the turn, their intersection is the arc center.
the tangent points sit tangent = radius*tan(|angle|/2) before and after the vertex.
the turn is invalid when |angle| is outside [MinArcAngle, MaxArcAngle], when tangent > MaxTangentFactor*radius,
or when a leg is shorter than tangent.
*/
func NewTurn(prev, vertex, next geo.Coordinate, radius float64, limits TurnLimits) *Turn {
	c, ok := newCorner(prev, vertex, next)
	if !ok || radius <= 0 {
		return invalidTurn(ARC, c.angle, TURN_DEGENERATE)
	}

	absAngle := math.Abs(c.angle)
	if absAngle < limits.MinArcAngle {
		return invalidTurn(ARC, c.angle, TURN_TOO_SHALLOW)
	}
	if absAngle > limits.MaxArcAngle {
		return invalidTurn(ARC, c.angle, TURN_TOO_SHARP)
	}

	tangent := radius * math.Tan(util.DegreeToRadians(absAngle/2))
	if tangent > limits.MaxTangentFactor*radius {
		return invalidTurn(ARC, c.angle, TURN_TANGENT_TOO_LONG)
	}
	if tangent > c.inLen || tangent > c.outLen {
		return invalidTurn(ARC, c.angle, TURN_LEG_TOO_SHORT)
	}

	side := 1.0 // right turn, center on the right of both legs
	if c.angle < 0 {
		side = -1.0
	}
	a1, a2 := geo.LineOffset(c.p, c.v, side*radius)
	b1, b2 := geo.LineOffset(c.v, c.n, side*radius)
	center, ok := geo.LineIntersect(a1, a2, b1, b2)
	if !ok {
		return invalidTurn(ARC, c.angle, TURN_DEGENERATE)
	}

	start := geo.ExtendLine(c.p, c.v, -tangent)

	step := limits.SampleAngle
	if step <= 0 {
		step = 10
	}
	n := int(math.Ceil(absAngle / step))
	if n < 2 {
		n = 2
	}

	points := geo.ArcPoints(center, radius, geo.CompassAngle(center, start), c.angle, n)
	samples := make([]Sample, 0, len(points))
	for _, pt := range points {
		samples = append(samples, Sample{
			Coordinate: c.proj.ToCoordinate(pt),
			Heading:    geo.NormalizeBearing(geo.CompassAngle(center, pt) + side*90),
		})
	}

	return &Turn{
		kind:    ARC,
		center:  c.proj.ToCoordinate(center),
		radius:  radius,
		angle:   c.angle,
		tangent: tangent,
		samples: samples,
		reason:  TURN_OK,
	}
}

/*
NewProgressiveBend. quadratic bezier from length meter before the vertex to length meter after it, with the
vertex as control point, sampled with n+1 points. invalid when a leg is shorter than length.
*/
func NewProgressiveBend(prev, vertex, next geo.Coordinate, length float64, n int) *Turn {
	c, ok := newCorner(prev, vertex, next)
	if !ok || length <= 0 {
		return invalidTurn(PROGRESSIVE_BEND, c.angle, TURN_DEGENERATE)
	}
	if length > c.inLen || length > c.outLen {
		return invalidTurn(PROGRESSIVE_BEND, c.angle, TURN_LEG_TOO_SHORT)
	}
	if n < 2 {
		n = 2
	}

	a := geo.ExtendLine(c.p, c.v, -length)
	b := geo.ExtendLine(c.n, c.v, -length)

	samples := make([]Sample, 0, n+1)
	for k := 0; k <= n; k++ {
		t := float64(k) / float64(n)
		u := 1 - t
		pt := geo.NewPoint(
			u*u*a.X+2*u*t*c.v.X+t*t*b.X,
			u*u*a.Y+2*u*t*c.v.Y+t*t*b.Y,
		)
		// derivative of the bezier gives the direction of travel
		d := geo.NewPoint(
			2*u*(c.v.X-a.X)+2*t*(b.X-c.v.X),
			2*u*(c.v.Y-a.Y)+2*t*(b.Y-c.v.Y),
		)
		samples = append(samples, Sample{
			Coordinate: c.proj.ToCoordinate(pt),
			Heading:    geo.CompassAngle(geo.NewPoint(0, 0), d),
		})
	}

	return &Turn{
		kind:    PROGRESSIVE_BEND,
		center:  vertex,
		angle:   c.angle,
		tangent: length,
		samples: samples,
		reason:  TURN_OK,
	}
}
