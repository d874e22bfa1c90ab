package guidance

import (
	"math"
	"testing"

	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vertex = geo.NewCoordinate(51.47, -0.45)

// cornerPoints. prev 200 m before vertex arriving with heading in, next 200 m after it leaving with heading out.
func cornerPoints(in, out, legLen float64) (geo.Coordinate, geo.Coordinate) {
	prev := geo.DestinationMeters(vertex, in+180, legLen)
	next := geo.DestinationMeters(vertex, out, legLen)
	return prev, next
}

func TestClassifyTurn(t *testing.T) {
	tests := []struct {
		angle float64
		want  TurnDirection
	}{
		{0, CONTINUE},
		{-11, CONTINUE},
		{20, TURN_SLIGHT_RIGHT},
		{-20, TURN_SLIGHT_LEFT},
		{90, TURN_RIGHT},
		{-90, TURN_LEFT},
		{130, TURN_SHARP_RIGHT},
		{-130, TURN_SHARP_LEFT},
		{180, U_TURN},
	}
	for _, tt := range tests {
		got := ClassifyTurn(tt.angle)
		assert.Equal(t, tt.want, got, "angle %v", tt.angle)
	}
	assert.True(t, TURN_SHARP_LEFT.IsLeft())
	assert.True(t, TURN_SLIGHT_RIGHT.IsRight())
	assert.False(t, CONTINUE.IsLeft())
}

func TestArcTurn(t *testing.T) {
	tests := []struct {
		name    string
		in, out float64
		angle   float64
	}{
		{"right 90", 0, 90, 90},
		{"left 90", 0, 270, -90},
		{"right 45", 30, 75, 45},
		{"left 120", 200, 80, -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := cornerPoints(tt.in, tt.out, 200)
			turn := NewTurn(prev, vertex, next, 25, DefaultTurnLimits())
			require.True(t, turn.IsValid(), turn.GetFailure().String())
			assert.Equal(t, ARC, turn.GetKind())
			assert.InDelta(t, tt.angle, turn.GetAngle(), 0.5)

			samples := turn.GetSamples()
			require.GreaterOrEqual(t, len(samples), 3)
			first, last := samples[0], samples[len(samples)-1]

			// arc ends lie on the incident edges
			assert.Less(t, geo.PointLinePerpendicularDistance(prev, vertex, first.Coordinate), 0.5)
			assert.Less(t, geo.PointLinePerpendicularDistance(vertex, next, last.Coordinate), 0.5)

			wantTangent := 25 * math.Tan(math.Abs(tt.angle)*math.Pi/360)
			assert.InDelta(t, wantTangent, turn.GetTangentLength(), 0.5)
			assert.InDelta(t, wantTangent, geo.DistanceMeters(vertex, first.Coordinate), 0.5)
			assert.InDelta(t, wantTangent, geo.DistanceMeters(vertex, last.Coordinate), 0.5)

			// every sample sits on the circle
			for _, s := range samples {
				assert.InDelta(t, 25, geo.DistanceMeters(turn.GetCenter(), s.Coordinate), 0.5)
			}

			assert.InDelta(t, 0, geo.Turn(tt.in, first.Heading), 1)
			assert.InDelta(t, 0, geo.Turn(tt.out, last.Heading), 1)
		})
	}
}

func TestArcTurnInvalid(t *testing.T) {
	tests := []struct {
		name    string
		in, out float64
		legLen  float64
		radius  float64
		want    TurnFailure
	}{
		{"too shallow", 0, 5, 200, 25, TURN_TOO_SHALLOW},
		{"too sharp", 0, 170, 200, 25, TURN_TOO_SHARP},
		{"tangent too long", 0, 145, 200, 25, TURN_TANGENT_TOO_LONG},
		{"leg too short", 0, 90, 20, 25, TURN_LEG_TOO_SHORT},
		{"no radius", 0, 90, 200, 0, TURN_DEGENERATE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := cornerPoints(tt.in, tt.out, tt.legLen)
			turn := NewTurn(prev, vertex, next, tt.radius, DefaultTurnLimits())
			assert.False(t, turn.IsValid())
			assert.Equal(t, tt.want, turn.GetFailure())
			assert.Empty(t, turn.GetSamples())
		})
	}
}

func TestProgressiveBend(t *testing.T) {
	prev, next := cornerPoints(0, 160, 30)
	bend := NewProgressiveBend(prev, vertex, next, 10, 6)
	require.True(t, bend.IsValid())
	assert.Equal(t, PROGRESSIVE_BEND, bend.GetKind())

	samples := bend.GetSamples()
	require.Len(t, samples, 7)
	assert.InDelta(t, 10, geo.DistanceMeters(vertex, samples[0].Coordinate), 0.1)
	assert.InDelta(t, 10, geo.DistanceMeters(vertex, samples[6].Coordinate), 0.1)
	assert.Less(t, geo.PointLinePerpendicularDistance(prev, vertex, samples[0].Coordinate), 0.1)
	assert.Less(t, geo.PointLinePerpendicularDistance(vertex, next, samples[6].Coordinate), 0.1)
	assert.InDelta(t, 0, geo.Turn(0, samples[0].Heading), 1)
	assert.InDelta(t, 0, geo.Turn(160, samples[6].Heading), 1)

	assert.False(t, NewProgressiveBend(prev, vertex, next, 40, 6).IsValid())
	assert.False(t, NewProgressiveBend(prev, vertex, next, 0, 6).IsValid())
}

func TestDrivingDirections(t *testing.T) {
	legs := []Leg{
		{Name: "A", Length: 100},
		{Name: "A", Length: 50, Turn: 3},
		{Name: "", Length: 10, Turn: 2},
		{Name: "B", Length: 200, Turn: -88},
		{Name: "09/27", IsRunway: true, Active: true, Length: 60, Turn: 1},
		{Name: "C", Length: 80, Turn: 35},
	}

	got := NewDirectionBuilder().GetDrivingDirections(legs)
	require.Len(t, got, 4)

	assert.Equal(t, "A", got[0].Taxiway)
	assert.InDelta(t, 160, got[0].Distance, 1e-9)
	assert.Equal(t, "taxi via A for 160 m", got[0].Text)

	assert.Equal(t, TURN_LEFT, got[1].Direction)
	assert.Equal(t, 3, got[1].RouteIndex)
	assert.Equal(t, "turn left onto B for 200 m", got[1].Text)

	assert.True(t, got[2].HoldShort)
	assert.Equal(t, "hold short of runway 09/27, then cross runway 09/27 for 60 m", got[2].Text)

	assert.Equal(t, "turn slight right onto C for 80 m", got[3].Text)
}
