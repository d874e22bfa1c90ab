package taxiroute

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"go.uber.org/zap"
)

// boundaries closer than this to the first/last vertex have no meaningful turn.
const minBoundaryLeg = 1.0

/*
Build. derive the guidance data of a found route for taxiSpeed (m/s, <= 0 uses Params.TaxiSpeed), in order:
edges and bearings per hop, turn angle per vertex, time remaining, distance remaining, distance to the next
significant turn and the smoothed path.
*/
func (r *Route) Build(taxiSpeed float64) error {
	if !r.Found() {
		return fmt.Errorf("build route (%s): %w", r.outcome, ErrRouteNotFound)
	}
	if taxiSpeed <= 0 {
		taxiSpeed = r.planner.params.TaxiSpeed
	}

	if err := r.buildEdges(); err != nil {
		return err
	}
	r.buildTurns()
	r.buildTimeRemaining(taxiSpeed)
	r.buildDistanceRemaining()
	r.buildNextTurn()
	r.buildSmoothedPath()

	r.built = true
	r.log.Debug("taxi route built", zap.Int("vertices", len(r.vertices)),
		zap.Float64("distance", r.distanceRemaining[0]), zap.Float64("time", r.timeRemaining[0]),
		zap.Int("smoothedPoints", len(r.smoothed)))
	return nil
}

func (r *Route) hopLength(i int) float64 {
	return geo.DistanceMeters(r.graph.GetVertexCoordinate(r.vertices[i]),
		r.graph.GetVertexCoordinate(r.vertices[i+1]))
}

func (r *Route) buildEdges() error {
	n := len(r.vertices)
	r.edges = r.edges[:0]
	r.bearings = make([]float64, 0, n-1)
	for i := 0; i+1 < n; i++ {
		e := r.graph.GetEdge(r.vertices[i], r.vertices[i+1])
		if e == nil {
			return fmt.Errorf("no edge between route vertices %d and %d", r.vertices[i], r.vertices[i+1])
		}
		r.edges = append(r.edges, e)
		r.bearings = append(r.bearings, geo.Bearing(r.graph.GetVertexCoordinate(r.vertices[i]),
			r.graph.GetVertexCoordinate(r.vertices[i+1])))
	}
	return nil
}

// buildTurns. interior vertices turn from the incoming to the outgoing hop, the first and last vertex
// turn from/to the off-network start/end point.
func (r *Route) buildTurns() {
	n := len(r.vertices)
	r.turns = make([]float64, n)

	first := r.graph.GetVertexCoordinate(r.vertices[0])
	if geo.DistanceMeters(r.start(), first) >= minBoundaryLeg {
		r.turns[0] = geo.Turn(geo.Bearing(r.start(), first), r.bearings[0])
	}
	for i := 1; i < n-1; i++ {
		r.turns[i] = geo.Turn(r.bearings[i-1], r.bearings[i])
	}
	last := r.graph.GetVertexCoordinate(r.vertices[n-1])
	if geo.DistanceMeters(last, r.end()) >= minBoundaryLeg {
		r.turns[n-1] = geo.Turn(r.bearings[n-2], geo.Bearing(last, r.end()))
	}
}

// buildTimeRemaining. backward from the destination, large interior turns cost LargeTurnPenalty seconds.
func (r *Route) buildTimeRemaining(taxiSpeed float64) {
	n := len(r.vertices)
	params := r.planner.params
	r.timeRemaining = make([]float64, n)
	for i := n - 2; i >= 0; i-- {
		t := r.timeRemaining[i+1] + r.hopLength(i)/taxiSpeed
		if i+1 < n-1 && math.Abs(r.turns[i+1]) > params.LargeTurnAngle {
			t += params.LargeTurnPenalty
		}
		r.timeRemaining[i] = t
	}
}

func (r *Route) buildDistanceRemaining() {
	n := len(r.vertices)
	r.distanceRemaining = make([]float64, n)
	for i := n - 2; i >= 0; i-- {
		r.distanceRemaining[i] = r.distanceRemaining[i+1] + r.hopLength(i)
	}
}

/*
buildNextTurn. walking backward, the distance resets to zero at every vertex whose turn exceeds
SmallTurnAngle, which then becomes the next turn of the vertices before it.
the destination is its own next turn.
*/
func (r *Route) buildNextTurn() {
	n := len(r.vertices)
	small := r.planner.params.SmallTurnAngle
	r.distToNextTurn = make([]float64, n)
	r.nextTurnIndex = make([]int, n)

	r.nextTurnIndex[n-1] = n - 1
	for i := n - 2; i >= 0; i-- {
		if math.Abs(r.turns[i]) > small {
			r.distToNextTurn[i] = 0
			r.nextTurnIndex[i] = i
			continue
		}
		r.distToNextTurn[i] = r.distToNextTurn[i+1] + r.hopLength(i)
		r.nextTurnIndex[i] = r.nextTurnIndex[i+1]
	}
}

// TotalDistance. meter along the route vertices, 0 before Build.
func (r *Route) TotalDistance() float64 {
	if len(r.distanceRemaining) == 0 {
		return 0
	}
	return r.distanceRemaining[0]
}

// TotalTime. second, including large turn penalties, 0 before Build.
func (r *Route) TotalTime() float64 {
	if len(r.timeRemaining) == 0 {
		return 0
	}
	return r.timeRemaining[0]
}
