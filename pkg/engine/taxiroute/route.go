package taxiroute

import (
	"errors"

	"github.com/lintang-b-s/Taxinav/pkg/airport"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/engine/routing"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"go.uber.org/zap"
)

var ErrRouteNotFound = errors.New("route not found")

type Outcome uint8

const (
	NOT_SEARCHED Outcome = iota
	FOUND
	TOO_FAR_FROM_NETWORK
	NO_PATH
)

func (o Outcome) String() string {
	switch o {
	case FOUND:
		return "found"
	case TOO_FAR_FROM_NETWORK:
		return "too far from network"
	case NO_PATH:
		return "no path"
	default:
		return "not searched"
	}
}

type Algorithm string

const (
	ASTAR    Algorithm = "astar"
	DIJKSTRA Algorithm = "dijkstra"
)

/*
Request. ArrivalRunway is the runway an arriving aircraft is rolling on (nil if unknown).
UseThreshold selects the threshold of the destination runway end, otherwise its opposite end.
*/
type Request struct {
	Aircraft      airport.Aircraft
	ArrivalRunway *airport.Runway
	Destination   airport.Destination
	Movement      da.Movement
	UseStrictMode bool
	UseThreshold  bool
}

// Route. one planning attempt and, once Build ran, its derived guidance data.
type Route struct {
	planner  *Planner
	graph    *da.Graph
	request  Request
	strategy Strategy
	log      *zap.Logger

	outcome     Outcome
	algorithm   Algorithm
	source      da.Index
	destination da.Index
	vertices    []da.Index

	built             bool
	edges             []*da.Edge
	bearings          []float64
	turns             []float64
	timeRemaining     []float64
	distanceRemaining []float64
	distToNextTurn    []float64
	nextTurnIndex     []int
	smoothed          []SmoothedPoint
}

func newRoute(p *Planner, req Request, g *da.Graph, s Strategy) *Route {
	return &Route{
		planner:  p,
		graph:    g,
		request:  req,
		strategy: s,
		log:      p.log,
		outcome:  NOT_SEARCHED,
	}
}

/*
find. resolve both endpoints on the route's own graph, then A* with a Dijkstra fallback.
a route is only found with more than two vertices, a direct source -> destination hop counts as not found.
*/
func (r *Route) find() bool {
	src, ok := r.resolveSource()
	if !ok {
		r.outcome = NO_PATH
		return false
	}
	dst, ok := r.resolveDestination()
	if !ok {
		r.outcome = NO_PATH
		return false
	}
	r.source, r.destination = src, dst

	path, ok := routing.NewAStar(r.graph).ShortestPath(src, dst)
	r.algorithm = ASTAR
	if !ok {
		path, ok = routing.NewDijkstra(r.graph).ShortestPath(src, dst, da.ConnectionOptions{})
		r.algorithm = DIJKSTRA
	}

	if !ok || len(path) <= 2 {
		r.outcome = NO_PATH
		r.vertices = nil
		return false
	}

	r.vertices = path
	r.outcome = FOUND
	r.log.Debug("taxi route found", zap.String("strategy", r.strategy.String()),
		zap.String("algorithm", string(r.algorithm)), zap.Int("vertices", len(path)))
	return true
}

func (r *Route) Found() bool {
	return r.outcome == FOUND && len(r.vertices) > 2
}

func (r *Route) GetOutcome() Outcome {
	return r.outcome
}

func (r *Route) GetStrategy() Strategy {
	return r.strategy
}

func (r *Route) GetAlgorithm() Algorithm {
	return r.algorithm
}

func (r *Route) GetRequest() Request {
	return r.request
}

func (r *Route) GetGraph() *da.Graph {
	return r.graph
}

func (r *Route) GetSource() da.Index {
	return r.source
}

func (r *Route) GetDestination() da.Index {
	return r.destination
}

func (r *Route) GetVertices() []da.Index {
	return r.vertices
}

func (r *Route) GetCoordinates() []geo.Coordinate {
	coords := make([]geo.Coordinate, len(r.vertices))
	for i, v := range r.vertices {
		coords[i] = r.graph.GetVertexCoordinate(v)
	}
	return coords
}

// start. off-network point the route begins at (the aircraft).
func (r *Route) start() geo.Coordinate {
	return r.request.Aircraft.Position
}

// end. off-network point the route ends at.
func (r *Route) end() geo.Coordinate {
	return r.request.Destination.Target(r.request.UseThreshold)
}

func (r *Route) IsBuilt() bool {
	return r.built
}

func (r *Route) GetEdges() []*da.Edge {
	return r.edges
}

func (r *Route) GetBearings() []float64 {
	return r.bearings
}

// GetTurns. signed turn angle per route vertex, positive = right.
func (r *Route) GetTurns() []float64 {
	return r.turns
}

func (r *Route) GetTimeRemaining() []float64 {
	return r.timeRemaining
}

func (r *Route) GetDistanceRemaining() []float64 {
	return r.distanceRemaining
}

func (r *Route) GetDistanceToNextTurn() []float64 {
	return r.distToNextTurn
}

func (r *Route) GetNextTurnIndex() []int {
	return r.nextTurnIndex
}

func (r *Route) GetSmoothedPath() []SmoothedPoint {
	return r.smoothed
}
