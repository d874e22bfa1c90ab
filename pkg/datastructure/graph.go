package datastructure

import (
	"sort"

	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"go.uber.org/zap"
)

type Index uint32

type VertexUsage uint8

const (
	JUNCTION VertexUsage = iota
	DESTINATION_ONLY
	ORIGIN_ONLY
	BOTH
)

func (u VertexUsage) String() string {
	switch u {
	case DESTINATION_ONLY:
		return "dest"
	case ORIGIN_ONLY:
		return "init"
	case BOTH:
		return "both"
	default:
		return "junc"
	}
}

func ParseVertexUsage(s string) VertexUsage {
	switch s {
	case "dest":
		return DESTINATION_ONLY
	case "init":
		return ORIGIN_ONLY
	case "both":
		return BOTH
	default:
		return JUNCTION
	}
}

type Vertex struct {
	id        Index
	coord     geo.Coordinate
	usage     VertexUsage
	name      string
	adjacency map[Index]float64 // neighbor vertex id -> edge cost (meter)
}

func NewVertex(id Index, coord geo.Coordinate, usage VertexUsage, name string) *Vertex {
	return &Vertex{
		id:        id,
		coord:     coord,
		usage:     usage,
		name:      name,
		adjacency: make(map[Index]float64),
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetCoordinate() geo.Coordinate {
	return v.coord
}

func (v *Vertex) GetLat() float64 {
	return v.coord.Lat
}

func (v *Vertex) GetLon() float64 {
	return v.coord.Lon
}

func (v *Vertex) GetUsage() VertexUsage {
	return v.usage
}

func (v *Vertex) GetName() string {
	return v.name
}

func (v *Vertex) GetAdjacency() map[Index]float64 {
	return v.adjacency
}

func (v *Vertex) CanBeOrigin() bool {
	return v.usage != DESTINATION_ONLY
}

func (v *Vertex) CanBeDestination() bool {
	return v.usage != ORIGIN_ONLY
}

type edgeKey struct {
	start, end Index
}

// Graph. taxiway/runway network of one airport.
// must be fully built before the first search, searches only read it.
type Graph struct {
	vertices  map[Index]*Vertex
	edges     []*Edge
	edgeIndex map[edgeKey][]*Edge // parallel edges kept in insertion order

	hasWidthCodes bool
	hasOneway     bool
	hasRunways    bool

	log *zap.Logger
}

func NewGraph(log *zap.Logger) *Graph {
	if log == nil {
		log = zap.NewNop()
	}
	return &Graph{
		vertices:  make(map[Index]*Vertex),
		edges:     make([]*Edge, 0),
		edgeIndex: make(map[edgeKey][]*Edge),
		log:       log,
	}
}

func (g *Graph) Logger() *zap.Logger {
	return g.log
}

// AddVertex. insert a vertex, an existing id is overwritten (last write wins).
func (g *Graph) AddVertex(id Index, coord geo.Coordinate, usage VertexUsage, name string) *Vertex {
	v := NewVertex(id, coord, usage, name)
	g.vertices[id] = v
	return v
}

/*
AddEdge. append e and install adjacency (both directions for twoway edges).
an edge with a missing endpoint is logged and dropped, so one broken record does not abort loading the
whole network. a non positive cost is replaced by the geodesic length between the endpoints.
*/
func (g *Graph) AddEdge(e *Edge) bool {
	start, okStart := g.vertices[e.start]
	end, okEnd := g.vertices[e.end]
	if !okStart || !okEnd {
		g.log.Error("edge references a missing vertex, edge dropped",
			zap.Uint32("start", uint32(e.start)), zap.Uint32("end", uint32(e.end)),
			zap.Bool("startExists", okStart), zap.Bool("endExists", okEnd),
			zap.String("name", e.name))
		return false
	}

	if e.cost <= 0 {
		e.cost = geo.DistanceMeters(start.coord, end.coord)
	}

	g.edges = append(g.edges, e)
	key := edgeKey{e.start, e.end}
	g.edgeIndex[key] = append(g.edgeIndex[key], e)

	// parallel edges: the adjacency keeps the cheapest one
	if c, ok := start.adjacency[e.end]; !ok || e.cost < c {
		start.adjacency[e.end] = e.cost
	}
	if e.direction == TWOWAY {
		if c, ok := end.adjacency[e.start]; !ok || e.cost < c {
			end.adjacency[e.start] = e.cost
		}
	}

	if e.widthCode != NO_WIDTH_CODE {
		g.hasWidthCodes = true
	}
	if e.direction == ONEWAY {
		g.hasOneway = true
	}
	if e.usage == RUNWAY {
		g.hasRunways = true
	}
	return true
}

/*
GetEdge. cheapest edge with (start,end) == (src,dst) or a twoway edge with (start,end) == (dst,src).
nil otherwise.
*/
func (g *Graph) GetEdge(src, dst Index) *Edge {
	return g.GetEdgeWith(src, dst, ConnectionOptions{})
}

// GetEdgeWith. like GetEdge, but only among the parallel edges src->dst that pass opts.
func (g *Graph) GetEdgeWith(src, dst Index, opts ConnectionOptions) *Edge {
	var best *Edge
	consider := func(e *Edge) {
		if !opts.accepts(e) {
			return
		}
		if best == nil || e.cost < best.cost {
			best = e
		}
	}
	for _, e := range g.edgeIndex[edgeKey{src, dst}] {
		consider(e)
	}
	if src != dst {
		for _, e := range g.edgeIndex[edgeKey{dst, src}] {
			if e.direction == TWOWAY {
				consider(e)
			}
		}
	}
	return best
}

// ConnectionOptions. zero value = unconstrained.
type ConnectionOptions struct {
	TaxiwayOnly  bool
	MinWidthCode *WidthCode
}

func WithMinWidthCode(code WidthCode) ConnectionOptions {
	return ConnectionOptions{MinWidthCode: &code}
}

func (opts ConnectionOptions) accepts(e *Edge) bool {
	if opts.TaxiwayOnly && e.usage == RUNWAY {
		return false
	}
	if opts.MinWidthCode != nil && !e.AcceptsWidth(*opts.MinWidthCode) {
		return false
	}
	return true
}

// GetConnections. neighbor ids of v reachable through an edge that passes opts, in ascending id order.
func (g *Graph) GetConnections(v Index, opts ConnectionOptions) []Index {
	vertex, ok := g.vertices[v]
	if !ok {
		return nil
	}
	conns := make([]Index, 0, len(vertex.adjacency))
	for u := range vertex.adjacency {
		if g.GetEdgeWith(v, u, opts) == nil {
			continue
		}
		conns = append(conns, u)
	}
	sort.Slice(conns, func(i, j int) bool {
		return conns[i] < conns[j]
	})
	return conns
}

// GetCost. adjacency cost of hop u->v (cheapest parallel edge), ok false if v is not a neighbor of u.
func (g *Graph) GetCost(u, v Index) (float64, bool) {
	vertex, ok := g.vertices[u]
	if !ok {
		return 0, false
	}
	c, ok := vertex.adjacency[v]
	return c, ok
}

// GetCostWith. cost of the cheapest edge u->v that passes opts.
func (g *Graph) GetCostWith(u, v Index, opts ConnectionOptions) (float64, bool) {
	e := g.GetEdgeWith(u, v, opts)
	if e == nil {
		return 0, false
	}
	return e.cost, true
}

func (g *Graph) GetVertex(id Index) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

func (g *Graph) GetVertexCoordinate(id Index) geo.Coordinate {
	return g.vertices[id].coord
}

// VertexIDs. every vertex id in ascending order.
func (g *Graph) VertexIDs() []Index {
	ids := make([]Index, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}

func (g *Graph) ForVertices(handle func(v *Vertex)) {
	for _, id := range g.VertexIDs() {
		handle(g.vertices[id])
	}
}

func (g *Graph) GetEdges() []*Edge {
	return g.edges
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) HasWidthCodes() bool {
	return g.hasWidthCodes
}

func (g *Graph) HasOneway() bool {
	return g.hasOneway
}

func (g *Graph) HasRunways() bool {
	return g.hasRunways
}
