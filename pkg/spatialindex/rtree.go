package spatialindex

import (
	"math"
	"sort"

	"github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. r-tree over the vertices of a taxiway graph, leaves are points (lon,lat).
type Rtree struct {
	tr    *rtree.RTreeG[datastructure.Index]
	graph *datastructure.Graph
}

// Candidate. a vertex found by a radius search and its haversine distance (meter) from the query point.
type Candidate struct {
	vertex   *datastructure.Vertex
	distance float64
}

func (c Candidate) GetVertex() *datastructure.Vertex {
	return c.vertex
}

func (c Candidate) GetID() datastructure.Index {
	return c.vertex.GetID()
}

func (c Candidate) GetDistance() float64 {
	return c.distance
}

// VertexFilter. return false to skip a vertex.
type VertexFilter func(v *datastructure.Vertex) bool

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. insert every vertex of graph. the graph must not change afterwards.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("Building R-tree spatial index...", zap.Int("vertices", graph.NumberOfVertices()))
	rt.graph = graph
	graph.ForVertices(func(v *datastructure.Vertex) {
		p := [2]float64{v.GetLon(), v.GetLat()}
		rt.tr.Insert(p, p, v.GetID())
	})
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// queryBox. bounding box (lon,lat) that contains the circle of radius meter around q.
func queryBox(q geo.Coordinate, radius float64) ([2]float64, [2]float64) {
	north := geo.DestinationMeters(q, 0, radius)
	south := geo.DestinationMeters(q, 180, radius)
	east := geo.DestinationMeters(q, 90, radius)
	west := geo.DestinationMeters(q, 270, radius)

	// east/west points sit on a great circle, which bends towards the pole. widen a bit.
	dLon := math.Max(math.Abs(east.Lon-q.Lon), math.Abs(q.Lon-west.Lon)) * 1.01
	return [2]float64{q.Lon - dLon, south.Lat}, [2]float64{q.Lon + dLon, north.Lat}
}

/*
SearchWithinRadius. every vertex within radius meter of q that passes filter (nil = all), ordered by
distance, ties by vertex id.
*/
func (rt *Rtree) SearchWithinRadius(q geo.Coordinate, radius float64, filter VertexFilter) []Candidate {
	if rt.graph == nil || radius < 0 {
		return nil
	}
	lo, hi := queryBox(q, radius)

	results := make([]Candidate, 0, 16)
	rt.tr.Search(lo, hi,
		func(_, _ [2]float64, id datastructure.Index) bool {
			v, ok := rt.graph.GetVertex(id)
			if !ok {
				return true
			}
			if filter != nil && !filter(v) {
				return true
			}
			d := geo.DistanceMeters(q, v.GetCoordinate())
			if d <= radius {
				results = append(results, Candidate{vertex: v, distance: d})
			}
			return true
		})

	sort.Slice(results, func(i, j int) bool {
		if results[i].distance != results[j].distance {
			return results[i].distance < results[j].distance
		}
		return results[i].GetID() < results[j].GetID()
	})
	return results
}

// Nearest. closest vertex to q within radius meter that passes filter.
func (rt *Rtree) Nearest(q geo.Coordinate, radius float64, filter VertexFilter) (Candidate, bool) {
	cands := rt.SearchWithinRadius(q, radius, filter)
	if len(cands) == 0 {
		return Candidate{}, false
	}
	return cands[0], true
}
