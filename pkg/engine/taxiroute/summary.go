package taxiroute

import (
	"strings"

	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/lintang-b-s/Taxinav/pkg/guidance"
)

func edgeLabel(name string, runway bool) string {
	if runway {
		return "RWY " + name
	}
	return name
}

// Summary. taxiway names along the route, consecutive repeats and unnamed segments dropped, e.g. "A B RWY 09/27 C".
func (r *Route) Summary() string {
	names := make([]string, 0, len(r.edges))
	last := ""
	for _, e := range r.routeEdges() {
		if e.GetName() == "" {
			continue
		}
		label := edgeLabel(e.GetName(), e.IsRunway())
		if label == last {
			continue
		}
		names = append(names, label)
		last = label
	}
	return strings.Join(names, " ")
}

// HoldShortIndices. route vertices where the aircraft leaves an unrestricted segment for an active one.
func (r *Route) HoldShortIndices() []int {
	edges := r.routeEdges()
	holds := make([]int, 0)
	for i := 1; i < len(edges); i++ {
		if edges[i].IsActive() && !edges[i-1].IsActive() {
			holds = append(holds, i)
		}
	}
	return holds
}

// Instructions. step by step taxi instructions, Build must have run.
func (r *Route) Instructions() []guidance.Instruction {
	if !r.built {
		return nil
	}
	legs := make([]guidance.Leg, len(r.edges))
	for i, e := range r.edges {
		legs[i] = guidance.Leg{
			Name:     e.GetName(),
			IsRunway: e.IsRunway(),
			Active:   e.IsActive(),
			Length:   r.hopLength(i),
			Turn:     r.turns[i],
		}
	}
	return guidance.NewDirectionBuilder().GetDrivingDirections(legs)
}

// Polyline. smoothed path (route vertices before Build) in encoded polyline format.
func (r *Route) Polyline() string {
	if !r.built {
		return geo.PolylineFromCoords(r.GetCoordinates())
	}
	coords := make([]geo.Coordinate, len(r.smoothed))
	for i, p := range r.smoothed {
		coords[i] = p.Coordinate
	}
	return geo.PolylineFromCoords(coords)
}

// routeEdges. edges per hop, looked up on demand before Build.
func (r *Route) routeEdges() []*da.Edge {
	if r.built {
		return r.edges
	}
	edges := make([]*da.Edge, 0, len(r.vertices))
	for i := 0; i+1 < len(r.vertices); i++ {
		if e := r.graph.GetEdge(r.vertices[i], r.vertices[i+1]); e != nil {
			edges = append(edges, e)
		}
	}
	return edges
}
