package taxiroute

import (
	"math"

	"github.com/lintang-b-s/Taxinav/pkg/airport"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
)

func (r *Route) inGraph(v *da.Vertex) bool {
	_, ok := r.graph.GetVertex(v.GetID())
	return ok
}

func (r *Route) originFilter(v *da.Vertex) bool {
	return v.CanBeOrigin() && r.inGraph(v)
}

func (r *Route) destinationFilter(v *da.Vertex) bool {
	return v.CanBeDestination() && r.inGraph(v)
}

// checkNetworkDistance. false when the aircraft or the destination has no usable vertex within range.
func (r *Route) checkNetworkDistance() bool {
	maxDist := r.planner.params.MaxNetworkDistance
	if _, ok := r.planner.index.Nearest(r.start(), maxDist, r.originFilter); !ok {
		return false
	}
	_, ok := r.planner.index.Nearest(r.end(), maxDist, r.destinationFilter)
	return ok
}

// ahead. true when pos lies inside the half angle cone around the aircraft heading.
func ahead(ac airport.Aircraft, pos geo.Coordinate, cone float64) bool {
	return math.Abs(geo.Turn(ac.Heading, geo.Bearing(ac.Position, pos))) <= cone
}

/*
resolveSource.

	departure: nearest vertex to the aircraft.
	arrival on a known runway: the runway exit ahead of the aircraft that is closest to the destination.
	arrival otherwise: nearest vertex ahead of the aircraft and beyond its stopping distance, else nearest vertex.
*/
func (r *Route) resolveSource() (da.Index, bool) {
	params := r.planner.params
	ac := r.request.Aircraft

	if r.request.Movement == da.MOVEMENT_ARRIVAL {
		if v, ok := r.runwayExit(); ok {
			return v, true
		}

		cands := r.planner.index.SearchWithinRadius(ac.Position, params.MaxNetworkDistance, r.originFilter)
		minAhead := ac.GroundSpeed * params.MinAheadSeconds
		for _, c := range cands {
			if c.GetDistance() >= minAhead && ahead(ac, c.GetVertex().GetCoordinate(), params.HeadingCone) {
				return c.GetID(), true
			}
		}
		if len(cands) > 0 {
			return cands[0].GetID(), true
		}
		return 0, false
	}

	c, ok := r.planner.index.Nearest(ac.Position, params.MaxNetworkDistance, r.originFilter)
	if !ok {
		return 0, false
	}
	return c.GetID(), true
}

/*
runwayExit. exit of the arrival runway used as route source, see resolveSource.
exits farther from the aircraft than the runway length plus MaxNetworkDistance cannot lie on this runway and are skipped.
*/
func (r *Route) runwayExit() (da.Index, bool) {
	rwy := r.request.ArrivalRunway
	if rwy == nil || len(rwy.Exits) == 0 {
		return 0, false
	}
	target := r.end()
	ac := r.request.Aircraft
	reach := rwy.Length() + r.planner.params.MaxNetworkDistance

	var (
		best     da.Index
		bestDist = math.Inf(1)
		found    bool
	)
	for _, id := range rwy.Exits {
		v, ok := r.graph.GetVertex(id)
		if !ok || !v.CanBeOrigin() {
			continue
		}
		if !ahead(ac, v.GetCoordinate(), 90) || geo.DistanceMeters(ac.Position, v.GetCoordinate()) > reach {
			continue
		}
		d := geo.DistanceMeters(v.GetCoordinate(), target)
		if d < bestDist || (d == bestDist && id < best) {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}

func (r *Route) resolveDestination() (da.Index, bool) {
	c, ok := r.planner.index.Nearest(r.end(), r.planner.params.MaxNetworkDistance, r.destinationFilter)
	if !ok {
		return 0, false
	}
	return c.GetID(), true
}
