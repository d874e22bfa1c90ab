package taxiroute

import (
	"math"

	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/lintang-b-s/Taxinav/pkg/guidance"
	"github.com/lintang-b-s/Taxinav/pkg/util"
)

// turns flatter than this keep the bare vertex.
const straightTurn = 0.5

/*
SmoothedPoint. a point of the smoothed route. Interval is the route hop (vertices Interval and Interval+1)
the point belongs to, in [0, len(vertices)-2].
*/
type SmoothedPoint struct {
	Coordinate geo.Coordinate    `json:"coordinate"`
	Heading    float64           `json:"heading"`
	Interval   int               `json:"interval"`
	Kind       guidance.TurnKind `json:"kind"`
}

/*
buildSmoothedPath. every interior vertex is replaced by a circular arc of TurnRadius, or by a progressive bend
of min(shorter adjacent hop / 2, MaxBendLength) when the arc is not possible, or kept as is.
the corner legs end at the hop midpoints (route ends excepted) so two neighbouring turns never overlap.
arc points before the vertex belong to the incoming hop, the rest to the outgoing hop.
*/
func (r *Route) buildSmoothedPath() {
	n := len(r.vertices)
	params := r.planner.params
	coords := r.GetCoordinates()

	r.smoothed = make([]SmoothedPoint, 0, n*4)
	r.smoothed = append(r.smoothed, SmoothedPoint{
		Coordinate: coords[0],
		Heading:    r.bearings[0],
		Interval:   0,
		Kind:       guidance.NO_SMOOTHING,
	})

	for i := 1; i < n-1; i++ {
		prev := coords[i-1]
		if i-1 > 0 {
			prev = geo.MidPoint(coords[i-1], coords[i])
		}
		next := coords[i+1]
		if i+1 < n-1 {
			next = geo.MidPoint(coords[i], coords[i+1])
		}

		turn := r.smoothTurn(prev, coords[i], next, math.Min(r.hopLength(i-1), r.hopLength(i)), params)
		if turn == nil {
			r.smoothed = append(r.smoothed, SmoothedPoint{
				Coordinate: coords[i],
				Heading:    r.bearings[i],
				Interval:   i,
				Kind:       guidance.NO_SMOOTHING,
			})
			continue
		}

		samples := turn.GetSamples()
		for k, s := range samples {
			interval := i
			if 2*k < len(samples)-1 {
				interval = i - 1
			}
			r.smoothed = append(r.smoothed, SmoothedPoint{
				Coordinate: s.Coordinate,
				Heading:    s.Heading,
				Interval:   interval,
				Kind:       turn.GetKind(),
			})
		}
	}

	r.smoothed = append(r.smoothed, SmoothedPoint{
		Coordinate: coords[n-1],
		Heading:    r.bearings[n-2],
		Interval:   n - 2,
		Kind:       guidance.NO_SMOOTHING,
	})
}

// smoothTurn. nil means keep the bare vertex.
func (r *Route) smoothTurn(prev, vertex, next geo.Coordinate, shorterHop float64, params Params) *guidance.Turn {
	turn := guidance.NewTurn(prev, vertex, next, params.TurnRadius, params.TurnLimits)
	if turn.IsValid() {
		return turn
	}
	if math.Abs(turn.GetAngle()) < straightTurn {
		return nil
	}

	length := util.Clamp(shorterHop/2, 0, params.MaxBendLength)
	if length < minBoundaryLeg {
		return nil
	}
	bend := guidance.NewProgressiveBend(prev, vertex, next, length, params.BendSamples)
	if !bend.IsValid() {
		return nil
	}
	return bend
}
