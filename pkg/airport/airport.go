package airport

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
)

type RunwayEnd struct {
	Name      string         `json:"name"`
	Threshold geo.Coordinate `json:"threshold"`
}

// Runway. Ends[0] and Ends[1] are the two opposite thresholds, e.g. 09 and 27.
type Runway struct {
	Name  string                `json:"name"`
	Ends  [2]RunwayEnd          `json:"ends"`
	Width float64               `json:"width"` // meter
	Exits []datastructure.Index `json:"exits"`
}

func NewRunway(end0, end1 RunwayEnd, width float64) *Runway {
	return &Runway{
		Name:  end0.Name + "/" + end1.Name,
		Ends:  [2]RunwayEnd{end0, end1},
		Width: width,
		Exits: make([]datastructure.Index, 0),
	}
}

// EndIndex. index in Ends of the end called name.
func (r *Runway) EndIndex(name string) (int, bool) {
	for i, e := range r.Ends {
		if strings.EqualFold(e.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// Heading. takeoff/landing direction when using end i.
func (r *Runway) Heading(i int) float64 {
	return geo.Bearing(r.Ends[i].Threshold, r.Ends[1-i].Threshold)
}

func (r *Runway) Length() float64 {
	return geo.DistanceMeters(r.Ends[0].Threshold, r.Ends[1].Threshold)
}

// Polygon. runway rectangle as (lon,lat) points.
func (r *Runway) Polygon() []geo.Point {
	half := r.Width / 2
	if half <= 0 {
		half = 22.5
	}
	h := r.Heading(0)
	a, b := r.Ends[0].Threshold, r.Ends[1].Threshold
	return []geo.Point{
		geo.DestinationMeters(a, h-90, half).Point(),
		geo.DestinationMeters(b, h-90, half).Point(),
		geo.DestinationMeters(b, h+90, half).Point(),
		geo.DestinationMeters(a, h+90, half).Point(),
	}
}

func (r *Runway) Contains(pos geo.Coordinate) bool {
	return geo.PointInPolygon(pos.Point(), r.Polygon())
}

// Crosses. true when the segment a-b properly crosses the runway centerline.
func (r *Runway) Crosses(a, b geo.Coordinate) bool {
	return geo.SegmentsIntersect(a.Point(), b.Point(), r.Ends[0].Threshold.Point(), r.Ends[1].Threshold.Point())
}

func (r *Runway) AddExit(v datastructure.Index) {
	for _, e := range r.Exits {
		if e == v {
			return
		}
	}
	r.Exits = append(r.Exits, v)
}

type Stand struct {
	Name     string              `json:"name"`
	Position geo.Coordinate      `json:"position"`
	Vertex   datastructure.Index `json:"vertex"`
}

// HoldingPoint. runway holding position, Runway is the runway name it protects (may be empty).
type HoldingPoint struct {
	Name     string              `json:"name"`
	Position geo.Coordinate      `json:"position"`
	Runway   string              `json:"runway"`
	Vertex   datastructure.Index `json:"vertex"`
}

type Airport struct {
	ICAO          string          `json:"icao"`
	Name          string          `json:"name"`
	Runways       []*Runway       `json:"runways"`
	Stands        []*Stand        `json:"stands"`
	HoldingPoints []*HoldingPoint `json:"holdingPoints"`
}

func NewAirport(icao, name string) *Airport {
	return &Airport{
		ICAO:          icao,
		Name:          name,
		Runways:       make([]*Runway, 0),
		Stands:        make([]*Stand, 0),
		HoldingPoints: make([]*HoldingPoint, 0),
	}
}

func (a *Airport) AddRunway(r *Runway) {
	a.Runways = append(a.Runways, r)
}

func (a *Airport) AddStand(s *Stand) {
	a.Stands = append(a.Stands, s)
}

func (a *Airport) AddHoldingPoint(h *HoldingPoint) {
	a.HoldingPoints = append(a.HoldingPoints, h)
}

// Sort. order runways, stands and holding points by name.
func (a *Airport) Sort() {
	sort.Slice(a.Runways, func(i, j int) bool { return a.Runways[i].Name < a.Runways[j].Name })
	sort.Slice(a.Stands, func(i, j int) bool { return a.Stands[i].Name < a.Stands[j].Name })
	sort.Slice(a.HoldingPoints, func(i, j int) bool { return a.HoldingPoints[i].Name < a.HoldingPoints[j].Name })
}

/*
GetRunway. lookup by full name ("09/27") or by one of its ends ("27").
end is the index of the named end, 0 when the full name was used.
*/
func (a *Airport) GetRunway(name string) (*Runway, int, bool) {
	for _, r := range a.Runways {
		if strings.EqualFold(r.Name, name) {
			return r, 0, true
		}
		if i, ok := r.EndIndex(name); ok {
			return r, i, true
		}
	}
	return nil, 0, false
}

func (a *Airport) GetStand(name string) (*Stand, bool) {
	for _, s := range a.Stands {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return nil, false
}

func (a *Airport) GetHoldingPoint(name string) (*HoldingPoint, bool) {
	for _, h := range a.HoldingPoints {
		if strings.EqualFold(h.Name, name) {
			return h, true
		}
	}
	return nil, false
}

// RunwayAt. runway whose rectangle contains pos.
func (a *Airport) RunwayAt(pos geo.Coordinate) (*Runway, bool) {
	for _, r := range a.Runways {
		if r.Contains(pos) {
			return r, true
		}
	}
	return nil, false
}

// holdingPointFor. holding point protecting runway end, closest to its threshold.
func (a *Airport) holdingPointFor(r *Runway, end int) (*HoldingPoint, bool) {
	var (
		best     *HoldingPoint
		bestDist float64
	)
	for _, h := range a.HoldingPoints {
		if h.Runway == "" {
			continue
		}
		if !strings.EqualFold(h.Runway, r.Name) && !strings.EqualFold(h.Runway, r.Ends[end].Name) {
			continue
		}
		d := geo.DistanceMeters(h.Position, r.Ends[end].Threshold)
		if best == nil || d < bestDist {
			best, bestDist = h, d
		}
	}
	return best, best != nil
}

/*
ResolveDestination. build the Destination of type typ called name.
for runways name may be a runway end ("27") or the runway itself ("09/27", first end).
a holding point may also be named by the runway end it protects.
*/
func (a *Airport) ResolveDestination(typ DestinationType, name string) (Destination, error) {
	switch typ {
	case DEST_RUNWAY:
		r, end, ok := a.GetRunway(name)
		if !ok {
			return Destination{}, fmt.Errorf("runway %q: %w", name, ErrUnknownDestination)
		}
		return Destination{Type: typ, Name: r.Ends[end].Name, Runway: r, RunwayEnd: end}, nil
	case DEST_HOLD:
		h, ok := a.GetHoldingPoint(name)
		if !ok {
			// a runway end name means the holding point protecting that end
			if r, end, isRunway := a.GetRunway(name); isRunway {
				h, ok = a.holdingPointFor(r, end)
			}
		}
		if !ok {
			return Destination{}, fmt.Errorf("holding point %q: %w", name, ErrUnknownDestination)
		}
		return Destination{Type: typ, Name: h.Name, Position: h.Position}, nil
	case DEST_STAND:
		s, ok := a.GetStand(name)
		if !ok {
			return Destination{}, fmt.Errorf("stand %q: %w", name, ErrUnknownDestination)
		}
		return Destination{Type: typ, Name: s.Name, Position: s.Position}, nil
	}
	return Destination{}, fmt.Errorf("destination type %d: %w", typ, ErrUnknownDestination)
}

// CrossesRunway. true when the segment p-q crosses the centerline of any runway.
func (a *Airport) CrossesRunway(p, q geo.Coordinate) bool {
	for _, r := range a.Runways {
		if r.Crosses(p, q) {
			return true
		}
	}
	return false
}

func (a *Airport) ListRunways() []*Runway {
	return a.Runways
}

func (a *Airport) ListStands() []*Stand {
	return a.Stands
}
