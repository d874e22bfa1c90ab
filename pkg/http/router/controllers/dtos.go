package controllers

import (
	"github.com/lintang-b-s/Taxinav/pkg/airport"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/lintang-b-s/Taxinav/pkg/guidance"
)

// taxiRouteRequest. ground speed in knots, either wingspan (meter) or width_code identifies the aircraft size.
type taxiRouteRequest struct {
	Lat             float64 `json:"lat" validate:"min=-90,max=90"`
	Lon             float64 `json:"lon" validate:"min=-180,max=180"`
	Heading         float64 `json:"heading" validate:"min=0,max=360"`
	GroundSpeed     float64 `json:"ground_speed" validate:"min=0,max=250"`
	Wingspan        float64 `json:"wingspan" validate:"min=0,max=100"`
	WidthCode       string  `json:"width_code" validate:"omitempty,oneof=A B C D E F"`
	DestinationType string  `json:"destination_type" validate:"required,oneof=runway hold stand"`
	Destination     string  `json:"destination" validate:"required,max=32"`
	Movement        string  `json:"movement" validate:"omitempty,oneof=departure arrival"`
	ArrivalRunway   string  `json:"arrival_runway" validate:"max=16"`
	Strict          bool    `json:"strict"`
	UseThreshold    bool    `json:"use_threshold"`
	TaxiSpeed       float64 `json:"taxi_speed" validate:"min=0,max=30"`
}

type routeVertex struct {
	ID                 int64          `json:"id"`
	Coordinate         geo.Coordinate `json:"coordinate"`
	Turn               float64        `json:"turn"`
	DistanceRemaining  float64        `json:"distance_remaining"`
	TimeRemaining      float64        `json:"time_remaining"`
	DistanceToNextTurn float64        `json:"distance_to_next_turn"`
	NextTurnIndex      int            `json:"next_turn_index"`
}

type smoothedPoint struct {
	Coordinate geo.Coordinate `json:"coordinate"`
	Heading    float64        `json:"heading"`
	Interval   int            `json:"interval"`
	Kind       string         `json:"kind"`
}

type taxiRouteResponse struct {
	Strategy     string                 `json:"strategy"`
	Algorithm    string                 `json:"algorithm"`
	Summary      string                 `json:"summary"`
	Distance     float64                `json:"distance"`
	Eta          float64                `json:"eta"`
	Path         string                 `json:"path"`
	Vertices     []routeVertex          `json:"vertices"`
	SmoothedPath []smoothedPoint        `json:"smoothed_path"`
	HoldShort    []int                  `json:"hold_short"`
	Instructions []guidance.Instruction `json:"instructions"`
}

func NewTaxiRouteResponse(route *taxiroute.Route) taxiRouteResponse {
	var (
		coords    = route.GetCoordinates()
		turns     = route.GetTurns()
		dist      = route.GetDistanceRemaining()
		times     = route.GetTimeRemaining()
		nextDist  = route.GetDistanceToNextTurn()
		nextIndex = route.GetNextTurnIndex()
	)

	vertices := make([]routeVertex, 0, len(coords))
	for i, v := range route.GetVertices() {
		vertices = append(vertices, routeVertex{
			ID:                 int64(v),
			Coordinate:         coords[i],
			Turn:               turns[i],
			DistanceRemaining:  dist[i],
			TimeRemaining:      times[i],
			DistanceToNextTurn: nextDist[i],
			NextTurnIndex:      nextIndex[i],
		})
	}

	smoothed := make([]smoothedPoint, 0, len(route.GetSmoothedPath()))
	for _, p := range route.GetSmoothedPath() {
		smoothed = append(smoothed, smoothedPoint{
			Coordinate: p.Coordinate,
			Heading:    p.Heading,
			Interval:   p.Interval,
			Kind:       p.Kind.String(),
		})
	}

	return taxiRouteResponse{
		Strategy:     route.GetStrategy().String(),
		Algorithm:    string(route.GetAlgorithm()),
		Summary:      route.Summary(),
		Distance:     route.TotalDistance(),
		Eta:          route.TotalTime(),
		Path:         route.Polyline(),
		Vertices:     vertices,
		SmoothedPath: smoothed,
		HoldShort:    route.HoldShortIndices(),
		Instructions: route.Instructions(),
	}
}

type runwayEnd struct {
	Name      string         `json:"name"`
	Threshold geo.Coordinate `json:"threshold"`
	Heading   float64        `json:"heading"`
}

type runwayResponse struct {
	Name   string      `json:"name"`
	Length float64     `json:"length"`
	Width  float64     `json:"width"`
	Ends   []runwayEnd `json:"ends"`
}

func NewRunwaysResponse(runways []*airport.Runway) []runwayResponse {
	resp := make([]runwayResponse, 0, len(runways))
	for _, r := range runways {
		ends := make([]runwayEnd, 0, 2)
		for i, e := range r.Ends {
			ends = append(ends, runwayEnd{Name: e.Name, Threshold: e.Threshold, Heading: r.Heading(i)})
		}
		resp = append(resp, runwayResponse{Name: r.Name, Length: r.Length(), Width: r.Width, Ends: ends})
	}
	return resp
}

type standResponse struct {
	Name     string         `json:"name"`
	Position geo.Coordinate `json:"position"`
}

func NewStandsResponse(stands []*airport.Stand) []standResponse {
	resp := make([]standResponse, 0, len(stands))
	for _, s := range stands {
		resp = append(resp, standResponse{Name: s.Name, Position: s.Position})
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
