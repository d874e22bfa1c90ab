package usecases

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/Taxinav/pkg/airport"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/lintang-b-s/Taxinav/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recordingPlanner struct {
	requests []taxiroute.Request
	graph    *da.Graph
}

func (p *recordingPlanner) Find(req taxiroute.Request) *taxiroute.Route {
	p.requests = append(p.requests, req)
	return taxiroute.Find(p.graph, req, taxiroute.DefaultParams(), nil)
}

func testAirport() *airport.Airport {
	ap := airport.NewAirport("EGLL", "test")
	ap.AddRunway(airport.NewRunway(
		airport.RunwayEnd{Name: "09", Threshold: geo.NewCoordinate(51.47, -0.46)},
		airport.RunwayEnd{Name: "27", Threshold: geo.NewCoordinate(51.47, -0.44)},
		45))
	ap.AddStand(&airport.Stand{Name: "S1", Position: geo.NewCoordinate(51.472, -0.45)})
	return ap
}

func TestPlanRouteErrors(t *testing.T) {
	planner := &recordingPlanner{graph: da.NewGraph(nil)}
	ts := NewTaxiRouteService(zaptest.NewLogger(t), planner, testAirport())
	onRunway := airport.NewAircraft(geo.NewCoordinate(51.47, -0.45), 90, 20, da.WIDTH_CODE_C)

	tests := []struct {
		name     string
		query    TaxiRouteQuery
		wantErr  error
		wantCode error
	}{
		{
			name:     "negative taxi speed",
			query:    TaxiRouteQuery{Aircraft: onRunway, DestinationType: airport.DEST_STAND, Destination: "S1", TaxiSpeed: -1},
			wantErr:  ErrInvalidTaxiSpeed,
			wantCode: util.ErrBadParamInput,
		},
		{
			name:     "unknown stand",
			query:    TaxiRouteQuery{Aircraft: onRunway, DestinationType: airport.DEST_STAND, Destination: "S2"},
			wantErr:  ErrUnknownDestination,
			wantCode: util.ErrNotFound,
		},
		{
			name: "unknown arrival runway",
			query: TaxiRouteQuery{Aircraft: onRunway, DestinationType: airport.DEST_STAND, Destination: "S1",
				Movement: da.MOVEMENT_ARRIVAL, ArrivalRunway: "18"},
			wantErr:  ErrUnknownRunway,
			wantCode: util.ErrNotFound,
		},
		{
			name:     "empty network",
			query:    TaxiRouteQuery{Aircraft: onRunway, DestinationType: airport.DEST_STAND, Destination: "S1"},
			wantErr:  ErrTooFarFromNetwork,
			wantCode: util.ErrBadParamInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.PlanRoute(tt.query)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
			var ierr *util.Error
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, tt.wantCode, ierr.Code())
		})
	}
}

func TestPlanRouteDetectsArrivalRunway(t *testing.T) {
	planner := &recordingPlanner{graph: da.NewGraph(nil)}
	ts := NewTaxiRouteService(zaptest.NewLogger(t), planner, testAirport())

	_, _ = ts.PlanRoute(TaxiRouteQuery{
		Aircraft:        airport.NewAircraft(geo.NewCoordinate(51.47, -0.45), 90, 20, da.WIDTH_CODE_C),
		DestinationType: airport.DEST_STAND,
		Destination:     "S1",
		Movement:        da.MOVEMENT_ARRIVAL,
	})
	require.Len(t, planner.requests, 1)
	require.NotNil(t, planner.requests[0].ArrivalRunway)
	assert.Equal(t, "09/27", planner.requests[0].ArrivalRunway.Name)
}
