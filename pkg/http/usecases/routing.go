package usecases

import (
	"errors"

	"github.com/lintang-b-s/Taxinav/pkg/airport"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/util"
	"go.uber.org/zap"
)

// TaxiRouteQuery. ArrivalRunway may be empty, arrivals then use the runway under the aircraft.
type TaxiRouteQuery struct {
	Aircraft        airport.Aircraft
	DestinationType airport.DestinationType
	Destination     string
	Movement        da.Movement
	ArrivalRunway   string
	UseStrictMode   bool
	UseThreshold    bool
	TaxiSpeed       float64
}

type TaxiRouteService struct {
	log     *zap.Logger
	planner Planner
	airport AirportDatabase
}

func NewTaxiRouteService(log *zap.Logger, planner Planner, airportDB AirportDatabase) *TaxiRouteService {
	return &TaxiRouteService{
		log:     log,
		planner: planner,
		airport: airportDB,
	}
}

func (ts *TaxiRouteService) PlanRoute(q TaxiRouteQuery) (*taxiroute.Route, error) {
	if q.TaxiSpeed < 0 {
		return nil, util.WrapErrorf(ErrInvalidTaxiSpeed, util.ErrBadParamInput, "taxi speed %.2f", q.TaxiSpeed)
	}

	dest, err := ts.airport.ResolveDestination(q.DestinationType, q.Destination)
	if err != nil {
		if errors.Is(err, airport.ErrUnknownDestination) {
			return nil, util.WrapErrorf(ErrUnknownDestination, util.ErrNotFound, "%s %s", q.DestinationType, q.Destination)
		}
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "resolve destination")
	}

	req := taxiroute.Request{
		Aircraft:      q.Aircraft,
		Destination:   dest,
		Movement:      q.Movement,
		UseStrictMode: q.UseStrictMode,
		UseThreshold:  q.UseThreshold,
	}

	if q.Movement == da.MOVEMENT_ARRIVAL {
		if q.ArrivalRunway != "" {
			r, _, ok := ts.airport.GetRunway(q.ArrivalRunway)
			if !ok {
				return nil, util.WrapErrorf(ErrUnknownRunway, util.ErrNotFound, "runway %s", q.ArrivalRunway)
			}
			req.ArrivalRunway = r
		} else if r, ok := ts.airport.RunwayAt(q.Aircraft.Position); ok {
			req.ArrivalRunway = r
		}
	}

	route := ts.planner.Find(req)
	switch route.GetOutcome() {
	case taxiroute.TOO_FAR_FROM_NETWORK:
		return nil, util.WrapErrorf(ErrTooFarFromNetwork, util.ErrBadParamInput,
			"position %.6f,%.6f", q.Aircraft.Position.Lat, q.Aircraft.Position.Lon)
	case taxiroute.FOUND:
	default:
		return nil, util.WrapErrorf(ErrNoRoute, util.ErrNotFound, "to %s %s", q.DestinationType, q.Destination)
	}

	if err := route.Build(q.TaxiSpeed); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "build taxi route")
	}

	ts.log.Debug("taxi route planned",
		zap.String("destination", q.Destination),
		zap.String("strategy", route.GetStrategy().String()),
		zap.String("algorithm", string(route.GetAlgorithm())),
		zap.Int("vertices", len(route.GetVertices())),
	)
	return route, nil
}

func (ts *TaxiRouteService) Runways() []*airport.Runway {
	return ts.airport.ListRunways()
}

func (ts *TaxiRouteService) Stands() []*airport.Stand {
	return ts.airport.ListStands()
}
