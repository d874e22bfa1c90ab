package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/Taxinav/pkg/airport"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	helper "github.com/lintang-b-s/Taxinav/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/Taxinav/pkg/http/usecases"
	"github.com/lintang-b-s/Taxinav/pkg/util"
	"go.uber.org/zap"
)

type taxiRouteAPI struct {
	taxiRouteService TaxiRouteService
	log              *zap.Logger
}

func New(taxiRouteService TaxiRouteService, log *zap.Logger) *taxiRouteAPI {
	return &taxiRouteAPI{
		taxiRouteService: taxiRouteService,
		log:              log,
	}
}

func (api *taxiRouteAPI) Routes(group *helper.RouteGroup) {
	group.POST("/taxiRoute", api.taxiRoute)
	group.GET("/runways", api.runways)
	group.GET("/stands", api.stands)
}

// taxiRoute
//
//	@Summary	plan a taxi route from the aircraft position to a runway, holding point or stand
//	@Tags		taxiroute
//	@Accept		json
//	@Produce	json
//	@Router		/taxiRoute [post]
func (api *taxiRouteAPI) taxiRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request taxiRouteRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	query, err := request.toQuery()
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.taxiRouteService.PlanRoute(query)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewTaxiRouteResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *taxiRouteAPI) runways(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRunwaysResponse(api.taxiRouteService.Runways())}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *taxiRouteAPI) stands(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewStandsResponse(api.taxiRouteService.Stands())}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (req taxiRouteRequest) toQuery() (usecases.TaxiRouteQuery, error) {
	destType, err := airport.ParseDestinationType(req.DestinationType)
	if err != nil {
		return usecases.TaxiRouteQuery{}, err
	}

	code := airport.WidthCodeFromWingspan(req.Wingspan)
	if req.WidthCode != "" {
		code, err = da.ParseWidthCode(req.WidthCode)
		if err != nil {
			return usecases.TaxiRouteQuery{}, err
		}
	} else if req.Wingspan == 0 {
		return usecases.TaxiRouteQuery{}, util.WrapErrorf(errors.New("wingspan or width_code is required"),
			util.ErrBadParamInput, "aircraft size")
	}

	move := da.MOVEMENT_DEPARTURE
	if req.Movement == "arrival" {
		move = da.MOVEMENT_ARRIVAL
	}

	pos := geo.NewCoordinate(req.Lat, req.Lon)
	return usecases.TaxiRouteQuery{
		Aircraft:        airport.NewAircraft(pos, req.Heading, util.KnotsToMetersPerSecond(req.GroundSpeed), code),
		DestinationType: destType,
		Destination:     req.Destination,
		Movement:        move,
		ArrivalRunway:   req.ArrivalRunway,
		UseStrictMode:   req.Strict,
		UseThreshold:    req.UseThreshold,
		TaxiSpeed:       req.TaxiSpeed,
	}, nil
}
