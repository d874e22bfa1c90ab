package controllers

import (
	"github.com/lintang-b-s/Taxinav/pkg/airport"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/http/usecases"
)

type TaxiRouteService interface {
	PlanRoute(q usecases.TaxiRouteQuery) (*taxiroute.Route, error)
	Runways() []*airport.Runway
	Stands() []*airport.Stand
}
