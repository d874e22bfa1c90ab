package usecases

import (
	"github.com/lintang-b-s/Taxinav/pkg/airport"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
)

type Planner interface {
	Find(req taxiroute.Request) *taxiroute.Route
}

type AirportDatabase interface {
	ResolveDestination(typ airport.DestinationType, name string) (airport.Destination, error)
	GetRunway(name string) (*airport.Runway, int, bool)
	RunwayAt(pos geo.Coordinate) (*airport.Runway, bool)
	ListRunways() []*airport.Runway
	ListStands() []*airport.Stand
}
