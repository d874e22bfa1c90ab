package usecases

import "errors"

var (
	ErrNoRoute            = errors.New("no taxi route found")
	ErrTooFarFromNetwork  = errors.New("position is too far from the taxiway network")
	ErrUnknownDestination = errors.New("unknown destination")
	ErrUnknownRunway      = errors.New("unknown runway")
	ErrInvalidTaxiSpeed   = errors.New("taxi speed must not be negative")
)
