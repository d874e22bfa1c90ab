package airport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/Taxinav/pkg/geo"
)

var ErrUnknownDestination = errors.New("unknown destination")

type DestinationType uint8

const (
	DEST_RUNWAY DestinationType = iota
	DEST_HOLD
	DEST_STAND
)

func (t DestinationType) String() string {
	switch t {
	case DEST_HOLD:
		return "hold"
	case DEST_STAND:
		return "stand"
	default:
		return "runway"
	}
}

func ParseDestinationType(s string) (DestinationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "runway":
		return DEST_RUNWAY, nil
	case "hold":
		return DEST_HOLD, nil
	case "stand":
		return DEST_STAND, nil
	}
	return DEST_RUNWAY, fmt.Errorf("invalid destination type %q", s)
}

/*
Destination. where a taxi route should end.
runway destinations end at the threshold of RunwayEnd or at the threshold of the opposite end.
other types end at Position.
*/
type Destination struct {
	Type      DestinationType
	Name      string
	Position  geo.Coordinate
	Runway    *Runway
	RunwayEnd int
}

// Target. point the destination vertex is resolved against.
func (d Destination) Target(useThreshold bool) geo.Coordinate {
	if d.Type != DEST_RUNWAY || d.Runway == nil {
		return d.Position
	}
	if !useThreshold {
		return d.Runway.Ends[1-d.RunwayEnd].Threshold
	}
	return d.Runway.Ends[d.RunwayEnd].Threshold
}

// PositionDestination. destination at an arbitrary point, e.g. a stand given by coordinate.
func PositionDestination(typ DestinationType, name string, pos geo.Coordinate) Destination {
	return Destination{Type: typ, Name: name, Position: pos}
}
