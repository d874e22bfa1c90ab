package airport

import (
	"github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
)

// Aircraft. flight state at planning time. Heading in degree true, GroundSpeed in m/s.
type Aircraft struct {
	Position    geo.Coordinate
	Heading     float64
	GroundSpeed float64
	WidthCode   datastructure.WidthCode
}

func NewAircraft(pos geo.Coordinate, heading, groundSpeed float64, code datastructure.WidthCode) Aircraft {
	return Aircraft{
		Position:    pos,
		Heading:     geo.NormalizeBearing(heading),
		GroundSpeed: groundSpeed,
		WidthCode:   code,
	}
}

/*
WidthCodeFromWingspan. aerodrome reference code letter for a wingspan in meter.

	A < 15 <= B < 24 <= C < 36 <= D < 52 <= E < 65 <= F
*/
func WidthCodeFromWingspan(span float64) datastructure.WidthCode {
	switch {
	case span < 15:
		return datastructure.WIDTH_CODE_A
	case span < 24:
		return datastructure.WIDTH_CODE_B
	case span < 36:
		return datastructure.WIDTH_CODE_C
	case span < 52:
		return datastructure.WIDTH_CODE_D
	case span < 65:
		return datastructure.WIDTH_CODE_E
	default:
		return datastructure.WIDTH_CODE_F
	}
}
