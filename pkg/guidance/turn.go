package guidance

import (
	"github.com/lintang-b-s/Taxinav/pkg/util"
)

type TurnDirection uint8

const (
	CONTINUE TurnDirection = iota
	TURN_SLIGHT_LEFT
	TURN_SLIGHT_RIGHT
	TURN_LEFT
	TURN_RIGHT
	TURN_SHARP_LEFT
	TURN_SHARP_RIGHT
	U_TURN
)

func (d TurnDirection) String() string {
	switch d {
	case TURN_SLIGHT_LEFT:
		return "slight left"
	case TURN_SLIGHT_RIGHT:
		return "slight right"
	case TURN_LEFT:
		return "left"
	case TURN_RIGHT:
		return "right"
	case TURN_SHARP_LEFT:
		return "sharp left"
	case TURN_SHARP_RIGHT:
		return "sharp right"
	case U_TURN:
		return "u-turn"
	default:
		return "continue"
	}
}

func (d TurnDirection) IsLeft() bool {
	return d == TURN_SLIGHT_LEFT || d == TURN_LEFT || d == TURN_SHARP_LEFT
}

func (d TurnDirection) IsRight() bool {
	return d == TURN_SLIGHT_RIGHT || d == TURN_RIGHT || d == TURN_SHARP_RIGHT
}

/*
ClassifyTurn. turn direction for a signed turn angle in degree (positive = right).

	|angle| < 12   continue
	|angle| < 40   slight
	|angle| < 105  turn
	|angle| < 170  sharp
	otherwise      u-turn
*/
func ClassifyTurn(angle float64) TurnDirection {
	absDelta := util.AbsF(angle)
	switch {
	case absDelta < 12:
		return CONTINUE
	case absDelta < 40:
		if angle < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	case absDelta < 105:
		if angle < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	case absDelta < 170:
		if angle < 0 {
			return TURN_SHARP_LEFT
		}
		return TURN_SHARP_RIGHT
	default:
		return U_TURN
	}
}
