package taxiroute

import (
	"github.com/lintang-b-s/Taxinav/pkg"
	"github.com/lintang-b-s/Taxinav/pkg/guidance"
	"github.com/spf13/viper"
)

// Params. tunables of endpoint resolution and route building. distances in meter, angles in degree.
type Params struct {
	TaxiSpeed          float64 // m/s
	TurnRadius         float64
	MaxNetworkDistance float64
	SmallTurnAngle     float64
	LargeTurnAngle     float64
	LargeTurnPenalty   float64 // second
	MaxBendLength      float64
	BendSamples        int
	HeadingCone        float64
	MinAheadSeconds    float64
	TurnLimits         guidance.TurnLimits
}

func DefaultParams() Params {
	return Params{
		TaxiSpeed:          pkg.DEFAULT_TAXI_SPEED,
		TurnRadius:         pkg.DEFAULT_TURN_RADIUS,
		MaxNetworkDistance: pkg.DEFAULT_MAX_NETWORK_DISTANCE,
		SmallTurnAngle:     pkg.DEFAULT_SMALL_TURN_ANGLE,
		LargeTurnAngle:     pkg.DEFAULT_LARGE_TURN_ANGLE,
		LargeTurnPenalty:   pkg.DEFAULT_LARGE_TURN_PENALTY,
		MaxBendLength:      pkg.DEFAULT_MAX_BEND_LENGTH,
		BendSamples:        6,
		HeadingCone:        pkg.DEFAULT_HEADING_CONE,
		MinAheadSeconds:    pkg.DEFAULT_MIN_AHEAD_SECONDS,
		TurnLimits:         guidance.DefaultTurnLimits(),
	}
}

// ParamsFromViper. Params with every key overridable from config.yaml or the environment.
func ParamsFromViper() Params {
	viper.SetDefault("TAXI_SPEED", pkg.DEFAULT_TAXI_SPEED)
	viper.SetDefault("TURN_RADIUS", pkg.DEFAULT_TURN_RADIUS)
	viper.SetDefault("MAX_NETWORK_DISTANCE", pkg.DEFAULT_MAX_NETWORK_DISTANCE)
	viper.SetDefault("SMALL_TURN_ANGLE", pkg.DEFAULT_SMALL_TURN_ANGLE)
	viper.SetDefault("LARGE_TURN_ANGLE", pkg.DEFAULT_LARGE_TURN_ANGLE)
	viper.SetDefault("LARGE_TURN_PENALTY", pkg.DEFAULT_LARGE_TURN_PENALTY)
	viper.SetDefault("MAX_BEND_LENGTH", pkg.DEFAULT_MAX_BEND_LENGTH)
	viper.SetDefault("MIN_ARC_ANGLE", pkg.DEFAULT_MIN_ARC_ANGLE)
	viper.SetDefault("MAX_ARC_ANGLE", pkg.DEFAULT_MAX_ARC_ANGLE)
	viper.SetDefault("MAX_TANGENT_FACTOR", pkg.DEFAULT_MAX_TANGENT_FACTOR)
	viper.SetDefault("HEADING_CONE", pkg.DEFAULT_HEADING_CONE)

	p := DefaultParams()
	p.TaxiSpeed = viper.GetFloat64("TAXI_SPEED")
	p.TurnRadius = viper.GetFloat64("TURN_RADIUS")
	p.MaxNetworkDistance = viper.GetFloat64("MAX_NETWORK_DISTANCE")
	p.SmallTurnAngle = viper.GetFloat64("SMALL_TURN_ANGLE")
	p.LargeTurnAngle = viper.GetFloat64("LARGE_TURN_ANGLE")
	p.LargeTurnPenalty = viper.GetFloat64("LARGE_TURN_PENALTY")
	p.MaxBendLength = viper.GetFloat64("MAX_BEND_LENGTH")
	p.HeadingCone = viper.GetFloat64("HEADING_CONE")
	p.TurnLimits.MinArcAngle = viper.GetFloat64("MIN_ARC_ANGLE")
	p.TurnLimits.MaxArcAngle = viper.GetFloat64("MAX_ARC_ANGLE")
	p.TurnLimits.MaxTangentFactor = viper.GetFloat64("MAX_TANGENT_FACTOR")
	return p
}
