package pkg

const (
	INF_WEIGHT float64 = 1e15
)

// defaults of the taxi route builder, every one of them can be overridden through viper (see taxiroute.ParamsFromViper).
const (
	DEFAULT_TAXI_SPEED           = 8.0   // m/s, about 15 kt
	DEFAULT_TURN_RADIUS          = 25.0  // m
	DEFAULT_MAX_NETWORK_DISTANCE = 300.0 // m
	DEFAULT_SMALL_TURN_ANGLE     = 15.0  // degree
	DEFAULT_LARGE_TURN_ANGLE     = 60.0  // degree
	DEFAULT_LARGE_TURN_PENALTY   = 10.0  // second
	DEFAULT_MAX_BEND_LENGTH      = 15.0  // m

	DEFAULT_MIN_ARC_ANGLE      = 10.0  // degree
	DEFAULT_MAX_ARC_ANGLE      = 150.0 // degree
	DEFAULT_MAX_TANGENT_FACTOR = 3.0   // tangent length / radius

	DEFAULT_HEADING_CONE      = 60.0 // degree, half angle of the "ahead of the aircraft" cone
	DEFAULT_MIN_AHEAD_SECONDS = 3.0  // second, vertices closer than speed*this are behind the stop distance
)
