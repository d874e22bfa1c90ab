package datastructure

import (
	"fmt"
	"strings"
)

// WidthCode. ICAO aerodrome reference code letter, A narrowest ... F widest.
type WidthCode uint8

const (
	NO_WIDTH_CODE WidthCode = iota
	WIDTH_CODE_A
	WIDTH_CODE_B
	WIDTH_CODE_C
	WIDTH_CODE_D
	WIDTH_CODE_E
	WIDTH_CODE_F
)

func (w WidthCode) String() string {
	if w == NO_WIDTH_CODE || w > WIDTH_CODE_F {
		return ""
	}
	return string(rune('A' + int(w) - 1))
}

// effective. an edge without width code accepts every aircraft.
func (w WidthCode) effective() WidthCode {
	if w == NO_WIDTH_CODE {
		return WIDTH_CODE_F
	}
	return w
}

func ParseWidthCode(s string) (WidthCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return NO_WIDTH_CODE, nil
	}
	if len(s) != 1 || s[0] < 'A' || s[0] > 'F' {
		return NO_WIDTH_CODE, fmt.Errorf("invalid width code %q", s)
	}
	return WidthCode(s[0]-'A') + WIDTH_CODE_A, nil
}

type Direction uint8

const (
	TWOWAY Direction = iota
	ONEWAY
)

type EdgeUsage uint8

const (
	TAXIWAY EdgeUsage = iota
	RUNWAY
)

// Side. which side of a runway an edge serves, when the airport has parallel taxiways.
type Side uint8

const (
	BOTH_SIDES Side = iota
	INNER
	OUTER
)

// SideFromName. best effort: only the words "inner"/"outer" in the segment name are looked at.
func SideFromName(name string) Side {
	n := strings.ToLower(name)
	inner := strings.Contains(n, "inner")
	outer := strings.Contains(n, "outer")
	switch {
	case inner && !outer:
		return INNER
	case outer && !inner:
		return OUTER
	default:
		return BOTH_SIDES
	}
}

type Activity uint8

const (
	ACTIVE_DEPARTURE Activity = iota
	ACTIVE_ARRIVAL
	ACTIVE_ILS
)

func (a Activity) String() string {
	switch a {
	case ACTIVE_DEPARTURE:
		return "departure"
	case ACTIVE_ARRIVAL:
		return "arrival"
	default:
		return "ils"
	}
}

func ParseActivity(s string) (Activity, error) {
	switch strings.ToLower(s) {
	case "departure":
		return ACTIVE_DEPARTURE, nil
	case "arrival":
		return ACTIVE_ARRIVAL, nil
	case "ils":
		return ACTIVE_ILS, nil
	}
	return 0, fmt.Errorf("invalid activity %q", s)
}

// ActiveRestriction. the edge is in use for departures/arrivals/ILS protection of runways.
type ActiveRestriction struct {
	activity Activity
	runways  []string
}

func NewActiveRestriction(activity Activity, runways ...string) ActiveRestriction {
	return ActiveRestriction{activity: activity, runways: runways}
}

func (ar ActiveRestriction) GetActivity() Activity {
	return ar.activity
}

func (ar ActiveRestriction) GetRunways() []string {
	return ar.runways
}

type Movement uint8

const (
	MOVEMENT_DEPARTURE Movement = iota
	MOVEMENT_ARRIVAL
)

func (m Movement) String() string {
	if m == MOVEMENT_ARRIVAL {
		return "arrival"
	}
	return "departure"
}

type Edge struct {
	start, end Index
	cost       float64 // meter
	direction  Direction
	usage      EdgeUsage
	widthCode  WidthCode
	name       string
	side       Side
	active     []ActiveRestriction
}

// NewEdge. cost <= 0 means "compute the geodesic length from the endpoints" when the edge is added to a graph.
func NewEdge(start, end Index, cost float64, direction Direction, usage EdgeUsage, widthCode WidthCode,
	name string, active []ActiveRestriction) *Edge {
	return &Edge{
		start:     start,
		end:       end,
		cost:      cost,
		direction: direction,
		usage:     usage,
		widthCode: widthCode,
		name:      name,
		side:      SideFromName(name),
		active:    active,
	}
}

func (e *Edge) GetStart() Index {
	return e.start
}

func (e *Edge) GetEnd() Index {
	return e.end
}

func (e *Edge) GetCost() float64 {
	return e.cost
}

func (e *Edge) GetDirection() Direction {
	return e.direction
}

func (e *Edge) IsOneway() bool {
	return e.direction == ONEWAY
}

func (e *Edge) GetUsage() EdgeUsage {
	return e.usage
}

func (e *Edge) IsRunway() bool {
	return e.usage == RUNWAY
}

func (e *Edge) GetWidthCode() WidthCode {
	return e.widthCode
}

func (e *Edge) GetName() string {
	return e.name
}

func (e *Edge) GetSide() Side {
	return e.side
}

func (e *Edge) GetActiveRestrictions() []ActiveRestriction {
	return e.active
}

func (e *Edge) IsActive() bool {
	return len(e.active) > 0
}

// AcceptsWidth. false if the edge is narrower than code.
func (e *Edge) AcceptsWidth(code WidthCode) bool {
	return e.widthCode.effective() >= code
}

// AllowedFor. arrivals may not use outer-only segments, departures may not use inner-only segments.
func (e *Edge) AllowedFor(move Movement) bool {
	if move == MOVEMENT_ARRIVAL && e.side == OUTER {
		return false
	}
	if move == MOVEMENT_DEPARTURE && e.side == INNER {
		return false
	}
	return true
}

// Other. the opposite endpoint of the edge.
func (e *Edge) Other(v Index) Index {
	if v == e.start {
		return e.end
	}
	return e.start
}

func (e *Edge) copy() *Edge {
	ce := *e
	ce.active = append([]ActiveRestriction(nil), e.active...)
	return &ce
}
