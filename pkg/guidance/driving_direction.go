package guidance

import (
	"fmt"
	"strings"
)

// Leg. one traversed edge of a route, Turn is the signed turn angle at the vertex where the leg starts.
type Leg struct {
	Name     string
	IsRunway bool
	Active   bool // carries an active runway restriction
	Length   float64
	Turn     float64
}

// Instruction. one spoken/captioned step of the taxi clearance.
type Instruction struct {
	Direction  TurnDirection `json:"-"`
	Taxiway    string        `json:"taxiway"`
	IsRunway   bool          `json:"isRunway"`
	HoldShort  bool          `json:"holdShort"`
	Distance   float64       `json:"distance"`
	RouteIndex int           `json:"routeIndex"`
	Text       string        `json:"text"`
}

func (ins Instruction) describe(first bool) string {
	name := ins.Taxiway
	if ins.IsRunway {
		name = "runway " + name
	}
	var sb strings.Builder
	if ins.HoldShort {
		fmt.Fprintf(&sb, "hold short of %s, then ", name)
	}
	switch {
	case first:
		fmt.Fprintf(&sb, "taxi via %s", name)
	case ins.IsRunway && ins.Direction == CONTINUE:
		fmt.Fprintf(&sb, "cross %s", name)
	case ins.Direction == CONTINUE:
		fmt.Fprintf(&sb, "continue on %s", name)
	case ins.Direction == U_TURN:
		fmt.Fprintf(&sb, "make a u-turn onto %s", name)
	default:
		fmt.Fprintf(&sb, "turn %s onto %s", ins.Direction, name)
	}
	fmt.Fprintf(&sb, " for %.0f m", ins.Distance)
	return sb.String()
}

/*
DirectionBuilder. groups consecutive legs with the same name into one instruction. a new instruction starts
whenever the name changes or the route enters an active segment (hold short).
unnamed legs are merged into the instruction before them.
*/
type DirectionBuilder struct {
	instructions []Instruction
	current      *Instruction
	prevActive   bool
}

func NewDirectionBuilder() *DirectionBuilder {
	return &DirectionBuilder{
		instructions: make([]Instruction, 0),
	}
}

func (db *DirectionBuilder) GetDrivingDirections(legs []Leg) []Instruction {
	db.instructions = db.instructions[:0]
	db.current = nil
	db.prevActive = false

	for i, leg := range legs {
		db.buildInstruction(i, leg)
	}
	db.flush()

	for i := range db.instructions {
		db.instructions[i].Text = db.instructions[i].describe(i == 0)
	}
	return db.instructions
}

func (db *DirectionBuilder) buildInstruction(i int, leg Leg) {
	holdShort := leg.Active && !db.prevActive
	db.prevActive = leg.Active

	sameName := db.current != nil && (leg.Name == "" || strings.EqualFold(leg.Name, db.current.Taxiway))
	if sameName && !holdShort {
		db.current.Distance += leg.Length
		return
	}

	db.flush()
	db.current = &Instruction{
		Direction:  ClassifyTurn(leg.Turn),
		Taxiway:    leg.Name,
		IsRunway:   leg.IsRunway,
		HoldShort:  holdShort,
		Distance:   leg.Length,
		RouteIndex: i,
	}
}

func (db *DirectionBuilder) flush() {
	if db.current != nil {
		db.instructions = append(db.instructions, *db.current)
		db.current = nil
	}
}
