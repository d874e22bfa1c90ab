package datastructure

import "go.uber.org/zap"

// ClonePolicy. which edges survive in a subgraph.
type ClonePolicy struct {
	WidthCode     WidthCode
	Movement      Movement
	RespectWidth  bool // drop edges narrower than WidthCode
	RespectInner  bool // drop edges on the wrong runway side for Movement
	UseRunway     bool // keep runway edges
	RespectOneway bool // keep oneway edges oneway, otherwise they become twoway
}

// Unconstrained. policy that keeps every edge.
func Unconstrained(move Movement) ClonePolicy {
	return ClonePolicy{
		Movement:      move,
		UseRunway:     true,
		RespectOneway: true,
	}
}

func (p ClonePolicy) accepts(e *Edge) bool {
	if p.RespectWidth && !e.AcceptsWidth(p.WidthCode) {
		return false
	}
	if p.RespectInner && !e.AllowedFor(p.Movement) {
		return false
	}
	if !p.UseRunway && e.usage == RUNWAY {
		return false
	}
	return true
}

/*
Clone. build an independent subgraph with only the edges that pass policy.
vertices referenced by surviving edges are recreated first (same id/position/usage/name), then the
surviving edges are added. oneway edges are turned twoway when policy.RespectOneway is false.
*/
func (g *Graph) Clone(policy ClonePolicy) *Graph {
	sub := NewGraph(g.log)

	kept := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if !policy.accepts(e) {
			continue
		}
		ce := e.copy()
		if !policy.RespectOneway && ce.direction == ONEWAY {
			ce.direction = TWOWAY
		}
		kept = append(kept, ce)
	}

	for _, e := range kept {
		for _, id := range [2]Index{e.start, e.end} {
			if _, ok := sub.vertices[id]; ok {
				continue
			}
			v := g.vertices[id]
			sub.AddVertex(v.id, v.coord, v.usage, v.name)
		}
	}

	for _, e := range kept {
		sub.AddEdge(e)
	}

	g.log.Debug("subgraph cloned",
		zap.Int("vertices", sub.NumberOfVertices()), zap.Int("edges", sub.NumberOfEdges()),
		zap.Bool("respectWidth", policy.RespectWidth), zap.Bool("respectInner", policy.RespectInner),
		zap.Bool("useRunway", policy.UseRunway), zap.Bool("respectOneway", policy.RespectOneway))
	return sub
}
