package taxiroute

import (
	"fmt"

	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
)

/*
Strategy. one rung of the relaxation ladder. Unconstrained strategies search the base graph itself,
the others search a subgraph cloned with Policy.
*/
type Strategy struct {
	Policy        da.ClonePolicy
	Unconstrained bool
}

func (s Strategy) String() string {
	if s.Unconstrained {
		return "unconstrained"
	}
	return fmt.Sprintf("width=%t runway=%t oneway=%t", s.Policy.RespectWidth, s.Policy.UseRunway,
		s.Policy.RespectOneway)
}

func unconstrainedStrategy(move da.Movement) Strategy {
	return Strategy{Policy: da.Unconstrained(move), Unconstrained: true}
}

/*
Strategies. constrained attempts in the order they are tried, most restrictive first:

	for respect width in {true, false}:
	  no runway,  respect oneway
	  no runway,  ignore oneway
	  use runway, respect oneway
	  use runway, ignore oneway

inner/outer separation is always respected. rungs that would produce the same subgraph as an earlier rung
(g has no width codes, no oneway edges or no runway edges) are left out.
the final unconstrained attempt on g itself is not part of the list.
*/
func Strategies(g *da.Graph, code da.WidthCode, move da.Movement) []Strategy {
	widths := []bool{false}
	if g.HasWidthCodes() && code != da.NO_WIDTH_CODE {
		widths = []bool{true, false}
	}

	strategies := make([]Strategy, 0, 8)
	for _, respectWidth := range widths {
		for _, useRunway := range []bool{false, true} {
			if useRunway && !g.HasRunways() {
				continue
			}
			for _, respectOneway := range []bool{true, false} {
				if !respectOneway && !g.HasOneway() {
					continue
				}
				strategies = append(strategies, Strategy{
					Policy: da.ClonePolicy{
						WidthCode:     code,
						Movement:      move,
						RespectWidth:  respectWidth,
						RespectInner:  true,
						UseRunway:     useRunway,
						RespectOneway: respectOneway,
					},
				})
			}
		}
	}
	return strategies
}
