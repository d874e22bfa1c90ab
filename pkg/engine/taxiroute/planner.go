package taxiroute

import (
	lru "github.com/hashicorp/golang-lru/v2"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/spatialindex"
	"go.uber.org/zap"
)

const subgraphCacheSize = 64

/*
Planner. finds taxi routes over one airport graph. the graph must be fully built before NewPlanner and never
mutated afterwards, Find is then safe for concurrent use.
subgraphs are cloned once per clone policy and reused across requests, no search ever mutates a graph.
*/
type Planner struct {
	graph     *da.Graph
	index     *spatialindex.Rtree
	params    Params
	log       *zap.Logger
	subgraphs *lru.Cache[da.ClonePolicy, *da.Graph]
}

func NewPlanner(graph *da.Graph, params Params, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	index := spatialindex.NewRtree()
	index.Build(graph, log)

	// github.com/hashicorp/golang-lru/v2 is thread-safe
	cache, _ := lru.New[da.ClonePolicy, *da.Graph](subgraphCacheSize)
	return &Planner{
		graph:     graph,
		index:     index,
		params:    params,
		log:       log,
		subgraphs: cache,
	}
}

func (p *Planner) GetGraph() *da.Graph {
	return p.graph
}

func (p *Planner) GetParams() Params {
	return p.params
}

func (p *Planner) subgraph(s Strategy) *da.Graph {
	if s.Unconstrained {
		return p.graph
	}
	if sub, ok := p.subgraphs.Get(s.Policy); ok {
		return sub
	}
	sub := p.graph.Clone(s.Policy)
	p.subgraphs.Add(s.Policy, sub)
	return sub
}

/*
Find. plan a taxi route for req.

both endpoints are first checked against the base graph, when either is farther than MaxNetworkDistance
from the network the route comes back with TOO_FAR_FROM_NETWORK and no search runs.
in strict mode every rung of Strategies is tried on its subgraph and the first found route returns.
the last attempt always searches the base graph without constraints.
*/
func (p *Planner) Find(req Request) *Route {
	base := newRoute(p, req, p.graph, unconstrainedStrategy(req.Movement))
	if !base.checkNetworkDistance() {
		p.log.Info("endpoint too far from the taxiway network",
			zap.Float64("lat", req.Aircraft.Position.Lat), zap.Float64("lon", req.Aircraft.Position.Lon),
			zap.String("destination", req.Destination.Name))
		base.outcome = TOO_FAR_FROM_NETWORK
		return base
	}

	if req.UseStrictMode {
		for _, s := range Strategies(p.graph, req.Aircraft.WidthCode, req.Movement) {
			r := newRoute(p, req, p.subgraph(s), s)
			if r.find() {
				return r
			}
			p.log.Debug("no route with strategy, relaxing", zap.String("strategy", s.String()))
		}
	}

	r := newRoute(p, req, p.graph, unconstrainedStrategy(req.Movement))
	if !r.find() {
		p.log.Info("no taxi route", zap.String("destination", req.Destination.Name),
			zap.String("movement", req.Movement.String()))
	}
	return r
}

// Find. plan a single route without keeping a Planner around.
func Find(g *da.Graph, req Request, params Params, log *zap.Logger) *Route {
	return NewPlanner(g, params, log).Find(req)
}
