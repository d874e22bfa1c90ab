package engine

import (
	"github.com/lintang-b-s/Taxinav/pkg/airport"
	"github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"go.uber.org/zap"
)

// Engine. taxiway graph and airport registry loaded from a preprocessed snapshot, plus the planner over them.
type Engine struct {
	graph   *datastructure.Graph
	airport *airport.Airport
	planner *taxiroute.Planner
}

func (e *Engine) GetGraph() *datastructure.Graph {
	return e.graph
}

func (e *Engine) GetAirport() *airport.Airport {
	return e.airport
}

func (e *Engine) GetPlanner() *taxiroute.Planner {
	return e.planner
}

func NewEngine(graphFilePath, airportFilePath string, params taxiroute.Params, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading graph from ", zap.String("graphFilePath", graphFilePath))
	graph, err := datastructure.ReadGraph(graphFilePath, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Reading airport from ", zap.String("airportFilePath", airportFilePath))
	ap, err := airport.ReadAirport(airportFilePath)
	if err != nil {
		return nil, err
	}

	return NewEngineFromData(graph, ap, params, logger), nil
}

func NewEngineFromData(graph *datastructure.Graph, ap *airport.Airport, params taxiroute.Params, logger *zap.Logger) *Engine {
	logger.Info("Starting taxi route planner...",
		zap.String("icao", ap.ICAO),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Int("runways", len(ap.Runways)),
		zap.Int("stands", len(ap.Stands)),
	)
	return &Engine{
		graph:   graph,
		airport: ap,
		planner: taxiroute.NewPlanner(graph, params, logger),
	}
}
