package main

import (
	"flag"

	"github.com/lintang-b-s/Taxinav/pkg/logger"
	"github.com/lintang-b-s/Taxinav/pkg/osmparser"
	"go.uber.org/zap"
)

var (
	mapFile     = flag.String("f", "./data/airport.osm.pbf", "openstreetmap file (.osm, .xml or .pbf) of one aerodrome")
	graphFile   = flag.String("graph", "./data/taxiway.graph", "output taxiway graph")
	airportFile = flag.String("airport", "./data/airport.json", "output airport registry")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	parser := osmparser.NewAirportParser(logger)
	graph, ap, err := parser.Parse(*mapFile)
	if err != nil {
		logger.Fatal("parse osm file", zap.String("file", *mapFile), zap.Error(err))
	}

	if err := graph.WriteGraph(*graphFile); err != nil {
		logger.Fatal("write graph", zap.Error(err))
	}
	if err := ap.WriteAirport(*airportFile); err != nil {
		logger.Fatal("write airport", zap.Error(err))
	}

	logger.Sugar().Infof("Preprocessing completed successfully. %d vertices, %d edges, %d runways, %d stands, %d holding points",
		graph.NumberOfVertices(), graph.NumberOfEdges(), len(ap.Runways), len(ap.Stands), len(ap.HoldingPoints))
}
