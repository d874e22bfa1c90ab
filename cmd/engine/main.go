package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/Taxinav/pkg/engine"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/http"
	"github.com/lintang-b-s/Taxinav/pkg/http/usecases"
	"github.com/lintang-b-s/Taxinav/pkg/logger"
	"github.com/lintang-b-s/Taxinav/pkg/util"
	"go.uber.org/zap"
)

var (
	graphFile    = flag.String("graph", "./data/taxiway.graph", "preprocessed taxiway graph")
	airportFile  = flag.String("airport", "./data/airport.json", "preprocessed airport registry")
	useRateLimit = flag.Bool("rate_limit", false, "enable the global request rate limiter")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		logger.Fatal("read config", zap.Error(err))
	}

	taxiEngine, err := engine.NewEngine(*graphFile, *airportFile, taxiroute.ParamsFromViper(), logger)
	if err != nil {
		logger.Fatal("load engine", zap.Error(err))
	}

	taxiRouteService := usecases.NewTaxiRouteService(logger, taxiEngine.GetPlanner(), taxiEngine.GetAirport())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := http.NewServer(logger)
	err = api.Use(ctx, *useRateLimit, taxiRouteService)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Taxinav server error", zap.Error(err))
	}

	logger.Info("Taxinav Routing Engine Server Stopped")
}
