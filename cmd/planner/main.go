package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lintang-b-s/Taxinav/pkg/airport"
	"github.com/lintang-b-s/Taxinav/pkg/concurrent"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/engine"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/lintang-b-s/Taxinav/pkg/http/usecases"
	"github.com/lintang-b-s/Taxinav/pkg/logger"
	"github.com/lintang-b-s/Taxinav/pkg/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	graphFile   = flag.String("graph", "./data/taxiway.graph", "preprocessed taxiway graph")
	airportFile = flag.String("airport", "./data/airport.json", "preprocessed airport registry")
	inFile      = flag.String("in", "", "json lines of taxi route requests, stdin when empty")
	workers     = flag.Int("workers", 0, "number of planner goroutines, 0 = one per cpu")
	logFile     = flag.String("log", "./data/planner.log", "log file")
)

// plan. one json line of the batch input.
type plan struct {
	ID              string  `json:"id"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	Heading         float64 `json:"heading"`
	GroundSpeed     float64 `json:"ground_speed"` // m/s
	WidthCode       string  `json:"width_code"`
	DestinationType string  `json:"destination_type"`
	Destination     string  `json:"destination"`
	Arrival         bool    `json:"arrival"`
	Strict          bool    `json:"strict"`
}

type planResult struct {
	ID        string  `json:"id"`
	Found     bool    `json:"found"`
	Summary   string  `json:"summary,omitempty"`
	Strategy  string  `json:"strategy,omitempty"`
	Distance  float64 `json:"distance,omitempty"`
	Eta       float64 `json:"eta,omitempty"`
	Path      string  `json:"path,omitempty"`
	HoldShort []int   `json:"hold_short,omitempty"`
	Error     string  `json:"error,omitempty"`
}

func main() {
	flag.Parse()
	log := logger.NewWithFile(*logFile, zapcore.InfoLevel)
	defer log.Sync()

	if err := util.ReadConfig(); err != nil {
		log.Fatal("read config", zap.Error(err))
	}

	taxiEngine, err := engine.NewEngine(*graphFile, *airportFile, taxiroute.ParamsFromViper(), log)
	if err != nil {
		log.Fatal("load engine", zap.Error(err))
	}
	service := usecases.NewTaxiRouteService(log, taxiEngine.GetPlanner(), taxiEngine.GetAirport())

	plans, err := readPlans(*inFile)
	if err != nil {
		log.Fatal("read requests", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := concurrent.Map(ctx, *workers, plans, func(p plan) planResult {
		return runPlan(service, p)
	})

	enc := json.NewEncoder(os.Stdout)
	for _, res := range results {
		if res.ID == "" && !res.Found && res.Error == "" {
			continue
		}
		if err := enc.Encode(res); err != nil {
			log.Fatal("write result", zap.Error(err))
		}
	}
	log.Info("batch planning done", zap.Int("requests", len(plans)))
}

func readPlans(filename string) ([]plan, error) {
	in := os.Stdin
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	plans := make([]plan, 0)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var p plan
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, sc.Err()
}

func runPlan(service *usecases.TaxiRouteService, p plan) planResult {
	res := planResult{ID: p.ID}

	code, err := da.ParseWidthCode(p.WidthCode)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	destType, err := airport.ParseDestinationType(p.DestinationType)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	move := da.MOVEMENT_DEPARTURE
	if p.Arrival {
		move = da.MOVEMENT_ARRIVAL
	}

	route, err := service.PlanRoute(usecases.TaxiRouteQuery{
		Aircraft:        airport.NewAircraft(geo.NewCoordinate(p.Lat, p.Lon), p.Heading, p.GroundSpeed, code),
		DestinationType: destType,
		Destination:     p.Destination,
		Movement:        move,
		UseStrictMode:   p.Strict,
	})
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Found = true
	res.Summary = route.Summary()
	res.Strategy = route.GetStrategy().String()
	res.Distance = route.TotalDistance()
	res.Eta = route.TotalTime()
	res.Path = route.Polyline()
	res.HoldShort = route.HoldShortIndices()
	return res
}
