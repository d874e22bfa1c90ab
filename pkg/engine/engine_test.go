package engine

import (
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/Taxinav/pkg/airport"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewEngineFromSnapshot(t *testing.T) {
	log := zaptest.NewLogger(t)
	dir := t.TempDir()

	g := da.NewGraph(log)
	g.AddVertex(0, geo.NewCoordinate(51.470, -0.450), da.BOTH, "")
	g.AddVertex(1, geo.NewCoordinate(51.471, -0.450), da.JUNCTION, "")
	g.AddVertex(2, geo.NewCoordinate(51.472, -0.450), da.BOTH, "S1")
	require.True(t, g.AddEdge(da.NewEdge(0, 1, 0, da.TWOWAY, da.TAXIWAY, da.WIDTH_CODE_E, "A", nil)))
	require.True(t, g.AddEdge(da.NewEdge(1, 2, 0, da.TWOWAY, da.TAXIWAY, da.WIDTH_CODE_E, "A", nil)))

	ap := airport.NewAirport("EGLL", "Heathrow")
	ap.AddStand(&airport.Stand{Name: "S1", Position: geo.NewCoordinate(51.472, -0.450), Vertex: 2})

	graphFile := filepath.Join(dir, "taxiway.graph")
	airportFile := filepath.Join(dir, "airport.json")
	require.NoError(t, g.WriteGraph(graphFile))
	require.NoError(t, ap.WriteAirport(airportFile))

	e, err := NewEngine(graphFile, airportFile, taxiroute.DefaultParams(), log)
	require.NoError(t, err)
	assert.Equal(t, 3, e.GetGraph().NumberOfVertices())
	assert.Equal(t, "EGLL", e.GetAirport().ICAO)

	dest, err := e.GetAirport().ResolveDestination(airport.DEST_STAND, "S1")
	require.NoError(t, err)
	route := e.GetPlanner().Find(taxiroute.Request{
		Aircraft:    airport.NewAircraft(geo.NewCoordinate(51.4699, -0.450), 0, 0, da.WIDTH_CODE_C),
		Destination: dest,
		Movement:    da.MOVEMENT_DEPARTURE,
	})
	require.True(t, route.Found())
	assert.Equal(t, []da.Index{0, 1, 2}, route.GetVertices())
}

func TestNewEngineMissingFiles(t *testing.T) {
	_, err := NewEngine(filepath.Join(t.TempDir(), "none.graph"), "none.json", taxiroute.DefaultParams(),
		zaptest.NewLogger(t))
	assert.Error(t, err)
}
