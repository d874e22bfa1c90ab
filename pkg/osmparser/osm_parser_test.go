package osmparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="51.4700" lon="-0.4600" version="1"/>
  <node id="2" lat="51.4700" lon="-0.4500" version="1"/>
  <node id="3" lat="51.4700" lon="-0.4400" version="1"/>
  <node id="10" lat="51.4690" lon="-0.4500" version="1">
    <tag k="aeroway" v="holding_position"/>
    <tag k="ref" v="A1"/>
  </node>
  <node id="11" lat="51.4680" lon="-0.4500" version="1"/>
  <node id="12" lat="51.4680" lon="-0.4440" version="1"/>
  <node id="20" lat="51.4678" lon="-0.4440" version="1">
    <tag k="aeroway" v="parking_position"/>
    <tag k="ref" v="S1"/>
  </node>
  <node id="30" lat="51.4600" lon="-0.4000" version="1">
    <tag k="aeroway" v="aerodrome"/>
    <tag k="icao" v="EGTT"/>
    <tag k="name" v="Test Airport"/>
  </node>
  <way id="100" version="1">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="aeroway" v="runway"/>
    <tag k="ref" v="09/27"/>
    <tag k="width" v="45"/>
  </way>
  <way id="101" version="1">
    <nd ref="2"/>
    <nd ref="10"/>
    <nd ref="11"/>
    <tag k="aeroway" v="taxiway"/>
    <tag k="ref" v="A"/>
    <tag k="oneway" v="yes"/>
    <tag k="width" v="23 m"/>
  </way>
  <way id="102" version="1">
    <nd ref="11"/>
    <nd ref="12"/>
    <nd ref="3"/>
    <tag k="aeroway" v="taxiway"/>
    <tag k="ref" v="B"/>
    <tag k="width" v="16"/>
  </way>
  <way id="103" version="1">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="service"/>
  </way>
</osm>`

func parseTestOSM(t *testing.T) *datastructure.Graph {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "airport.osm")
	require.NoError(t, os.WriteFile(filename, []byte(testOSM), 0o644))

	g, ap, err := NewAirportParser(zaptest.NewLogger(t)).Parse(filename)
	require.NoError(t, err)
	require.NotNil(t, ap)

	assert.Equal(t, "EGTT", ap.ICAO)
	assert.Equal(t, "Test Airport", ap.Name)

	require.Len(t, ap.Runways, 1)
	rwy := ap.Runways[0]
	assert.Equal(t, "09/27", rwy.Name)
	assert.Equal(t, "09", rwy.Ends[0].Name)
	assert.InDelta(t, -0.46, rwy.Ends[0].Threshold.Lon, 1e-9)
	assert.Equal(t, 45.0, rwy.Width)
	// nodes 2 and 3 are shared with taxiways
	assert.Equal(t, []datastructure.Index{1, 2}, rwy.Exits)

	require.Len(t, ap.HoldingPoints, 1)
	assert.Equal(t, "A1", ap.HoldingPoints[0].Name)
	assert.Equal(t, "09/27", ap.HoldingPoints[0].Runway)
	assert.Equal(t, datastructure.Index(3), ap.HoldingPoints[0].Vertex)

	require.Len(t, ap.Stands, 1)
	assert.Equal(t, "S1", ap.Stands[0].Name)
	assert.Equal(t, datastructure.Index(6), ap.Stands[0].Vertex)

	return g
}

func TestParseAirport(t *testing.T) {
	g := parseTestOSM(t)

	assert.Equal(t, 7, g.NumberOfVertices())
	assert.Equal(t, 7, g.NumberOfEdges())
	assert.True(t, g.HasRunways())
	assert.True(t, g.HasOneway())
	assert.True(t, g.HasWidthCodes())

	rwyEdge := g.GetEdge(0, 1)
	require.NotNil(t, rwyEdge)
	assert.True(t, rwyEdge.IsRunway())
	assert.True(t, rwyEdge.IsActive())
	assert.Len(t, rwyEdge.GetActiveRestrictions(), 2)
	assert.Equal(t, datastructure.NO_WIDTH_CODE, rwyEdge.GetWidthCode())

	taxiA := g.GetEdge(1, 3)
	require.NotNil(t, taxiA)
	assert.True(t, taxiA.IsOneway())
	assert.Equal(t, datastructure.WIDTH_CODE_E, taxiA.GetWidthCode())
	assert.Nil(t, g.GetEdge(3, 1))

	taxiB := g.GetEdge(5, 4)
	require.NotNil(t, taxiB)
	assert.Equal(t, datastructure.WIDTH_CODE_C, taxiB.GetWidthCode())
	assert.Equal(t, "B", taxiB.GetName())

	hold, ok := g.GetVertex(3)
	require.True(t, ok)
	assert.Equal(t, datastructure.BOTH, hold.GetUsage())
	assert.Equal(t, "A1", hold.GetName())

	standLink := g.GetEdge(6, 5)
	require.NotNil(t, standLink)
	assert.Empty(t, standLink.GetName(), "stand links stay out of the route summary")
	assert.InDelta(t, 22.2, standLink.GetCost(), 0.5)
}

// stand 20 is closest to taxiway N across the runway, the link must go to taxiway S
const standAcrossRunwayOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="51.4700" lon="-0.4600" version="1"/>
  <node id="2" lat="51.4700" lon="-0.4400" version="1"/>
  <node id="3" lat="51.4701" lon="-0.4500" version="1"/>
  <node id="7" lat="51.4701" lon="-0.4490" version="1"/>
  <node id="5" lat="51.4695" lon="-0.4500" version="1"/>
  <node id="8" lat="51.4695" lon="-0.4490" version="1"/>
  <node id="20" lat="51.46985" lon="-0.4500" version="1">
    <tag k="aeroway" v="parking_position"/>
    <tag k="ref" v="S2"/>
  </node>
  <way id="100" version="1">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="aeroway" v="runway"/>
    <tag k="ref" v="09/27"/>
  </way>
  <way id="101" version="1">
    <nd ref="3"/>
    <nd ref="7"/>
    <tag k="aeroway" v="taxiway"/>
    <tag k="ref" v="N"/>
  </way>
  <way id="102" version="1">
    <nd ref="5"/>
    <nd ref="8"/>
    <tag k="aeroway" v="taxiway"/>
    <tag k="ref" v="S"/>
  </way>
</osm>`

func TestStandLinkDoesNotCrossRunway(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "airport.osm")
	require.NoError(t, os.WriteFile(filename, []byte(standAcrossRunwayOSM), 0o644))

	g, ap, err := NewAirportParser(zaptest.NewLogger(t)).Parse(filename)
	require.NoError(t, err)
	require.Len(t, ap.Stands, 1)
	stand := ap.Stands[0].Vertex

	tests := []struct {
		name   string
		vertex datastructure.Index
		linked bool
	}{
		{name: "nearest vertex across the runway", vertex: 2, linked: false},
		{name: "vertex on the same side", vertex: 4, linked: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.linked, g.GetEdge(stand, tt.vertex) != nil)
		})
	}
}

func TestParseUnknownExtension(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "airport.json")
	require.NoError(t, os.WriteFile(filename, []byte("{}"), 0o644))
	_, _, err := NewAirportParser(nil).Parse(filename)
	assert.Error(t, err)
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"23", 23},
		{"23 m", 23},
		{"10.5m", 10.5},
		{"", 0},
		{"wide", 0},
		{"-3", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseWidth(tt.in), "width %q", tt.in)
	}
}

func TestWidthCodeFromTaxiwayWidth(t *testing.T) {
	tests := []struct {
		width float64
		want  datastructure.WidthCode
	}{
		{0, datastructure.NO_WIDTH_CODE},
		{7.5, datastructure.WIDTH_CODE_A},
		{10.5, datastructure.WIDTH_CODE_B},
		{15, datastructure.WIDTH_CODE_C},
		{18, datastructure.WIDTH_CODE_D},
		{23, datastructure.WIDTH_CODE_E},
		{30, datastructure.WIDTH_CODE_F},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WidthCodeFromTaxiwayWidth(tt.width), "width %v", tt.width)
	}
}

func TestRunwayDesignator(t *testing.T) {
	ends, ok := runwayEnds("09L/27R")
	require.True(t, ok)
	assert.Equal(t, [2]string{"09L", "27R"}, ends)
	_, ok = runwayEnds("09")
	assert.False(t, ok)

	h, ok := runwayHeading("27R")
	require.True(t, ok)
	assert.Equal(t, 270.0, h)
	_, ok = runwayHeading("H1")
	assert.False(t, ok)
}
