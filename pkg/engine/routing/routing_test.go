package routing

import (
	"math/rand"
	"testing"

	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
diamondGraph:

	    B
	  /   \
	A       D
	  \   /
	    C

A-B oneway from B to A, everything else twoway, both sides have equal cost.
*/
func diamondGraph(t *testing.T) *da.Graph {
	t.Helper()
	g := da.NewGraph(nil)
	g.AddVertex(0, geo.NewCoordinate(0, 0), da.JUNCTION, "A")
	g.AddVertex(1, geo.NewCoordinate(0.001, 0.001), da.JUNCTION, "B")
	g.AddVertex(2, geo.NewCoordinate(-0.001, 0.001), da.JUNCTION, "C")
	g.AddVertex(3, geo.NewCoordinate(0, 0.002), da.JUNCTION, "D")

	require.True(t, g.AddEdge(da.NewEdge(1, 0, 0, da.ONEWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "AB", nil)))
	require.True(t, g.AddEdge(da.NewEdge(0, 2, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "AC", nil)))
	require.True(t, g.AddEdge(da.NewEdge(1, 3, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "BD", nil)))
	require.True(t, g.AddEdge(da.NewEdge(2, 3, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "CD", nil)))
	return g
}

func TestDiamondRespectsOneway(t *testing.T) {
	g := diamondGraph(t)

	path, ok := NewDijkstra(g).ShortestPath(0, 3, da.ConnectionOptions{})
	require.True(t, ok)
	assert.Equal(t, []da.Index{0, 2, 3}, path)

	path, ok = NewAStar(g).ShortestPath(0, 3)
	require.True(t, ok)
	assert.Equal(t, []da.Index{0, 2, 3}, path)

	// the other way round the oneway edge is usable, both sides cost the same
	path, ok = NewDijkstra(g).ShortestPath(3, 0, da.ConnectionOptions{})
	require.True(t, ok)
	assert.Len(t, path, 3)
	assert.InDelta(t, PathCost(g, []da.Index{3, 1, 0}), PathCost(g, path), 1e-9)
}

/*
widthGraph: two regions {0,1} and {2,3} joined by a code D edge (long way round, through 4) and a code B
shortcut (1-2).
*/
func widthGraph(t *testing.T) *da.Graph {
	t.Helper()
	g := da.NewGraph(nil)
	g.AddVertex(0, geo.NewCoordinate(0, 0), da.JUNCTION, "")
	g.AddVertex(1, geo.NewCoordinate(0, 0.001), da.JUNCTION, "")
	g.AddVertex(2, geo.NewCoordinate(0, 0.002), da.JUNCTION, "")
	g.AddVertex(3, geo.NewCoordinate(0, 0.003), da.JUNCTION, "")
	g.AddVertex(4, geo.NewCoordinate(0.002, 0.0015), da.JUNCTION, "")

	require.True(t, g.AddEdge(da.NewEdge(0, 1, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "A", nil)))
	require.True(t, g.AddEdge(da.NewEdge(1, 2, 0, da.TWOWAY, da.TAXIWAY, da.WIDTH_CODE_B, "B", nil)))
	require.True(t, g.AddEdge(da.NewEdge(2, 3, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "A", nil)))
	require.True(t, g.AddEdge(da.NewEdge(1, 4, 0, da.TWOWAY, da.TAXIWAY, da.WIDTH_CODE_D, "D", nil)))
	require.True(t, g.AddEdge(da.NewEdge(4, 2, 0, da.TWOWAY, da.TAXIWAY, da.WIDTH_CODE_D, "D", nil)))
	return g
}

func TestWidthCodeConstraint(t *testing.T) {
	g := widthGraph(t)

	path, ok := NewDijkstra(g).ShortestPath(0, 3, da.WithMinWidthCode(da.WIDTH_CODE_D))
	require.True(t, ok)
	assert.Equal(t, []da.Index{0, 1, 4, 2, 3}, path)

	path, ok = NewDijkstra(g).ShortestPath(0, 3, da.WithMinWidthCode(da.WIDTH_CODE_B))
	require.True(t, ok)
	assert.Equal(t, []da.Index{0, 1, 2, 3}, path)

	// only the narrow edge crosses between the regions for code E
	_, ok = NewDijkstra(g).ShortestPath(0, 3, da.WithMinWidthCode(da.WIDTH_CODE_E))
	assert.False(t, ok)
}

func TestParallelEdgeWidthCost(t *testing.T) {
	g := da.NewGraph(nil)
	g.AddVertex(0, geo.NewCoordinate(0, 0), da.JUNCTION, "")
	g.AddVertex(1, geo.NewCoordinate(0, 0.001), da.JUNCTION, "")
	require.True(t, g.AddEdge(da.NewEdge(0, 1, 100, da.TWOWAY, da.TAXIWAY, da.WIDTH_CODE_B, "narrow", nil)))
	require.True(t, g.AddEdge(da.NewEdge(0, 1, 300, da.TWOWAY, da.TAXIWAY, da.WIDTH_CODE_D, "wide", nil)))

	testCases := []struct {
		name     string
		opts     da.ConnectionOptions
		wantCost float64
	}{
		{name: "unconstrained takes the narrow edge", opts: da.ConnectionOptions{}, wantCost: 100},
		{name: "code D pays for the wide edge", opts: da.WithMinWidthCode(da.WIDTH_CODE_D), wantCost: 300},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDijkstra(g)
			path, ok := d.ShortestPath(0, 1, tt.opts)
			require.True(t, ok)
			assert.Equal(t, []da.Index{0, 1}, path)
			assert.Equal(t, tt.wantCost, d.Distance(1))
		})
	}
}

func TestTaxiwayOnly(t *testing.T) {
	g := da.NewGraph(nil)
	g.AddVertex(0, geo.NewCoordinate(0, 0), da.JUNCTION, "")
	g.AddVertex(1, geo.NewCoordinate(0, 0.001), da.JUNCTION, "")
	require.True(t, g.AddEdge(da.NewEdge(0, 1, 0, da.TWOWAY, da.RUNWAY, da.NO_WIDTH_CODE, "09/27", nil)))

	_, ok := NewDijkstra(g).ShortestPath(0, 1, da.ConnectionOptions{TaxiwayOnly: true})
	assert.False(t, ok)
	_, ok = NewDijkstra(g).ShortestPath(0, 1, da.ConnectionOptions{})
	assert.True(t, ok)
}

func TestNoPath(t *testing.T) {
	g := diamondGraph(t)
	g.AddVertex(9, geo.NewCoordinate(0.01, 0.01), da.JUNCTION, "island")

	_, ok := NewDijkstra(g).ShortestPath(0, 9, da.ConnectionOptions{})
	assert.False(t, ok)
	_, ok = NewAStar(g).ShortestPath(0, 9)
	assert.False(t, ok)
	_, ok = NewAStar(g).ShortestPath(0, 42)
	assert.False(t, ok)
}

// gridGraph. n x n jittered grid with random missing and oneway edges.
func gridGraph(t *testing.T, n int, seed int64) *da.Graph {
	t.Helper()
	rd := rand.New(rand.NewSource(seed))
	g := da.NewGraph(nil)
	id := func(r, c int) da.Index { return da.Index(r*n + c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			lat := 51.47 + float64(r)*0.0005 + (rd.Float64()-0.5)*0.0002
			lon := -0.45 + float64(c)*0.0008 + (rd.Float64()-0.5)*0.0002
			g.AddVertex(id(r, c), geo.NewCoordinate(lat, lon), da.JUNCTION, "")
		}
	}
	connect := func(a, b da.Index) {
		x := rd.Float64()
		switch {
		case x < 0.1:
			return
		case x < 0.25:
			g.AddEdge(da.NewEdge(a, b, 0, da.ONEWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "", nil))
		case x < 0.4:
			g.AddEdge(da.NewEdge(b, a, 0, da.ONEWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "", nil))
		default:
			g.AddEdge(da.NewEdge(a, b, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "", nil))
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				connect(id(r, c), id(r, c+1))
			}
			if r+1 < n {
				connect(id(r, c), id(r+1, c))
			}
			if r+1 < n && c+1 < n && rd.Float64() < 0.3 {
				connect(id(r, c), id(r+1, c+1))
			}
		}
	}
	return g
}

func TestDijkstraAndAStarAgreeOnCost(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g := gridGraph(t, 8, seed)
		ids := g.VertexIDs()
		for _, s := range ids {
			for _, tgt := range ids {
				dPath, dOk := NewDijkstra(g).ShortestPath(s, tgt, da.ConnectionOptions{})
				aPath, aOk := NewAStar(g).ShortestPath(s, tgt)
				require.Equal(t, dOk, aOk, "reachability differs for %d -> %d", s, tgt)
				if !dOk {
					continue
				}
				assert.Equal(t, s, aPath[0])
				assert.Equal(t, tgt, aPath[len(aPath)-1])
				assert.InDelta(t, PathCost(g, dPath), PathCost(g, aPath), 1e-6,
					"cost differs for %d -> %d", s, tgt)
			}
		}
	}
}

func TestDijkstraDistance(t *testing.T) {
	g := diamondGraph(t)
	g.AddVertex(9, geo.NewCoordinate(0.01, 0.01), da.JUNCTION, "island")
	d := NewDijkstra(g)
	path, ok := d.ShortestPath(0, 3, da.ConnectionOptions{})
	require.True(t, ok)
	assert.InDelta(t, PathCost(g, path), d.Distance(3), 1e-9)
	// B is only reached through D
	assert.InDelta(t, d.Distance(3)+PathCost(g, []da.Index{3, 1}), d.Distance(1), 1e-9)
	assert.Equal(t, 4, d.NumSettledNodes())
	assert.Equal(t, infWeight, d.Distance(9))
}
