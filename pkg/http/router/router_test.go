package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lintang-b-s/Taxinav/pkg/airport"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/engine/taxiroute"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
	"github.com/lintang-b-s/Taxinav/pkg/http/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var frame = geo.NewLocalProjection(geo.NewCoordinate(51.47, -0.45))

func pt(x, y float64) geo.Coordinate {
	return frame.ToCoordinate(geo.NewPoint(x, y))
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	log := zaptest.NewLogger(t)

	g := da.NewGraph(log)
	coords := []geo.Coordinate{pt(0, 0), pt(0, 100), pt(0, 200), pt(-100, 200)}
	for i, c := range coords {
		usage := da.JUNCTION
		if i == 0 || i == len(coords)-1 {
			usage = da.BOTH
		}
		g.AddVertex(da.Index(i), c, usage, "")
	}
	require.True(t, g.AddEdge(da.NewEdge(0, 1, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "A", nil)))
	require.True(t, g.AddEdge(da.NewEdge(1, 2, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "A", nil)))
	require.True(t, g.AddEdge(da.NewEdge(2, 3, 0, da.TWOWAY, da.TAXIWAY, da.NO_WIDTH_CODE, "B", nil)))

	ap := airport.NewAirport("EGLL", "test")
	ap.AddStand(&airport.Stand{Name: "S1", Position: pt(-105, 200), Vertex: 3})

	planner := taxiroute.NewPlanner(g, taxiroute.DefaultParams(), log)
	service := usecases.NewTaxiRouteService(log, planner, ap)
	return NewAPI(log).Handler(false, service)
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	js, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(js))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTaxiRouteEndpoint(t *testing.T) {
	h := testHandler(t)
	origin := pt(0, -5)

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name: "stand reachable",
			body: map[string]any{"lat": origin.Lat, "lon": origin.Lon, "heading": 0, "wingspan": 35,
				"destination_type": "stand", "destination": "S1"},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown stand",
			body: map[string]any{"lat": origin.Lat, "lon": origin.Lon, "wingspan": 35,
				"destination_type": "stand", "destination": "S99"},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "invalid destination type",
			body: map[string]any{"lat": origin.Lat, "lon": origin.Lon, "wingspan": 35,
				"destination_type": "gate", "destination": "S1"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "aircraft size missing",
			body: map[string]any{"lat": origin.Lat, "lon": origin.Lon,
				"destination_type": "stand", "destination": "S1"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "too far from the network",
			body: map[string]any{"lat": origin.Lat + 0.1, "lon": origin.Lon, "width_code": "C",
				"destination_type": "stand", "destination": "S1"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h, "/api/taxiRoute", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestTaxiRouteResponseBody(t *testing.T) {
	h := testHandler(t)
	origin := pt(0, -5)
	rec := postJSON(t, h, "/api/taxiRoute", map[string]any{"lat": origin.Lat, "lon": origin.Lon, "heading": 0,
		"width_code": "C", "destination_type": "stand", "destination": "S1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Summary  string  `json:"summary"`
			Distance float64 `json:"distance"`
			Vertices []struct {
				ID int64 `json:"id"`
			} `json:"vertices"`
			Instructions []struct {
				Taxiway string `json:"taxiway"`
			} `json:"instructions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A B", resp.Data.Summary)
	assert.InDelta(t, 300, resp.Data.Distance, 1)
	require.Len(t, resp.Data.Vertices, 4)
	assert.Equal(t, int64(3), resp.Data.Vertices[3].ID)
	require.Len(t, resp.Data.Instructions, 2)
	assert.Equal(t, "B", resp.Data.Instructions[1].Taxiway)
}

func TestMiddleware(t *testing.T) {
	h := testHandler(t)

	t.Run("heartbeat", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ".", rec.Body.String())
	})

	t.Run("json body required", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/taxiRoute", bytes.NewReader([]byte("lat=1")))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("stands", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stands", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"S1"`)
	})
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "10.0.0.1"}, want: "10.0.0.1"},
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "10.0.0.2, 10.0.0.3"}, want: "10.0.0.2"},
		{name: "garbage", headers: map[string]string{"X-Real-IP": "not-an-ip"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, realIP(req))
		})
	}
}
