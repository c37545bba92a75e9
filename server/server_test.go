// SPDX-License-Identifier: MIT
package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadflow/builder"
	"github.com/katalvlaran/roadflow/server"
	"github.com/katalvlaran/roadflow/simulation"
	"github.com/katalvlaran/roadflow/topology"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newServer(t *testing.T, tp topology.Topology, opts ...simulation.Option) http.Handler {
	t.Helper()
	sess, err := simulation.New(tp, nil, opts...)
	require.NoError(t, err)

	return server.New(sess).Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}

	return rec, out
}

func TestHealth(t *testing.T) {
	h := newServer(t, builder.CityMap())
	rec, body := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestState(t *testing.T) {
	h := newServer(t, builder.CityMap())
	rec, body := do(t, h, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "greedy", body["strategy"])
	assert.Equal(t, "F", body["destination"])
	assert.Equal(t, []any{"A", "C", "E"}, body["origins"])
	assert.Nil(t, body["accident"])
}

func TestRunAndCycle(t *testing.T) {
	h := newServer(t, builder.CityMap())

	rec, _ := do(t, h, http.MethodGet, "/api/cycle", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body := do(t, h, http.MethodPost, "/api/run", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["seq"])
	results := body["results"].([]any)
	require.Len(t, results, 3)
	first := results[0].(map[string]any)
	assert.Equal(t, "A→F", first["vehicle"])
	assert.Equal(t, []any{"A", "C", "D", "F"}, first["path"])
	assert.Equal(t, float64(9), first["cost"])
	assert.Len(t, body["roads"], len(builder.CityMap().Roads))

	rec, body = do(t, h, http.MethodGet, "/api/cycle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["seq"])
}

func TestUnreachableCost(t *testing.T) {
	tp := topology.Topology{Nodes: []string{"A", "F"}}
	h := newServer(t, tp, simulation.WithOrigins("A"))

	rec, body := do(t, h, http.MethodPost, "/api/run", "")
	require.Equal(t, http.StatusOK, rec.Code)
	r := body["results"].([]any)[0].(map[string]any)
	assert.Equal(t, "unreachable", r["cost"])
	assert.Equal(t, []any{}, r["path"])

	rec, body = do(t, h, http.MethodGet, "/api/route?from=A&to=F", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unreachable", body["cost"])
	assert.Equal(t, float64(0), body["hops"])

	rec, body = do(t, h, http.MethodGet, "/api/distances?from=A", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"A": float64(0), "F": "unreachable"}, body["costs"])

	rec, body = do(t, h, http.MethodPost, "/api/accident", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, body["accident"])
}

func TestStrategyEndpoints(t *testing.T) {
	h := newServer(t, builder.CityMap())

	rec, body := do(t, h, http.MethodPut, "/api/strategy", `{"strategy":"Optimized"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "optimized", body["strategy"])

	rec, body = do(t, h, http.MethodPost, "/api/strategy/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "greedy", body["strategy"])

	rec, _ = do(t, h, http.MethodPut, "/api/strategy", `{"strategy":"random"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodPut, "/api/strategy", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccidentEndpoints(t *testing.T) {
	h := newServer(t, builder.CityMap(), simulation.WithSeed(4))

	rec, body := do(t, h, http.MethodPost, "/api/accident", "")
	require.Equal(t, http.StatusOK, rec.Code)
	road, ok := body["accident"].(string)
	require.True(t, ok)
	cycle := body["cycle"].(map[string]any)
	assert.Equal(t, road, cycle["accident"])
	for _, r := range cycle["roads"].([]any) {
		assert.NotEqual(t, road, r.(map[string]any)["road"])
	}

	_, state := do(t, h, http.MethodGet, "/api/state", "")
	assert.Equal(t, road, state["accident"])

	rec, body = do(t, h, http.MethodDelete, "/api/accident", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["cleared"])

	_, state = do(t, h, http.MethodGet, "/api/state", "")
	assert.Nil(t, state["accident"])
}

func TestCompare(t *testing.T) {
	h := newServer(t, builder.CityMap())
	rec, body := do(t, h, http.MethodGet, "/api/compare", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "coordinated", body["best"])
	assert.Len(t, body["runs"], 3)
}

func TestRoute(t *testing.T) {
	h := newServer(t, builder.CityMap())

	rec, body := do(t, h, http.MethodGet, "/api/route?from=C&to=F", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"C", "D", "F"}, body["path"])
	assert.Equal(t, float64(7), body["cost"])
	assert.Equal(t, float64(2), body["hops"])

	rec, _ = do(t, h, http.MethodGet, "/api/route?from=C", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/route?from=C&to=Q", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	h := newServer(t, builder.CityMap())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestDistances(t *testing.T) {
	h := newServer(t, builder.CityMap())

	rec, body := do(t, h, http.MethodGet, "/api/distances?from=F", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "F", body["from"])
	costs := body["costs"].(map[string]any)
	assert.Len(t, costs, len(builder.CityMap().Nodes))
	assert.Equal(t, float64(9), costs["A"])
	assert.Equal(t, float64(0), costs["F"])

	rec, _ = do(t, h, http.MethodGet, "/api/distances", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/distances?from=Q", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
