package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/hibou/pkg/hibou/server"
)

func TestHandleAnalyzeOfACoveredTraceReturnsPass(t *testing.T) {
	srv := server.New(nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	body := []byte(`{
		"context": {"lifelines": ["alice"], "messages": ["hello"]},
		"colocalizations": [[0]],
		"interaction": {"kind": "emission", "origin": 0, "message": 0},
		"multiTrace": {"canals": [[{"lifeline": 0, "kind": "!", "message": 0}]]}
	}`)

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		NodeCount uint32 `json:"nodeCount"`
		Verdict   string `json:"verdict"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Pass", out.Verdict)
}

func TestHandleExploreOfEmptyReturnsOneNode(t *testing.T) {
	srv := server.New(nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	body := []byte(`{"context": {}, "interaction": {"kind": "empty"}}`)
	resp, err := http.Post(ts.URL+"/api/explore", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		NodeCount       uint32 `json:"nodeCount"`
		ReachableStates uint32 `json:"reachableStates"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, uint32(1), out.NodeCount)
	assert.Equal(t, uint32(1), out.ReachableStates)
}

func TestHandleMetricsReflectsPriorAnalyses(t *testing.T) {
	srv := server.New(nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	body := []byte(`{"context": {}, "interaction": {"kind": "empty"}}`)
	_, err := http.Post(ts.URL+"/api/explore", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/api/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Counters map[string]int64 `json:"counters"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(1), out.Counters["explorations_total"])
}

func TestHandleResetClearsCounters(t *testing.T) {
	srv := server.New(nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	body := []byte(`{"context": {}, "interaction": {"kind": "empty"}}`)
	_, err := http.Post(ts.URL+"/api/explore", "application/json", bytes.NewReader(body))
	require.NoError(t, err)

	resetResp, err := http.Post(ts.URL+"/api/reset", "application/json", nil)
	require.NoError(t, err)
	defer resetResp.Body.Close()

	resp, err := http.Get(ts.URL + "/api/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	var out struct {
		Counters map[string]int64 `json:"counters"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Empty(t, out.Counters)
}

func TestHandleAnalyzeRejectsMalformedJSON(t *testing.T) {
	srv := server.New(nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
