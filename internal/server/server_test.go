package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcast-dev/flowcast/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flowcast.yaml")
	require.NoError(t, config.Save(path, config.Default(2025, 8)))

	log := logrus.New()
	log.SetOutput(io.Discard)

	ts := httptest.NewServer(New(path, log).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	var got map[string]string
	status := getJSON(t, ts.URL+"/healthz", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", got["status"])
}

func TestMonthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var got struct {
		Days    []json.RawMessage `json:"days"`
		EndBank string            `json:"endBank"`
	}
	status := getJSON(t, ts.URL+"/api/v1/month", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, got.Days, 31, "August has 31 days")
	assert.NotEmpty(t, got.EndBank)
}

func TestHorizonEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var got struct {
		Months []json.RawMessage `json:"months"`
	}
	status := getJSON(t, ts.URL+"/api/v1/horizon?months=3", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, got.Months, 3)
}

func TestHorizonMonthsClamped(t *testing.T) {
	ts := newTestServer(t)

	var got struct {
		Months []json.RawMessage `json:"months"`
	}
	status := getJSON(t, ts.URL+"/api/v1/horizon?months=0", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, got.Months, 1)
}

func TestHorizonBadMonthsParam(t *testing.T) {
	ts := newTestServer(t)

	status := getJSON(t, ts.URL+"/api/v1/horizon?months=soon", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPlanEndpointIncludesWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowcast.yaml")
	doc := config.Default(2025, 8)
	doc.Liabilities[2].Source = "no-such-card"
	require.NoError(t, config.Save(path, doc))

	log := logrus.New()
	log.SetOutput(io.Discard)
	ts := httptest.NewServer(New(path, log).Handler())
	t.Cleanup(ts.Close)

	var got struct {
		Warnings []string `json:"warnings"`
	}
	status := getJSON(t, ts.URL+"/api/v1/plan", &got)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, got.Warnings, 1)
	assert.Contains(t, got.Warnings[0], "matches no card")
}

func TestMissingPlanFile(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	ts := httptest.NewServer(New(filepath.Join(t.TempDir(), "gone.yaml"), log).Handler())
	t.Cleanup(ts.Close)

	status := getJSON(t, ts.URL+"/api/v1/month", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
}
