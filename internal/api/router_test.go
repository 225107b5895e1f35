package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/wonny/growthmap/internal/api/handlers"
	"github.com/wonny/growthmap/internal/contracts"
	"github.com/wonny/growthmap/internal/metrics"
	"github.com/wonny/growthmap/internal/report"
	"github.com/wonny/growthmap/internal/session"
	"github.com/wonny/growthmap/internal/universe"
	"github.com/wonny/growthmap/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	store  *session.Store
}

func newTestEnv(t *testing.T, limiter *rate.Limiter) *testEnv {
	t.Helper()

	log := logger.Nop()
	builder, err := metrics.NewBuilder(universe.Default(), log)
	require.NoError(t, err)

	store := session.NewStore(builder, nil, time.Hour, log)
	dashboard := handlers.NewDashboardHandler(store, 42, log)
	stream := handlers.NewStreamHandler(store, 42, 10*time.Millisecond, log)

	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	srv := httptest.NewServer(NewRouter(dashboard, stream, limiter, log))
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, store: store}
}

func (e *testEnv) get(t *testing.T, path string, out interface{}) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, e.server.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-ID", "test")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)

	var body map[string]string
	resp := env.get(t, "/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestGetDataset(t *testing.T) {
	env := newTestEnv(t, nil)

	var body handlers.DatasetResponse
	resp := env.get(t, "/api/dataset", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, body.Success)
	assert.Equal(t, "test", body.Data.Session)
	assert.Equal(t, int64(42), body.Data.Seed)
	require.Equal(t, 30, body.Data.Count)

	for i := 1; i < len(body.Data.Records); i++ {
		assert.GreaterOrEqual(t, body.Data.Records[i-1].MarketCapB, body.Data.Records[i].MarketCapB)
	}

	// JSON 응답은 세션 캐시와 동일한 값
	ds, ok := env.store.Peek("test")
	require.True(t, ok)
	assert.ElementsMatch(t, ds.Records, body.Data.Records)
}

func TestGetDataset_SectorFilter(t *testing.T) {
	env := newTestEnv(t, nil)

	var body handlers.DatasetResponse
	env.get(t, "/api/dataset?sector=AI+%26+Cloud&sector=Consumer+Tech", &body)

	assert.Equal(t, 7, body.Data.Count)
	for _, rec := range body.Data.Records {
		assert.NotEqual(t, contracts.SectorOthers, rec.Sector)
	}
}

func TestGetDataset_Seed(t *testing.T) {
	env := newTestEnv(t, nil)

	var body handlers.DatasetResponse
	env.get(t, "/api/dataset?seed=7", &body)
	assert.Equal(t, int64(7), body.Data.Seed)

	resp := env.get(t, "/api/dataset?seed=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetSectors(t *testing.T) {
	env := newTestEnv(t, nil)

	var body struct {
		Data []contracts.Sector `json:"data"`
	}
	env.get(t, "/api/sectors", &body)

	assert.Equal(t, []contracts.Sector{contracts.SectorConsumerTech, contracts.SectorAICloud, contracts.SectorOthers}, body.Data)
}

func TestGetMacro(t *testing.T) {
	env := newTestEnv(t, nil)

	var body struct {
		Data report.MacroPanel `json:"data"`
	}
	resp := env.get(t, "/api/macro", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body.Data.Indicators, 3)
}

func TestGetStock(t *testing.T) {
	env := newTestEnv(t, nil)

	var body struct {
		Success bool          `json:"success"`
		Data    report.Detail `json:"data"`
	}
	resp := env.get(t, "/api/stocks/NVDA", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ds, _ := env.store.Peek("test")
	rec, _ := ds.Lookup("NVDA")
	assert.Equal(t, report.NewDetail(rec), body.Data)
	assert.Equal(t, contracts.SectorAICloud, body.Data.Record.Sector)
}

func TestGetStock_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, path := range []string{"/api/stocks/ZZZZ", "/api/stocks/ZZZZ/card", "/api/stocks/ZZZZ/trend"} {
		resp := env.get(t, path, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestGetTrendAndVolume(t *testing.T) {
	env := newTestEnv(t, nil)

	var trend struct {
		Data struct {
			Points []metrics.TrendPoint `json:"points"`
		} `json:"data"`
	}
	env.get(t, "/api/stocks/AAPL/trend", &trend)
	assert.Len(t, trend.Data.Points, 12)

	var volume struct {
		Data struct {
			Ticker string `json:"ticker"`
			Bars   []int  `json:"bars"`
		} `json:"data"`
	}
	env.get(t, "/api/stocks/AAPL/volume", &volume)
	assert.Equal(t, "AAPL", volume.Data.Ticker)
	assert.Len(t, volume.Data.Bars, 10)
}

func TestGetCard(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.get(t, "/api/stocks/NVDA/card", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)

	action, ok := doc.Find("div.action-card").Attr("data-action")
	require.True(t, ok)
	assert.Contains(t, []string{"STRONG_BUY", "HOLD", "WATCH"}, action)
	assert.Equal(t, "Action Plan for NVDA", doc.Find("h3.ticker").Text())
}

func TestInvalidate(t *testing.T) {
	env := newTestEnv(t, nil)
	env.get(t, "/api/dataset", &handlers.DatasetResponse{})

	req, _ := http.NewRequest(http.MethodPost, env.server.URL+"/api/dataset/invalidate", nil)
	req.Header.Set("X-Session-ID", "test")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["invalidated"])

	_, ok := env.store.Peek("test")
	assert.False(t, ok)
}

func TestRateLimit(t *testing.T) {
	env := newTestEnv(t, rate.NewLimiter(0, 1))

	first := env.get(t, "/api/macro", nil)
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second := env.get(t, "/api/macro", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)

	// health는 제한 대상 아님
	health := env.get(t, "/health", nil)
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

func TestStreamVolume(t *testing.T) {
	env := newTestEnv(t, nil)
	wsURL := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws/stocks/NVDA/volume"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	for i := 0; i < 3; i++ {
		var frame handlers.VolumeFrame
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		require.NoError(t, conn.ReadJSON(&frame))

		assert.Equal(t, "NVDA", frame.Ticker)
		require.Len(t, frame.Bars, 10)
		for _, v := range frame.Bars {
			assert.GreaterOrEqual(t, v, 50)
			assert.Less(t, v, 150)
		}
	}
}

func TestStreamVolume_UnknownTicker(t *testing.T) {
	env := newTestEnv(t, nil)
	wsURL := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws/stocks/ZZZZ/volume"

	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
