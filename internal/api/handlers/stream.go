package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/wonny/growthmap/internal/metrics"
	"github.com/wonny/growthmap/pkg/logger"
)

const writeWait = 5 * time.Second

// VolumeFrame is one websocket push of the decorative volume chart
type VolumeFrame struct {
	Ticker string    `json:"ticker"`
	Bars   []int     `json:"bars"`
	At     time.Time `json:"at"`
}

// StreamHandler pushes fresh volume series over a websocket
type StreamHandler struct {
	store       DatasetStore
	defaultSeed int64
	interval    time.Duration
	upgrader    websocket.Upgrader
	logger      *logger.Logger
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(store DatasetStore, defaultSeed int64, interval time.Duration, log *logger.Logger) *StreamHandler {
	return &StreamHandler{
		store:       store,
		defaultSeed: defaultSeed,
		interval:    interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: log,
	}
}

// StreamVolume upgrades and pushes a new frame every interval until the client leaves
// GET /ws/stocks/{ticker}/volume
func (h *StreamHandler) StreamVolume(w http.ResponseWriter, r *http.Request) {
	seed, err := parseSeed(r, h.defaultSeed)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return
	}

	ticker := mux.Vars(r)["ticker"]
	ds := h.store.Get(r.Context(), sessionID(r), seed)
	if _, ok := ds.Lookup(ticker); !ok {
		respondError(w, http.StatusNotFound, "Unknown ticker: "+ticker)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	log := h.logger.WithFields(map[string]interface{}{
		"ticker":  ticker,
		"session": sessionID(r),
	})
	log.Debug("Volume stream opened")

	// 클라이언트 종료 감지용 read pump
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	rng := metrics.NewRenderSource()
	tick := time.NewTicker(h.interval)
	defer tick.Stop()

	for {
		frame := VolumeFrame{Ticker: ticker, Bars: metrics.VolumeSeries(rng), At: time.Now()}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(frame); err != nil {
			log.WithError(err).Debug("Volume stream write failed")
			return
		}

		select {
		case <-done:
			log.Debug("Volume stream closed by client")
			return
		case <-tick.C:
		}
	}
}
