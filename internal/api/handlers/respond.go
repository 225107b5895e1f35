package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wonny/growthmap/internal/session"
)

const sessionHeader = "X-Session-ID"

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// sessionID reads the session from the header, then the query, else the default
func sessionID(r *http.Request) string {
	if id := r.Header.Get(sessionHeader); id != "" {
		return id
	}
	if id := r.URL.Query().Get("session"); id != "" {
		return id
	}
	return session.DefaultID
}

func parseSeed(r *http.Request, fallback int64) (int64, error) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
