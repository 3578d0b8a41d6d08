// Package api exposes the solvers and the trial log over HTTP so the
// experiments can drive a browser front end as well as the terminal.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/san-kum/physlab/internal/storage"
)

// NewRouter wires all endpoints under /api with per-IP rate limiting.
func NewRouter(store *storage.Store) *mux.Router {
	h := &Handler{Store: store}
	limiter := NewIPRateLimiter(rate.Limit(10), 20)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.Middleware)

	api.HandleFunc("/atwood/rest", h.AtwoodRest).Methods("POST")
	api.HandleFunc("/atwood/dynamic", h.AtwoodDynamic).Methods("POST")
	api.HandleFunc("/resonance/length", h.ResonanceLength).Methods("POST")
	api.HandleFunc("/resonance/speed", h.ResonanceSpeed).Methods("POST")
	api.HandleFunc("/resonance/quality", h.ResonanceQuality).Methods("POST")
	api.HandleFunc("/trials", h.ListTrials).Methods("GET")
	api.HandleFunc("/trials", h.LogTrial).Methods("POST")
	api.HandleFunc("/report", h.Report).Methods("GET")

	return r
}

// CORS wraps the router for cross-origin front ends.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
