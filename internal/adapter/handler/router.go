package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func NewRouter(h *HTTPHandler, log logrus.FieldLogger) *mux.Router {
	router := mux.NewRouter()
	router.Use(accessLog(log))

	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/health", methodNotAllowed)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/food", h.ListFood).Methods(http.MethodGet)
	api.HandleFunc("/seed", h.Seed).Methods(http.MethodGet)
	api.HandleFunc("/order", h.PlaceOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders", h.ListOrders).Methods(http.MethodGet)

	// Registered last so a known path with the wrong method is a 405;
	// mux otherwise reports 404 once a later route misses on path.
	for _, path := range []string{"/food", "/seed", "/order", "/orders"} {
		api.HandleFunc(path, methodNotAllowed)
	}

	return router
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorHTTPResponse{Error: "method not allowed"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func accessLog(log logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start),
			}).Debug("http request")
		})
	}
}
