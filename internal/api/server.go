package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/0xPuncker/job-grid/pkg/utils"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func NewRouter(handler *Handler) *mux.Router {
	router := mux.NewRouter()

	router.Use(loggingMiddleware(handler.logger))
	router.Use(corsMiddleware)

	router.HandleFunc("/api/jobs", handler.GetJobs).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/health", handler.HealthCheck).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/scheduler/jobs", handler.ListJobs).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/api/scheduler/jobs/{name}", handler.GetJobStatus).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(handler.staticDir))).Methods(http.MethodGet)

	return router
}

func NewServer(port string, handler http.Handler, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}
}

func loggingMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rw.status,
				"duration":   utils.FormatDuration(time.Since(start)),
				"user_agent": r.UserAgent(),
				"remote_ip":  r.RemoteAddr,
			}).Info("Request processed")
		})
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
