// Package router maps method+path to the handlers and wraps them in the
// shared middleware stack.
//
// Route table:
//
//	GET  /student/{name}     → look up a student
//	POST /student            → register a student (or return the existing one)
//	POST /readiness          → store scores, return the readiness score
//	POST /improvement-plan   → compute an improvement plan
//	GET  /healthz            → store liveness
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/aanand-mishra/readiness-api/internal/http/handlers/assessment"
	"github.com/aanand-mishra/readiness-api/internal/http/handlers/student"
	"github.com/aanand-mishra/readiness-api/internal/storage"
	"github.com/aanand-mishra/readiness-api/internal/utils/response"
)

// Options configures the middleware stack.
type Options struct {
	// CORSOrigins lists allowed origins; "*" allows all.
	CORSOrigins []string
}

// New builds the HTTP handler serving every route.
func New(store storage.Storage, log *zap.Logger, opts Options) http.Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(log), recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusNotFound, response.Error("Not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusMethodNotAllowed, response.Error("Method not allowed"))
	})

	r.Get("/student/{name}", student.Get(store, log))
	r.Post("/student", student.Register(store, log))
	r.Post("/readiness", assessment.Score(store, log))
	r.Post("/improvement-plan", assessment.Plan(log))
	r.Get("/healthz", health(store, log))

	return r
}

func health(store storage.Storage, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			log.Warn("health check failed", zap.Error(err))
			response.WriteJSON(w, http.StatusServiceUnavailable, response.Error("storage unavailable"))
			return
		}
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// requestLogger logs one line per request with zap.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("latency", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// recoverer turns a handler panic into a JSON 500 so that every response
// keeps the {error} shape.
func recoverer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Error("handler panicked",
					zap.Any("panic", rvr),
					zap.String("path", r.URL.Path),
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.Stack("stack"),
				)
				if r.Header.Get("Connection") != "Upgrade" {
					response.WriteJSON(w, http.StatusInternalServerError, response.Error("Internal server error"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
