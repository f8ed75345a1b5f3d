package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wippyai/punycode"
	"github.com/wippyai/punycode/domain"
	"github.com/wippyai/punycode/errors"
)

const (
	headerRequestID = "X-Request-Id"
	shutdownTimeout = 5 * time.Second
)

type server struct {
	log    *zap.Logger
	router *mux.Router
}

type conversionResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func newServer(log *zap.Logger) *server {
	s := &server{log: log, router: mux.NewRouter()}

	s.router.Use(s.requestID, s.accessLog)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	s.router.HandleFunc("/v1/encode/{label}", s.handleConvert("label", punycode.EncodeString)).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/decode/{label}", s.handleConvert("label", punycode.DecodeString)).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/domain/ascii/{name}", s.handleConvert("name", domain.ToASCII)).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/domain/unicode/{name}", s.handleConvert("name", domain.ToUnicode)).Methods(http.MethodGet)

	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleConvert(param string, convert converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := mux.Vars(r)[param]
		out, err := convert(in)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: err.Error(),
				Kind:  string(errors.KindOf(err)),
			})
			return
		}
		s.writeJSON(w, http.StatusOK, conversionResponse{Input: in, Output: out})
	}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}

// requestID propagates the caller's request ID or assigns a new one.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(headerRequestID, id)
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", r.Header.Get(headerRequestID)))
	})
}

// serve runs the HTTP service until ctx is done.
func serve(ctx context.Context, addr string, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	log.Info("listening", zap.String("addr", addr))
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
